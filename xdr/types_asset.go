package xdr

// AssetCode4 is a right-padded asset code of up to 4 characters.
type AssetCode4 [4]byte

// AssetCode12 is a right-padded asset code of 5 to 12 characters.
type AssetCode12 [12]byte

// AssetAlphaNum4 is a credit asset with a code of up to 4 characters.
type AssetAlphaNum4 struct {
	AssetCode AssetCode4
	Issuer    AccountId
}

// AssetAlphaNum12 is a credit asset with a code of 5 to 12 characters.
type AssetAlphaNum12 struct {
	AssetCode AssetCode12
	Issuer    AccountId
}

// Asset is the union of the native asset and the two credit asset forms.
type Asset struct {
	Type       AssetType
	AlphaNum4  *AssetAlphaNum4
	AlphaNum12 *AssetAlphaNum12
}

func (u Asset) SwitchFieldName() string { return "Type" }

func (u Asset) ArmForSwitch(sw int32) (string, bool) {
	switch AssetType(sw) {
	case AssetTypeAssetTypeNative:
		return "", true
	case AssetTypeAssetTypeCreditAlphanum4:
		return "AlphaNum4", true
	case AssetTypeAssetTypeCreditAlphanum12:
		return "AlphaNum12", true
	}
	return "-", false
}

// AssetCode is the bare asset code union used by the allow trust operation.
type AssetCode struct {
	Type        AssetType
	AssetCode4  *AssetCode4
	AssetCode12 *AssetCode12
}

func (u AssetCode) SwitchFieldName() string { return "Type" }

func (u AssetCode) ArmForSwitch(sw int32) (string, bool) {
	switch AssetType(sw) {
	case AssetTypeAssetTypeCreditAlphanum4:
		return "AssetCode4", true
	case AssetTypeAssetTypeCreditAlphanum12:
		return "AssetCode12", true
	}
	return "-", false
}

// Price is a rational price of buying in terms of selling.
type Price struct {
	N Int32
	D Int32
}

// LiquidityPoolConstantProductParameters parameterizes a constant-product
// liquidity pool.
type LiquidityPoolConstantProductParameters struct {
	AssetA Asset
	AssetB Asset
	Fee    Int32
}

// LiquidityPoolParameters is the union of supported pool kinds.
type LiquidityPoolParameters struct {
	Type            LiquidityPoolType
	ConstantProduct *LiquidityPoolConstantProductParameters
}

func (u LiquidityPoolParameters) SwitchFieldName() string { return "Type" }

func (u LiquidityPoolParameters) ArmForSwitch(sw int32) (string, bool) {
	if LiquidityPoolType(sw) == LiquidityPoolTypeLiquidityPoolConstantProduct {
		return "ConstantProduct", true
	}
	return "-", false
}

// ChangeTrustAsset extends Asset with the pool-share variant used by the
// change trust operation.
type ChangeTrustAsset struct {
	Type          AssetType
	AlphaNum4     *AssetAlphaNum4
	AlphaNum12    *AssetAlphaNum12
	LiquidityPool *LiquidityPoolParameters
}

func (u ChangeTrustAsset) SwitchFieldName() string { return "Type" }

func (u ChangeTrustAsset) ArmForSwitch(sw int32) (string, bool) {
	switch AssetType(sw) {
	case AssetTypeAssetTypeNative:
		return "", true
	case AssetTypeAssetTypeCreditAlphanum4:
		return "AlphaNum4", true
	case AssetTypeAssetTypeCreditAlphanum12:
		return "AlphaNum12", true
	case AssetTypeAssetTypePoolShare:
		return "LiquidityPool", true
	}
	return "-", false
}

// TrustLineAsset extends Asset with the pool-share variant used by trust
// line ledger keys.
type TrustLineAsset struct {
	Type            AssetType
	AlphaNum4       *AssetAlphaNum4
	AlphaNum12      *AssetAlphaNum12
	LiquidityPoolId *PoolId
}

func (u TrustLineAsset) SwitchFieldName() string { return "Type" }

func (u TrustLineAsset) ArmForSwitch(sw int32) (string, bool) {
	switch AssetType(sw) {
	case AssetTypeAssetTypeNative:
		return "", true
	case AssetTypeAssetTypeCreditAlphanum4:
		return "AlphaNum4", true
	case AssetTypeAssetTypeCreditAlphanum12:
		return "AlphaNum12", true
	case AssetTypeAssetTypePoolShare:
		return "LiquidityPoolId", true
	}
	return "-", false
}

// ClaimPredicate is the recursive predicate guarding a claimable balance
// claimant. And/Or carry exactly two children, Not at most one.
type ClaimPredicate struct {
	Type          ClaimPredicateType
	AndPredicates *[]ClaimPredicate `xdrmaxsize:"2"`
	OrPredicates  *[]ClaimPredicate `xdrmaxsize:"2"`
	NotPredicate  **ClaimPredicate
	AbsBefore     *Int64
	RelBefore     *Int64
}

func (u ClaimPredicate) SwitchFieldName() string { return "Type" }

func (u ClaimPredicate) ArmForSwitch(sw int32) (string, bool) {
	switch ClaimPredicateType(sw) {
	case ClaimPredicateTypeClaimPredicateUnconditional:
		return "", true
	case ClaimPredicateTypeClaimPredicateAnd:
		return "AndPredicates", true
	case ClaimPredicateTypeClaimPredicateOr:
		return "OrPredicates", true
	case ClaimPredicateTypeClaimPredicateNot:
		return "NotPredicate", true
	case ClaimPredicateTypeClaimPredicateBeforeAbsoluteTime:
		return "AbsBefore", true
	case ClaimPredicateTypeClaimPredicateBeforeRelativeTime:
		return "RelBefore", true
	}
	return "-", false
}

// ClaimantV0 names a destination account and the predicate it must satisfy.
type ClaimantV0 struct {
	Destination AccountId
	Predicate   ClaimPredicate
}

// Claimant is the claimant union (only V0 exists).
type Claimant struct {
	Type ClaimantType
	V0   *ClaimantV0
}

func (u Claimant) SwitchFieldName() string { return "Type" }

func (u Claimant) ArmForSwitch(sw int32) (string, bool) {
	if ClaimantType(sw) == ClaimantTypeClaimantTypeV0 {
		return "V0", true
	}
	return "-", false
}

// ClaimableBalanceId identifies a claimable balance ledger entry.
type ClaimableBalanceId struct {
	Type ClaimableBalanceIdType
	V0   *Hash
}

func (u ClaimableBalanceId) SwitchFieldName() string { return "Type" }

func (u ClaimableBalanceId) ArmForSwitch(sw int32) (string, bool) {
	if ClaimableBalanceIdType(sw) == ClaimableBalanceIdTypeClaimableBalanceIdTypeV0 {
		return "V0", true
	}
	return "-", false
}
