package xdr

// Enum discriminants. Each enum keeps a name table holding the canonical
// XDR identifier for every known value; ValidEnum is what the xdr3 decoder
// consults before accepting a discriminant off the wire.

// CryptoKeyType is the discriminant for MuxedAccount.
type CryptoKeyType int32

const (
	CryptoKeyTypeKeyTypeEd25519              CryptoKeyType = 0
	CryptoKeyTypeKeyTypePreAuthTx            CryptoKeyType = 1
	CryptoKeyTypeKeyTypeHashX                CryptoKeyType = 2
	CryptoKeyTypeKeyTypeEd25519SignedPayload CryptoKeyType = 3
	CryptoKeyTypeKeyTypeMuxedEd25519         CryptoKeyType = 256
)

var cryptoKeyTypeNames = map[CryptoKeyType]string{
	CryptoKeyTypeKeyTypeEd25519:              "KEY_TYPE_ED25519",
	CryptoKeyTypeKeyTypePreAuthTx:            "KEY_TYPE_PRE_AUTH_TX",
	CryptoKeyTypeKeyTypeHashX:                "KEY_TYPE_HASH_X",
	CryptoKeyTypeKeyTypeEd25519SignedPayload: "KEY_TYPE_ED25519_SIGNED_PAYLOAD",
	CryptoKeyTypeKeyTypeMuxedEd25519:         "KEY_TYPE_MUXED_ED25519",
}

func (e CryptoKeyType) ValidEnum(v int32) bool {
	_, ok := cryptoKeyTypeNames[CryptoKeyType(v)]
	return ok
}

func (e CryptoKeyType) String() string { return cryptoKeyTypeNames[e] }

// PublicKeyType is the discriminant for PublicKey.
type PublicKeyType int32

const (
	PublicKeyTypePublicKeyTypeEd25519 PublicKeyType = 0
)

func (e PublicKeyType) ValidEnum(v int32) bool {
	return PublicKeyType(v) == PublicKeyTypePublicKeyTypeEd25519
}

func (e PublicKeyType) String() string { return "PUBLIC_KEY_TYPE_ED25519" }

// SignerKeyType is the discriminant for SignerKey.
type SignerKeyType int32

const (
	SignerKeyTypeSignerKeyTypeEd25519              SignerKeyType = 0
	SignerKeyTypeSignerKeyTypePreAuthTx            SignerKeyType = 1
	SignerKeyTypeSignerKeyTypeHashX                SignerKeyType = 2
	SignerKeyTypeSignerKeyTypeEd25519SignedPayload SignerKeyType = 3
)

var signerKeyTypeNames = map[SignerKeyType]string{
	SignerKeyTypeSignerKeyTypeEd25519:              "SIGNER_KEY_TYPE_ED25519",
	SignerKeyTypeSignerKeyTypePreAuthTx:            "SIGNER_KEY_TYPE_PRE_AUTH_TX",
	SignerKeyTypeSignerKeyTypeHashX:                "SIGNER_KEY_TYPE_HASH_X",
	SignerKeyTypeSignerKeyTypeEd25519SignedPayload: "SIGNER_KEY_TYPE_ED25519_SIGNED_PAYLOAD",
}

func (e SignerKeyType) ValidEnum(v int32) bool {
	_, ok := signerKeyTypeNames[SignerKeyType(v)]
	return ok
}

func (e SignerKeyType) String() string { return signerKeyTypeNames[e] }

// EnvelopeType distinguishes the top-level envelope variants.
type EnvelopeType int32

const (
	EnvelopeTypeEnvelopeTypeTxV0      EnvelopeType = 0
	EnvelopeTypeEnvelopeTypeScp       EnvelopeType = 1
	EnvelopeTypeEnvelopeTypeTx        EnvelopeType = 2
	EnvelopeTypeEnvelopeTypeAuth      EnvelopeType = 3
	EnvelopeTypeEnvelopeTypeScpvalue  EnvelopeType = 4
	EnvelopeTypeEnvelopeTypeTxFeeBump EnvelopeType = 5
	EnvelopeTypeEnvelopeTypeOpId      EnvelopeType = 6
	EnvelopeTypeEnvelopeTypePoolRevokeOpId EnvelopeType = 7
	EnvelopeTypeEnvelopeTypeContractId EnvelopeType = 8
	EnvelopeTypeEnvelopeTypeSorobanAuthorization EnvelopeType = 9
)

var envelopeTypeNames = map[EnvelopeType]string{
	EnvelopeTypeEnvelopeTypeTxV0:                 "ENVELOPE_TYPE_TX_V0",
	EnvelopeTypeEnvelopeTypeScp:                  "ENVELOPE_TYPE_SCP",
	EnvelopeTypeEnvelopeTypeTx:                   "ENVELOPE_TYPE_TX",
	EnvelopeTypeEnvelopeTypeAuth:                 "ENVELOPE_TYPE_AUTH",
	EnvelopeTypeEnvelopeTypeScpvalue:             "ENVELOPE_TYPE_SCPVALUE",
	EnvelopeTypeEnvelopeTypeTxFeeBump:            "ENVELOPE_TYPE_TX_FEE_BUMP",
	EnvelopeTypeEnvelopeTypeOpId:                 "ENVELOPE_TYPE_OP_ID",
	EnvelopeTypeEnvelopeTypePoolRevokeOpId:       "ENVELOPE_TYPE_POOL_REVOKE_OP_ID",
	EnvelopeTypeEnvelopeTypeContractId:           "ENVELOPE_TYPE_CONTRACT_ID",
	EnvelopeTypeEnvelopeTypeSorobanAuthorization: "ENVELOPE_TYPE_SOROBAN_AUTHORIZATION",
}

func (e EnvelopeType) ValidEnum(v int32) bool {
	_, ok := envelopeTypeNames[EnvelopeType(v)]
	return ok
}

func (e EnvelopeType) String() string { return envelopeTypeNames[e] }

// MemoType is the discriminant for Memo.
type MemoType int32

const (
	MemoTypeMemoNone   MemoType = 0
	MemoTypeMemoText   MemoType = 1
	MemoTypeMemoId     MemoType = 2
	MemoTypeMemoHash   MemoType = 3
	MemoTypeMemoReturn MemoType = 4
)

var memoTypeNames = map[MemoType]string{
	MemoTypeMemoNone:   "MEMO_NONE",
	MemoTypeMemoText:   "MEMO_TEXT",
	MemoTypeMemoId:     "MEMO_ID",
	MemoTypeMemoHash:   "MEMO_HASH",
	MemoTypeMemoReturn: "MEMO_RETURN",
}

func (e MemoType) ValidEnum(v int32) bool {
	_, ok := memoTypeNames[MemoType(v)]
	return ok
}

func (e MemoType) String() string { return memoTypeNames[e] }

// MemoTypeFromString maps a canonical memo type name to its discriminant.
func MemoTypeFromString(s string) (MemoType, bool) {
	for k, v := range memoTypeNames {
		if v == s {
			return k, true
		}
	}
	return MemoType(-1), false
}

// PreconditionType is the discriminant for Preconditions.
type PreconditionType int32

const (
	PreconditionTypePrecondNone PreconditionType = 0
	PreconditionTypePrecondTime PreconditionType = 1
	PreconditionTypePrecondV2   PreconditionType = 2
)

var preconditionTypeNames = map[PreconditionType]string{
	PreconditionTypePrecondNone: "PRECOND_NONE",
	PreconditionTypePrecondTime: "PRECOND_TIME",
	PreconditionTypePrecondV2:   "PRECOND_V2",
}

func (e PreconditionType) ValidEnum(v int32) bool {
	_, ok := preconditionTypeNames[PreconditionType(v)]
	return ok
}

func (e PreconditionType) String() string { return preconditionTypeNames[e] }

// PreconditionTypeFromString maps a canonical precondition name to its
// discriminant.
func PreconditionTypeFromString(s string) (PreconditionType, bool) {
	for k, v := range preconditionTypeNames {
		if v == s {
			return k, true
		}
	}
	return PreconditionType(-1), false
}

// AssetType is the discriminant for Asset and its trust-line variants.
type AssetType int32

const (
	AssetTypeAssetTypeNative           AssetType = 0
	AssetTypeAssetTypeCreditAlphanum4  AssetType = 1
	AssetTypeAssetTypeCreditAlphanum12 AssetType = 2
	AssetTypeAssetTypePoolShare        AssetType = 3
)

var assetTypeNames = map[AssetType]string{
	AssetTypeAssetTypeNative:           "ASSET_TYPE_NATIVE",
	AssetTypeAssetTypeCreditAlphanum4:  "ASSET_TYPE_CREDIT_ALPHANUM4",
	AssetTypeAssetTypeCreditAlphanum12: "ASSET_TYPE_CREDIT_ALPHANUM12",
	AssetTypeAssetTypePoolShare:        "ASSET_TYPE_POOL_SHARE",
}

func (e AssetType) ValidEnum(v int32) bool {
	_, ok := assetTypeNames[AssetType(v)]
	return ok
}

func (e AssetType) String() string { return assetTypeNames[e] }

// OperationType is the discriminant for OperationBody.
type OperationType int32

const (
	OperationTypeCreateAccount                 OperationType = 0
	OperationTypePayment                       OperationType = 1
	OperationTypePathPaymentStrictReceive      OperationType = 2
	OperationTypeManageSellOffer               OperationType = 3
	OperationTypeCreatePassiveSellOffer        OperationType = 4
	OperationTypeSetOptions                    OperationType = 5
	OperationTypeChangeTrust                   OperationType = 6
	OperationTypeAllowTrust                    OperationType = 7
	OperationTypeAccountMerge                  OperationType = 8
	OperationTypeInflation                     OperationType = 9
	OperationTypeManageData                    OperationType = 10
	OperationTypeBumpSequence                  OperationType = 11
	OperationTypeManageBuyOffer                OperationType = 12
	OperationTypePathPaymentStrictSend         OperationType = 13
	OperationTypeCreateClaimableBalance        OperationType = 14
	OperationTypeClaimClaimableBalance         OperationType = 15
	OperationTypeBeginSponsoringFutureReserves OperationType = 16
	OperationTypeEndSponsoringFutureReserves   OperationType = 17
	OperationTypeRevokeSponsorship             OperationType = 18
	OperationTypeClawback                      OperationType = 19
	OperationTypeClawbackClaimableBalance      OperationType = 20
	OperationTypeSetTrustLineFlags             OperationType = 21
	OperationTypeLiquidityPoolDeposit          OperationType = 22
	OperationTypeLiquidityPoolWithdraw         OperationType = 23
	OperationTypeInvokeHostFunction            OperationType = 24
	OperationTypeExtendFootprintTtl            OperationType = 25
	OperationTypeRestoreFootprint              OperationType = 26
)

var operationTypeNames = map[OperationType]string{
	OperationTypeCreateAccount:                 "CREATE_ACCOUNT",
	OperationTypePayment:                       "PAYMENT",
	OperationTypePathPaymentStrictReceive:      "PATH_PAYMENT_STRICT_RECEIVE",
	OperationTypeManageSellOffer:               "MANAGE_SELL_OFFER",
	OperationTypeCreatePassiveSellOffer:        "CREATE_PASSIVE_SELL_OFFER",
	OperationTypeSetOptions:                    "SET_OPTIONS",
	OperationTypeChangeTrust:                   "CHANGE_TRUST",
	OperationTypeAllowTrust:                    "ALLOW_TRUST",
	OperationTypeAccountMerge:                  "ACCOUNT_MERGE",
	OperationTypeInflation:                     "INFLATION",
	OperationTypeManageData:                    "MANAGE_DATA",
	OperationTypeBumpSequence:                  "BUMP_SEQUENCE",
	OperationTypeManageBuyOffer:                "MANAGE_BUY_OFFER",
	OperationTypePathPaymentStrictSend:         "PATH_PAYMENT_STRICT_SEND",
	OperationTypeCreateClaimableBalance:        "CREATE_CLAIMABLE_BALANCE",
	OperationTypeClaimClaimableBalance:         "CLAIM_CLAIMABLE_BALANCE",
	OperationTypeBeginSponsoringFutureReserves: "BEGIN_SPONSORING_FUTURE_RESERVES",
	OperationTypeEndSponsoringFutureReserves:   "END_SPONSORING_FUTURE_RESERVES",
	OperationTypeRevokeSponsorship:             "REVOKE_SPONSORSHIP",
	OperationTypeClawback:                      "CLAWBACK",
	OperationTypeClawbackClaimableBalance:      "CLAWBACK_CLAIMABLE_BALANCE",
	OperationTypeSetTrustLineFlags:             "SET_TRUST_LINE_FLAGS",
	OperationTypeLiquidityPoolDeposit:          "LIQUIDITY_POOL_DEPOSIT",
	OperationTypeLiquidityPoolWithdraw:         "LIQUIDITY_POOL_WITHDRAW",
	OperationTypeInvokeHostFunction:            "INVOKE_HOST_FUNCTION",
	OperationTypeExtendFootprintTtl:            "EXTEND_FOOTPRINT_TTL",
	OperationTypeRestoreFootprint:              "RESTORE_FOOTPRINT",
}

func (e OperationType) ValidEnum(v int32) bool {
	_, ok := operationTypeNames[OperationType(v)]
	return ok
}

func (e OperationType) String() string { return operationTypeNames[e] }

// OperationTypeFromString maps a canonical operation type name to its
// discriminant.
func OperationTypeFromString(s string) (OperationType, bool) {
	for k, v := range operationTypeNames {
		if v == s {
			return k, true
		}
	}
	return OperationType(-1), false
}

// ClaimPredicateType is the discriminant for ClaimPredicate.
type ClaimPredicateType int32

const (
	ClaimPredicateTypeClaimPredicateUnconditional      ClaimPredicateType = 0
	ClaimPredicateTypeClaimPredicateAnd                ClaimPredicateType = 1
	ClaimPredicateTypeClaimPredicateOr                 ClaimPredicateType = 2
	ClaimPredicateTypeClaimPredicateNot                ClaimPredicateType = 3
	ClaimPredicateTypeClaimPredicateBeforeAbsoluteTime ClaimPredicateType = 4
	ClaimPredicateTypeClaimPredicateBeforeRelativeTime ClaimPredicateType = 5
)

var claimPredicateTypeNames = map[ClaimPredicateType]string{
	ClaimPredicateTypeClaimPredicateUnconditional:      "CLAIM_PREDICATE_UNCONDITIONAL",
	ClaimPredicateTypeClaimPredicateAnd:                "CLAIM_PREDICATE_AND",
	ClaimPredicateTypeClaimPredicateOr:                 "CLAIM_PREDICATE_OR",
	ClaimPredicateTypeClaimPredicateNot:                "CLAIM_PREDICATE_NOT",
	ClaimPredicateTypeClaimPredicateBeforeAbsoluteTime: "CLAIM_PREDICATE_BEFORE_ABSOLUTE_TIME",
	ClaimPredicateTypeClaimPredicateBeforeRelativeTime: "CLAIM_PREDICATE_BEFORE_RELATIVE_TIME",
}

func (e ClaimPredicateType) ValidEnum(v int32) bool {
	_, ok := claimPredicateTypeNames[ClaimPredicateType(v)]
	return ok
}

func (e ClaimPredicateType) String() string { return claimPredicateTypeNames[e] }

// ClaimPredicateTypeFromString maps a canonical predicate name to its
// discriminant.
func ClaimPredicateTypeFromString(s string) (ClaimPredicateType, bool) {
	for k, v := range claimPredicateTypeNames {
		if v == s {
			return k, true
		}
	}
	return ClaimPredicateType(-1), false
}

// ClaimantType is the discriminant for Claimant.
type ClaimantType int32

const (
	ClaimantTypeClaimantTypeV0 ClaimantType = 0
)

func (e ClaimantType) ValidEnum(v int32) bool {
	return ClaimantType(v) == ClaimantTypeClaimantTypeV0
}

func (e ClaimantType) String() string { return "CLAIMANT_TYPE_V0" }

// ClaimableBalanceIdType is the discriminant for ClaimableBalanceId.
type ClaimableBalanceIdType int32

const (
	ClaimableBalanceIdTypeClaimableBalanceIdTypeV0 ClaimableBalanceIdType = 0
)

func (e ClaimableBalanceIdType) ValidEnum(v int32) bool {
	return ClaimableBalanceIdType(v) == ClaimableBalanceIdTypeClaimableBalanceIdTypeV0
}

func (e ClaimableBalanceIdType) String() string { return "CLAIMABLE_BALANCE_ID_TYPE_V0" }

// LedgerEntryType is the discriminant for LedgerKey.
type LedgerEntryType int32

const (
	LedgerEntryTypeAccount          LedgerEntryType = 0
	LedgerEntryTypeTrustline        LedgerEntryType = 1
	LedgerEntryTypeOffer            LedgerEntryType = 2
	LedgerEntryTypeData             LedgerEntryType = 3
	LedgerEntryTypeClaimableBalance LedgerEntryType = 4
	LedgerEntryTypeLiquidityPool    LedgerEntryType = 5
	LedgerEntryTypeContractData     LedgerEntryType = 6
	LedgerEntryTypeContractCode     LedgerEntryType = 7
	LedgerEntryTypeConfigSetting    LedgerEntryType = 8
	LedgerEntryTypeTtl              LedgerEntryType = 9
)

var ledgerEntryTypeNames = map[LedgerEntryType]string{
	LedgerEntryTypeAccount:          "ACCOUNT",
	LedgerEntryTypeTrustline:        "TRUSTLINE",
	LedgerEntryTypeOffer:            "OFFER",
	LedgerEntryTypeData:             "DATA",
	LedgerEntryTypeClaimableBalance: "CLAIMABLE_BALANCE",
	LedgerEntryTypeLiquidityPool:    "LIQUIDITY_POOL",
	LedgerEntryTypeContractData:     "CONTRACT_DATA",
	LedgerEntryTypeContractCode:     "CONTRACT_CODE",
	LedgerEntryTypeConfigSetting:    "CONFIG_SETTING",
	LedgerEntryTypeTtl:              "TTL",
}

func (e LedgerEntryType) ValidEnum(v int32) bool {
	_, ok := ledgerEntryTypeNames[LedgerEntryType(v)]
	return ok
}

func (e LedgerEntryType) String() string { return ledgerEntryTypeNames[e] }

// LedgerEntryTypeFromString maps a canonical ledger entry name to its
// discriminant.
func LedgerEntryTypeFromString(s string) (LedgerEntryType, bool) {
	for k, v := range ledgerEntryTypeNames {
		if v == s {
			return k, true
		}
	}
	return LedgerEntryType(-1), false
}

// RevokeSponsorshipType is the discriminant for RevokeSponsorshipOp.
type RevokeSponsorshipType int32

const (
	RevokeSponsorshipTypeRevokeSponsorshipLedgerEntry RevokeSponsorshipType = 0
	RevokeSponsorshipTypeRevokeSponsorshipSigner      RevokeSponsorshipType = 1
)

var revokeSponsorshipTypeNames = map[RevokeSponsorshipType]string{
	RevokeSponsorshipTypeRevokeSponsorshipLedgerEntry: "REVOKE_SPONSORSHIP_LEDGER_ENTRY",
	RevokeSponsorshipTypeRevokeSponsorshipSigner:      "REVOKE_SPONSORSHIP_SIGNER",
}

func (e RevokeSponsorshipType) ValidEnum(v int32) bool {
	_, ok := revokeSponsorshipTypeNames[RevokeSponsorshipType(v)]
	return ok
}

func (e RevokeSponsorshipType) String() string { return revokeSponsorshipTypeNames[e] }

// LiquidityPoolType is the discriminant for LiquidityPoolParameters.
type LiquidityPoolType int32

const (
	LiquidityPoolTypeLiquidityPoolConstantProduct LiquidityPoolType = 0
)

func (e LiquidityPoolType) ValidEnum(v int32) bool {
	return LiquidityPoolType(v) == LiquidityPoolTypeLiquidityPoolConstantProduct
}

func (e LiquidityPoolType) String() string { return "LIQUIDITY_POOL_CONSTANT_PRODUCT" }

// HostFunctionType is the discriminant for HostFunction.
type HostFunctionType int32

const (
	HostFunctionTypeHostFunctionTypeInvokeContract     HostFunctionType = 0
	HostFunctionTypeHostFunctionTypeCreateContract     HostFunctionType = 1
	HostFunctionTypeHostFunctionTypeUploadContractWasm HostFunctionType = 2
)

var hostFunctionTypeNames = map[HostFunctionType]string{
	HostFunctionTypeHostFunctionTypeInvokeContract:     "HOST_FUNCTION_TYPE_INVOKE_CONTRACT",
	HostFunctionTypeHostFunctionTypeCreateContract:     "HOST_FUNCTION_TYPE_CREATE_CONTRACT",
	HostFunctionTypeHostFunctionTypeUploadContractWasm: "HOST_FUNCTION_TYPE_UPLOAD_CONTRACT_WASM",
}

func (e HostFunctionType) ValidEnum(v int32) bool {
	_, ok := hostFunctionTypeNames[HostFunctionType(v)]
	return ok
}

func (e HostFunctionType) String() string { return hostFunctionTypeNames[e] }

// ContractIdPreimageType is the discriminant for ContractIdPreimage.
type ContractIdPreimageType int32

const (
	ContractIdPreimageTypeContractIdPreimageFromAddress ContractIdPreimageType = 0
	ContractIdPreimageTypeContractIdPreimageFromAsset   ContractIdPreimageType = 1
)

func (e ContractIdPreimageType) ValidEnum(v int32) bool {
	return v == 0 || v == 1
}

func (e ContractIdPreimageType) String() string {
	if e == ContractIdPreimageTypeContractIdPreimageFromAsset {
		return "CONTRACT_ID_PREIMAGE_FROM_ASSET"
	}
	return "CONTRACT_ID_PREIMAGE_FROM_ADDRESS"
}

// ContractExecutableType is the discriminant for ContractExecutable.
type ContractExecutableType int32

const (
	ContractExecutableTypeContractExecutableWasm         ContractExecutableType = 0
	ContractExecutableTypeContractExecutableStellarAsset ContractExecutableType = 1
)

func (e ContractExecutableType) ValidEnum(v int32) bool {
	return v == 0 || v == 1
}

func (e ContractExecutableType) String() string {
	if e == ContractExecutableTypeContractExecutableStellarAsset {
		return "CONTRACT_EXECUTABLE_STELLAR_ASSET"
	}
	return "CONTRACT_EXECUTABLE_WASM"
}

// ScAddressType is the discriminant for ScAddress.
type ScAddressType int32

const (
	ScAddressTypeScAddressTypeAccount  ScAddressType = 0
	ScAddressTypeScAddressTypeContract ScAddressType = 1
)

func (e ScAddressType) ValidEnum(v int32) bool {
	return v == 0 || v == 1
}

func (e ScAddressType) String() string {
	if e == ScAddressTypeScAddressTypeContract {
		return "SC_ADDRESS_TYPE_CONTRACT"
	}
	return "SC_ADDRESS_TYPE_ACCOUNT"
}

// ScValType is the discriminant for ScVal.
type ScValType int32

const (
	ScValTypeScvBool                     ScValType = 0
	ScValTypeScvVoid                     ScValType = 1
	ScValTypeScvError                    ScValType = 2
	ScValTypeScvU32                      ScValType = 3
	ScValTypeScvI32                      ScValType = 4
	ScValTypeScvU64                      ScValType = 5
	ScValTypeScvI64                      ScValType = 6
	ScValTypeScvTimepoint                ScValType = 7
	ScValTypeScvDuration                 ScValType = 8
	ScValTypeScvU128                     ScValType = 9
	ScValTypeScvI128                     ScValType = 10
	ScValTypeScvU256                     ScValType = 11
	ScValTypeScvI256                     ScValType = 12
	ScValTypeScvBytes                    ScValType = 13
	ScValTypeScvString                   ScValType = 14
	ScValTypeScvSymbol                   ScValType = 15
	ScValTypeScvVec                      ScValType = 16
	ScValTypeScvMap                      ScValType = 17
	ScValTypeScvAddress                  ScValType = 18
	ScValTypeScvContractInstance         ScValType = 19
	ScValTypeScvLedgerKeyContractInstance ScValType = 20
	ScValTypeScvLedgerKeyNonce           ScValType = 21
)

func (e ScValType) ValidEnum(v int32) bool {
	return v >= 0 && v <= 21
}

// ScErrorType is the discriminant for ScError.
type ScErrorType int32

const (
	ScErrorTypeSceContract ScErrorType = 0
	ScErrorTypeSceWasmVm   ScErrorType = 1
	ScErrorTypeSceContext  ScErrorType = 2
	ScErrorTypeSceStorage  ScErrorType = 3
	ScErrorTypeSceObject   ScErrorType = 4
	ScErrorTypeSceCrypto   ScErrorType = 5
	ScErrorTypeSceEvents   ScErrorType = 6
	ScErrorTypeSceBudget   ScErrorType = 7
	ScErrorTypeSceValue    ScErrorType = 8
	ScErrorTypeSceAuth     ScErrorType = 9
)

func (e ScErrorType) ValidEnum(v int32) bool {
	return v >= 0 && v <= 9
}

// ScErrorCode enumerates the generic error codes shared by the non-contract
// error types.
type ScErrorCode int32

func (e ScErrorCode) ValidEnum(v int32) bool {
	return v >= 0 && v <= 10
}

// ContractDataDurability selects the storage class of a contract data entry.
type ContractDataDurability int32

const (
	ContractDataDurabilityTemporary  ContractDataDurability = 0
	ContractDataDurabilityPersistent ContractDataDurability = 1
)

func (e ContractDataDurability) ValidEnum(v int32) bool {
	return v == 0 || v == 1
}

func (e ContractDataDurability) String() string {
	if e == ContractDataDurabilityPersistent {
		return "PERSISTENT"
	}
	return "TEMPORARY"
}

// ContractDataDurabilityFromString maps a durability name to its
// discriminant.
func ContractDataDurabilityFromString(s string) (ContractDataDurability, bool) {
	switch s {
	case "TEMPORARY":
		return ContractDataDurabilityTemporary, true
	case "PERSISTENT":
		return ContractDataDurabilityPersistent, true
	}
	return ContractDataDurability(-1), false
}

// ConfigSettingId identifies a network configuration setting ledger entry.
type ConfigSettingId int32

func (e ConfigSettingId) ValidEnum(v int32) bool {
	return v >= 0 && v <= 13
}

// SorobanCredentialsType is the discriminant for SorobanCredentials.
type SorobanCredentialsType int32

const (
	SorobanCredentialsTypeSorobanCredentialsSourceAccount SorobanCredentialsType = 0
	SorobanCredentialsTypeSorobanCredentialsAddress       SorobanCredentialsType = 1
)

func (e SorobanCredentialsType) ValidEnum(v int32) bool {
	return v == 0 || v == 1
}

// SorobanAuthorizedFunctionType is the discriminant for
// SorobanAuthorizedFunction.
type SorobanAuthorizedFunctionType int32

const (
	SorobanAuthorizedFunctionTypeSorobanAuthorizedFunctionTypeContractFn         SorobanAuthorizedFunctionType = 0
	SorobanAuthorizedFunctionTypeSorobanAuthorizedFunctionTypeCreateContractHostFn SorobanAuthorizedFunctionType = 1
)

func (e SorobanAuthorizedFunctionType) ValidEnum(v int32) bool {
	return v == 0 || v == 1
}
