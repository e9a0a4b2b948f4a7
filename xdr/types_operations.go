package xdr

// CreateAccountOp funds and creates a new account.
type CreateAccountOp struct {
	Destination     AccountId
	StartingBalance Int64
}

// PaymentOp sends an amount of an asset to a destination account.
type PaymentOp struct {
	Destination MuxedAccount
	Asset       Asset
	Amount      Int64
}

// PathPaymentStrictReceiveOp pays a fixed destination amount through a path
// of offers, bounding what the sender gives up.
type PathPaymentStrictReceiveOp struct {
	SendAsset   Asset
	SendMax     Int64
	Destination MuxedAccount
	DestAsset   Asset
	DestAmount  Int64
	Path        []Asset `xdrmaxsize:"5"`
}

// PathPaymentStrictSendOp sends a fixed amount through a path of offers,
// bounding what the destination must receive.
type PathPaymentStrictSendOp struct {
	SendAsset   Asset
	SendAmount  Int64
	Destination MuxedAccount
	DestAsset   Asset
	DestMin     Int64
	Path        []Asset `xdrmaxsize:"5"`
}

// ManageSellOfferOp creates, updates, or deletes a sell offer.
type ManageSellOfferOp struct {
	Selling Asset
	Buying  Asset
	Amount  Int64
	Price   Price
	OfferId Int64
}

// ManageBuyOfferOp creates, updates, or deletes a buy offer.
type ManageBuyOfferOp struct {
	Selling   Asset
	Buying    Asset
	BuyAmount Int64
	Price     Price
	OfferId   Int64
}

// CreatePassiveSellOfferOp creates a sell offer that does not cross offers
// with the same price.
type CreatePassiveSellOfferOp struct {
	Selling Asset
	Buying  Asset
	Amount  Int64
	Price   Price
}

// SetOptionsOp adjusts account settings; every field is optional.
type SetOptionsOp struct {
	InflationDest *AccountId
	ClearFlags    *Uint32
	SetFlags      *Uint32
	MasterWeight  *Uint32
	LowThreshold  *Uint32
	MedThreshold  *Uint32
	HighThreshold *Uint32
	HomeDomain    *String32 `xdrmaxsize:"32"`
	Signer        *Signer
}

// ChangeTrustOp creates, updates, or deletes a trust line.
type ChangeTrustOp struct {
	Line  ChangeTrustAsset
	Limit Int64
}

// AllowTrustOp sets the authorization flags of a trust line held by the
// trustor.
type AllowTrustOp struct {
	Trustor   AccountId
	Asset     AssetCode
	Authorize Uint32
}

// ManageDataOp sets or deletes a named data entry. A nil value deletes the
// entry.
type ManageDataOp struct {
	DataName  String64 `xdrmaxsize:"64"`
	DataValue *DataValue
}

// BumpSequenceOp bumps the source account's sequence number.
type BumpSequenceOp struct {
	BumpTo SequenceNumber
}

// CreateClaimableBalanceOp locks an amount of an asset behind claimant
// predicates.
type CreateClaimableBalanceOp struct {
	Asset     Asset
	Amount    Int64
	Claimants []Claimant `xdrmaxsize:"10"`
}

// ClaimClaimableBalanceOp claims an existing claimable balance.
type ClaimClaimableBalanceOp struct {
	BalanceId ClaimableBalanceId
}

// BeginSponsoringFutureReservesOp starts sponsoring reserves for the
// sponsored account.
type BeginSponsoringFutureReservesOp struct {
	SponsoredId AccountId
}

// RevokeSponsorshipOpSigner identifies a sponsored signer entry.
type RevokeSponsorshipOpSigner struct {
	AccountId AccountId
	SignerKey SignerKey
}

// RevokeSponsorshipOp revokes the sponsorship of a ledger entry or of a
// signer.
type RevokeSponsorshipOp struct {
	Type      RevokeSponsorshipType
	LedgerKey *LedgerKey
	Signer    *RevokeSponsorshipOpSigner
}

func (u RevokeSponsorshipOp) SwitchFieldName() string { return "Type" }

func (u RevokeSponsorshipOp) ArmForSwitch(sw int32) (string, bool) {
	switch RevokeSponsorshipType(sw) {
	case RevokeSponsorshipTypeRevokeSponsorshipLedgerEntry:
		return "LedgerKey", true
	case RevokeSponsorshipTypeRevokeSponsorshipSigner:
		return "Signer", true
	}
	return "-", false
}

// ClawbackOp claws back an amount of a clawback-enabled asset from an
// account.
type ClawbackOp struct {
	Asset  Asset
	From   MuxedAccount
	Amount Int64
}

// ClawbackClaimableBalanceOp claws back an entire claimable balance.
type ClawbackClaimableBalanceOp struct {
	BalanceId ClaimableBalanceId
}

// SetTrustLineFlagsOp sets and clears flags on a trust line.
type SetTrustLineFlagsOp struct {
	Trustor    AccountId
	Asset      Asset
	ClearFlags Uint32
	SetFlags   Uint32
}

// LiquidityPoolDepositOp deposits into a liquidity pool.
type LiquidityPoolDepositOp struct {
	LiquidityPoolId PoolId
	MaxAmountA      Int64
	MaxAmountB      Int64
	MinPrice        Price
	MaxPrice        Price
}

// LiquidityPoolWithdrawOp withdraws from a liquidity pool.
type LiquidityPoolWithdrawOp struct {
	LiquidityPoolId PoolId
	Amount          Int64
	MinAmountA      Int64
	MinAmountB      Int64
}

// InvokeHostFunctionOp invokes a Soroban host function with its
// authorization entries.
type InvokeHostFunctionOp struct {
	HostFunction HostFunction
	Auth         []SorobanAuthorizationEntry
}

// ExtendFootprintTtlOp extends the time-to-live of the entries in the
// transaction's footprint.
type ExtendFootprintTtlOp struct {
	Ext      ExtensionPoint
	ExtendTo Uint32
}

// RestoreFootprintOp restores archived entries in the transaction's
// footprint.
type RestoreFootprintOp struct {
	Ext ExtensionPoint
}

// ExtensionPoint is a void extension slot.
type ExtensionPoint struct {
	V int32
}

func (u ExtensionPoint) SwitchFieldName() string { return "V" }

func (u ExtensionPoint) ArmForSwitch(sw int32) (string, bool) {
	if sw == 0 {
		return "", true
	}
	return "-", false
}

// OperationBody is the operation union. Inflation and
// EndSponsoringFutureReserves are void arms; AccountMerge's arm is the bare
// destination account.
type OperationBody struct {
	Type                            OperationType
	CreateAccountOp                 *CreateAccountOp
	PaymentOp                       *PaymentOp
	PathPaymentStrictReceiveOp      *PathPaymentStrictReceiveOp
	ManageSellOfferOp               *ManageSellOfferOp
	CreatePassiveSellOfferOp        *CreatePassiveSellOfferOp
	SetOptionsOp                    *SetOptionsOp
	ChangeTrustOp                   *ChangeTrustOp
	AllowTrustOp                    *AllowTrustOp
	Destination                     *MuxedAccount
	ManageDataOp                    *ManageDataOp
	BumpSequenceOp                  *BumpSequenceOp
	ManageBuyOfferOp                *ManageBuyOfferOp
	PathPaymentStrictSendOp         *PathPaymentStrictSendOp
	CreateClaimableBalanceOp        *CreateClaimableBalanceOp
	ClaimClaimableBalanceOp         *ClaimClaimableBalanceOp
	BeginSponsoringFutureReservesOp *BeginSponsoringFutureReservesOp
	RevokeSponsorshipOp             *RevokeSponsorshipOp
	ClawbackOp                      *ClawbackOp
	ClawbackClaimableBalanceOp      *ClawbackClaimableBalanceOp
	SetTrustLineFlagsOp             *SetTrustLineFlagsOp
	LiquidityPoolDepositOp          *LiquidityPoolDepositOp
	LiquidityPoolWithdrawOp         *LiquidityPoolWithdrawOp
	InvokeHostFunctionOp            *InvokeHostFunctionOp
	ExtendFootprintTtlOp            *ExtendFootprintTtlOp
	RestoreFootprintOp              *RestoreFootprintOp
}

func (u OperationBody) SwitchFieldName() string { return "Type" }

func (u OperationBody) ArmForSwitch(sw int32) (string, bool) {
	switch OperationType(sw) {
	case OperationTypeCreateAccount:
		return "CreateAccountOp", true
	case OperationTypePayment:
		return "PaymentOp", true
	case OperationTypePathPaymentStrictReceive:
		return "PathPaymentStrictReceiveOp", true
	case OperationTypeManageSellOffer:
		return "ManageSellOfferOp", true
	case OperationTypeCreatePassiveSellOffer:
		return "CreatePassiveSellOfferOp", true
	case OperationTypeSetOptions:
		return "SetOptionsOp", true
	case OperationTypeChangeTrust:
		return "ChangeTrustOp", true
	case OperationTypeAllowTrust:
		return "AllowTrustOp", true
	case OperationTypeAccountMerge:
		return "Destination", true
	case OperationTypeInflation:
		return "", true
	case OperationTypeManageData:
		return "ManageDataOp", true
	case OperationTypeBumpSequence:
		return "BumpSequenceOp", true
	case OperationTypeManageBuyOffer:
		return "ManageBuyOfferOp", true
	case OperationTypePathPaymentStrictSend:
		return "PathPaymentStrictSendOp", true
	case OperationTypeCreateClaimableBalance:
		return "CreateClaimableBalanceOp", true
	case OperationTypeClaimClaimableBalance:
		return "ClaimClaimableBalanceOp", true
	case OperationTypeBeginSponsoringFutureReserves:
		return "BeginSponsoringFutureReservesOp", true
	case OperationTypeEndSponsoringFutureReserves:
		return "", true
	case OperationTypeRevokeSponsorship:
		return "RevokeSponsorshipOp", true
	case OperationTypeClawback:
		return "ClawbackOp", true
	case OperationTypeClawbackClaimableBalance:
		return "ClawbackClaimableBalanceOp", true
	case OperationTypeSetTrustLineFlags:
		return "SetTrustLineFlagsOp", true
	case OperationTypeLiquidityPoolDeposit:
		return "LiquidityPoolDepositOp", true
	case OperationTypeLiquidityPoolWithdraw:
		return "LiquidityPoolWithdrawOp", true
	case OperationTypeInvokeHostFunction:
		return "InvokeHostFunctionOp", true
	case OperationTypeExtendFootprintTtl:
		return "ExtendFootprintTtlOp", true
	case OperationTypeRestoreFootprint:
		return "RestoreFootprintOp", true
	}
	return "-", false
}

// Operation is a single operation with an optional overriding source
// account.
type Operation struct {
	SourceAccount *MuxedAccount
	Body          OperationBody
}

// LedgerKeyAccount keys an account entry.
type LedgerKeyAccount struct {
	AccountId AccountId
}

// LedgerKeyTrustLine keys a trust line entry.
type LedgerKeyTrustLine struct {
	AccountId AccountId
	Asset     TrustLineAsset
}

// LedgerKeyOffer keys an offer entry.
type LedgerKeyOffer struct {
	SellerId AccountId
	OfferId  Int64
}

// LedgerKeyData keys a managed data entry.
type LedgerKeyData struct {
	AccountId AccountId
	DataName  String64 `xdrmaxsize:"64"`
}

// LedgerKeyClaimableBalance keys a claimable balance entry.
type LedgerKeyClaimableBalance struct {
	BalanceId ClaimableBalanceId
}

// LedgerKeyLiquidityPool keys a liquidity pool entry.
type LedgerKeyLiquidityPool struct {
	LiquidityPoolId PoolId
}

// LedgerKeyContractData keys a Soroban contract data entry.
type LedgerKeyContractData struct {
	Contract   ScAddress
	Key        ScVal
	Durability ContractDataDurability
}

// LedgerKeyContractCode keys an uploaded contract wasm blob.
type LedgerKeyContractCode struct {
	Hash Hash
}

// LedgerKeyConfigSetting keys a network configuration setting.
type LedgerKeyConfigSetting struct {
	ConfigSettingId ConfigSettingId
}

// LedgerKeyTtl keys the time-to-live entry of a Soroban ledger entry.
type LedgerKeyTtl struct {
	KeyHash Hash
}

// LedgerKey is the union of all ledger entry keys.
type LedgerKey struct {
	Type             LedgerEntryType
	Account          *LedgerKeyAccount
	TrustLine        *LedgerKeyTrustLine
	Offer            *LedgerKeyOffer
	Data             *LedgerKeyData
	ClaimableBalance *LedgerKeyClaimableBalance
	LiquidityPool    *LedgerKeyLiquidityPool
	ContractData     *LedgerKeyContractData
	ContractCode     *LedgerKeyContractCode
	ConfigSetting    *LedgerKeyConfigSetting
	Ttl              *LedgerKeyTtl
}

func (u LedgerKey) SwitchFieldName() string { return "Type" }

func (u LedgerKey) ArmForSwitch(sw int32) (string, bool) {
	switch LedgerEntryType(sw) {
	case LedgerEntryTypeAccount:
		return "Account", true
	case LedgerEntryTypeTrustline:
		return "TrustLine", true
	case LedgerEntryTypeOffer:
		return "Offer", true
	case LedgerEntryTypeData:
		return "Data", true
	case LedgerEntryTypeClaimableBalance:
		return "ClaimableBalance", true
	case LedgerEntryTypeLiquidityPool:
		return "LiquidityPool", true
	case LedgerEntryTypeContractData:
		return "ContractData", true
	case LedgerEntryTypeContractCode:
		return "ContractCode", true
	case LedgerEntryTypeConfigSetting:
		return "ConfigSetting", true
	case LedgerEntryTypeTtl:
		return "Ttl", true
	}
	return "-", false
}
