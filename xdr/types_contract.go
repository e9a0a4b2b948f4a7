package xdr

// ScAddress is a Soroban address: an account or a contract.
type ScAddress struct {
	Type       ScAddressType
	AccountId  *AccountId
	ContractId *Hash
}

func (u ScAddress) SwitchFieldName() string { return "Type" }

func (u ScAddress) ArmForSwitch(sw int32) (string, bool) {
	switch ScAddressType(sw) {
	case ScAddressTypeScAddressTypeAccount:
		return "AccountId", true
	case ScAddressTypeScAddressTypeContract:
		return "ContractId", true
	}
	return "-", false
}

// ScError is a structured host error value.
type ScError struct {
	Type         ScErrorType
	ContractCode *Uint32
	Code         *ScErrorCode
}

func (u ScError) SwitchFieldName() string { return "Type" }

func (u ScError) ArmForSwitch(sw int32) (string, bool) {
	switch {
	case ScErrorType(sw) == ScErrorTypeSceContract:
		return "ContractCode", true
	case sw >= 1 && sw <= 9:
		return "Code", true
	}
	return "-", false
}

// UInt128Parts is an unsigned 128-bit integer split into two 64-bit words.
type UInt128Parts struct {
	Hi Uint64
	Lo Uint64
}

// Int128Parts is a signed 128-bit integer split into two 64-bit words.
type Int128Parts struct {
	Hi Int64
	Lo Uint64
}

// UInt256Parts is an unsigned 256-bit integer split into four 64-bit words.
type UInt256Parts struct {
	HiHi Uint64
	HiLo Uint64
	LoHi Uint64
	LoLo Uint64
}

// Int256Parts is a signed 256-bit integer split into four 64-bit words.
type Int256Parts struct {
	HiHi Int64
	HiLo Uint64
	LoHi Uint64
	LoLo Uint64
}

// ScBytes is an unbounded opaque host value.
type ScBytes []byte

// ScString is a host string value.
type ScString string

// ScSymbol is a short host symbol, up to 32 bytes.
type ScSymbol string

// ScVec is a host vector of values.
type ScVec []ScVal

// ScMapEntry is a single key/value pair of an ScMap.
type ScMapEntry struct {
	Key ScVal
	Val ScVal
}

// ScMap is a host map of values.
type ScMap []ScMapEntry

// ScNonceKey keys an authorization nonce entry.
type ScNonceKey struct {
	Nonce Int64
}

// ScContractInstance is a deployed contract's executable plus its instance
// storage.
type ScContractInstance struct {
	Executable ContractExecutable
	Storage    **ScMap
}

// ScVal is the Soroban host value union.
type ScVal struct {
	Type      ScValType
	B         *bool
	Error     *ScError
	U32       *Uint32
	I32       *Int32
	U64       *Uint64
	I64       *Int64
	Timepoint *TimePoint
	Duration  *Duration
	U128      *UInt128Parts
	I128      *Int128Parts
	U256      *UInt256Parts
	I256      *Int256Parts
	Bytes     *ScBytes
	Str       *ScString
	Sym       *ScSymbol `xdrmaxsize:"32"`
	Vec       **ScVec
	Map       **ScMap
	Address   *ScAddress
	Instance  *ScContractInstance
	NonceKey  *ScNonceKey
}

func (u ScVal) SwitchFieldName() string { return "Type" }

func (u ScVal) ArmForSwitch(sw int32) (string, bool) {
	switch ScValType(sw) {
	case ScValTypeScvBool:
		return "B", true
	case ScValTypeScvVoid:
		return "", true
	case ScValTypeScvError:
		return "Error", true
	case ScValTypeScvU32:
		return "U32", true
	case ScValTypeScvI32:
		return "I32", true
	case ScValTypeScvU64:
		return "U64", true
	case ScValTypeScvI64:
		return "I64", true
	case ScValTypeScvTimepoint:
		return "Timepoint", true
	case ScValTypeScvDuration:
		return "Duration", true
	case ScValTypeScvU128:
		return "U128", true
	case ScValTypeScvI128:
		return "I128", true
	case ScValTypeScvU256:
		return "U256", true
	case ScValTypeScvI256:
		return "I256", true
	case ScValTypeScvBytes:
		return "Bytes", true
	case ScValTypeScvString:
		return "Str", true
	case ScValTypeScvSymbol:
		return "Sym", true
	case ScValTypeScvVec:
		return "Vec", true
	case ScValTypeScvMap:
		return "Map", true
	case ScValTypeScvAddress:
		return "Address", true
	case ScValTypeScvContractInstance:
		return "Instance", true
	case ScValTypeScvLedgerKeyContractInstance:
		return "", true
	case ScValTypeScvLedgerKeyNonce:
		return "NonceKey", true
	}
	return "-", false
}

// ContractExecutable selects the code backing a contract.
type ContractExecutable struct {
	Type     ContractExecutableType
	WasmHash *Hash
}

func (u ContractExecutable) SwitchFieldName() string { return "Type" }

func (u ContractExecutable) ArmForSwitch(sw int32) (string, bool) {
	switch ContractExecutableType(sw) {
	case ContractExecutableTypeContractExecutableWasm:
		return "WasmHash", true
	case ContractExecutableTypeContractExecutableStellarAsset:
		return "", true
	}
	return "-", false
}

// ContractIdPreimageFromAddress derives a contract id from a deployer
// address and a salt.
type ContractIdPreimageFromAddress struct {
	Address ScAddress
	Salt    Uint256
}

// ContractIdPreimage is the input to contract id derivation.
type ContractIdPreimage struct {
	Type        ContractIdPreimageType
	FromAddress *ContractIdPreimageFromAddress
	FromAsset   *Asset
}

func (u ContractIdPreimage) SwitchFieldName() string { return "Type" }

func (u ContractIdPreimage) ArmForSwitch(sw int32) (string, bool) {
	switch ContractIdPreimageType(sw) {
	case ContractIdPreimageTypeContractIdPreimageFromAddress:
		return "FromAddress", true
	case ContractIdPreimageTypeContractIdPreimageFromAsset:
		return "FromAsset", true
	}
	return "-", false
}

// CreateContractArgs deploys a contract.
type CreateContractArgs struct {
	ContractIdPreimage ContractIdPreimage
	Executable         ContractExecutable
}

// InvokeContractArgs names a contract function and its arguments.
type InvokeContractArgs struct {
	ContractAddress ScAddress
	FunctionName    ScSymbol `xdrmaxsize:"32"`
	Args            []ScVal
}

// HostFunction is the union of invokable host functions.
type HostFunction struct {
	Type           HostFunctionType
	InvokeContract *InvokeContractArgs
	CreateContract *CreateContractArgs
	Wasm           *[]byte
}

func (u HostFunction) SwitchFieldName() string { return "Type" }

func (u HostFunction) ArmForSwitch(sw int32) (string, bool) {
	switch HostFunctionType(sw) {
	case HostFunctionTypeHostFunctionTypeInvokeContract:
		return "InvokeContract", true
	case HostFunctionTypeHostFunctionTypeCreateContract:
		return "CreateContract", true
	case HostFunctionTypeHostFunctionTypeUploadContractWasm:
		return "Wasm", true
	}
	return "-", false
}

// SorobanAuthorizedFunction is the function named by an authorization entry.
type SorobanAuthorizedFunction struct {
	Type                 SorobanAuthorizedFunctionType
	ContractFn           *InvokeContractArgs
	CreateContractHostFn *CreateContractArgs
}

func (u SorobanAuthorizedFunction) SwitchFieldName() string { return "Type" }

func (u SorobanAuthorizedFunction) ArmForSwitch(sw int32) (string, bool) {
	switch SorobanAuthorizedFunctionType(sw) {
	case SorobanAuthorizedFunctionTypeSorobanAuthorizedFunctionTypeContractFn:
		return "ContractFn", true
	case SorobanAuthorizedFunctionTypeSorobanAuthorizedFunctionTypeCreateContractHostFn:
		return "CreateContractHostFn", true
	}
	return "-", false
}

// SorobanAuthorizedInvocation is a tree of authorized calls.
type SorobanAuthorizedInvocation struct {
	Function       SorobanAuthorizedFunction
	SubInvocations []SorobanAuthorizedInvocation
}

// SorobanAddressCredentials authorizes an invocation tree with an address
// signature.
type SorobanAddressCredentials struct {
	Address                   ScAddress
	Nonce                     Int64
	SignatureExpirationLedger Uint32
	Signature                 ScVal
}

// SorobanCredentials is the union of authorization credential kinds.
type SorobanCredentials struct {
	Type    SorobanCredentialsType
	Address *SorobanAddressCredentials
}

func (u SorobanCredentials) SwitchFieldName() string { return "Type" }

func (u SorobanCredentials) ArmForSwitch(sw int32) (string, bool) {
	switch SorobanCredentialsType(sw) {
	case SorobanCredentialsTypeSorobanCredentialsSourceAccount:
		return "", true
	case SorobanCredentialsTypeSorobanCredentialsAddress:
		return "Address", true
	}
	return "-", false
}

// SorobanAuthorizationEntry authorizes a tree of contract calls.
type SorobanAuthorizationEntry struct {
	Credentials    SorobanCredentials
	RootInvocation SorobanAuthorizedInvocation
}

// LedgerFootprint declares the ledger entries a Soroban transaction touches.
type LedgerFootprint struct {
	ReadOnly  []LedgerKey
	ReadWrite []LedgerKey
}

// SorobanResources declares the resources a Soroban transaction may consume.
type SorobanResources struct {
	Footprint    LedgerFootprint
	Instructions Uint32
	ReadBytes    Uint32
	WriteBytes   Uint32
}

// SorobanTransactionData is the transaction extension carrying Soroban
// resource declarations and the resource fee.
type SorobanTransactionData struct {
	Ext         ExtensionPoint
	Resources   SorobanResources
	ResourceFee Int64
}
