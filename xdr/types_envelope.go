package xdr

// AccountId is an ed25519 public key identifying an account.
type AccountId struct {
	Type    PublicKeyType
	Ed25519 *Uint256
}

func (u AccountId) SwitchFieldName() string { return "Type" }

func (u AccountId) ArmForSwitch(sw int32) (string, bool) {
	if PublicKeyType(sw) == PublicKeyTypePublicKeyTypeEd25519 {
		return "Ed25519", true
	}
	return "-", false
}

// MuxedAccountMed25519 multiplexes an ed25519 account key with a 64-bit id.
type MuxedAccountMed25519 struct {
	Id      Uint64
	Ed25519 Uint256
}

// MuxedAccount is an account address that optionally carries a multiplexing
// id.
type MuxedAccount struct {
	Type     CryptoKeyType
	Ed25519  *Uint256
	Med25519 *MuxedAccountMed25519
}

func (u MuxedAccount) SwitchFieldName() string { return "Type" }

func (u MuxedAccount) ArmForSwitch(sw int32) (string, bool) {
	switch CryptoKeyType(sw) {
	case CryptoKeyTypeKeyTypeEd25519:
		return "Ed25519", true
	case CryptoKeyTypeKeyTypeMuxedEd25519:
		return "Med25519", true
	}
	return "-", false
}

// SignerKeyEd25519SignedPayload binds an ed25519 key to a payload that must
// be echoed back in the signature.
type SignerKeyEd25519SignedPayload struct {
	Ed25519 Uint256
	Payload []byte `xdrmaxsize:"64"`
}

// SignerKey is one of the four signer key kinds.
type SignerKey struct {
	Type                 SignerKeyType
	Ed25519              *Uint256
	PreAuthTx            *Uint256
	HashX                *Uint256
	Ed25519SignedPayload *SignerKeyEd25519SignedPayload
}

func (u SignerKey) SwitchFieldName() string { return "Type" }

func (u SignerKey) ArmForSwitch(sw int32) (string, bool) {
	switch SignerKeyType(sw) {
	case SignerKeyTypeSignerKeyTypeEd25519:
		return "Ed25519", true
	case SignerKeyTypeSignerKeyTypePreAuthTx:
		return "PreAuthTx", true
	case SignerKeyTypeSignerKeyTypeHashX:
		return "HashX", true
	case SignerKeyTypeSignerKeyTypeEd25519SignedPayload:
		return "Ed25519SignedPayload", true
	}
	return "-", false
}

// Signer pairs a signer key with its weight.
type Signer struct {
	Key    SignerKey
	Weight Uint32
}

// TimeBounds restricts the validity window of a transaction. A zero bound
// means the bound is absent.
type TimeBounds struct {
	MinTime TimePoint
	MaxTime TimePoint
}

// LedgerBounds restricts the ledger range a transaction is valid in.
type LedgerBounds struct {
	MinLedger Uint32
	MaxLedger Uint32
}

// PreconditionsV2 is the extended precondition set introduced with protocol
// 19.
type PreconditionsV2 struct {
	TimeBounds      *TimeBounds
	LedgerBounds    *LedgerBounds
	MinSeqNum       *SequenceNumber
	MinSeqAge       Duration
	MinSeqLedgerGap Uint32
	ExtraSigners    []SignerKey `xdrmaxsize:"2"`
}

// Preconditions is the union of the three precondition representations.
type Preconditions struct {
	Type       PreconditionType
	TimeBounds *TimeBounds
	V2         *PreconditionsV2
}

func (u Preconditions) SwitchFieldName() string { return "Type" }

func (u Preconditions) ArmForSwitch(sw int32) (string, bool) {
	switch PreconditionType(sw) {
	case PreconditionTypePrecondNone:
		return "", true
	case PreconditionTypePrecondTime:
		return "TimeBounds", true
	case PreconditionTypePrecondV2:
		return "V2", true
	}
	return "-", false
}

// Memo is the transaction memo union.
type Memo struct {
	Type    MemoType
	Text    *string `xdrmaxsize:"28"`
	Id      *Uint64
	Hash    *Hash
	RetHash *Hash
}

func (u Memo) SwitchFieldName() string { return "Type" }

func (u Memo) ArmForSwitch(sw int32) (string, bool) {
	switch MemoType(sw) {
	case MemoTypeMemoNone:
		return "", true
	case MemoTypeMemoText:
		return "Text", true
	case MemoTypeMemoId:
		return "Id", true
	case MemoTypeMemoHash:
		return "Hash", true
	case MemoTypeMemoReturn:
		return "RetHash", true
	}
	return "-", false
}

// DecoratedSignature is a signature together with a hint identifying the
// signing key.
type DecoratedSignature struct {
	Hint      SignatureHint
	Signature Signature `xdrmaxsize:"64"`
}

// TransactionExt carries the optional Soroban extension of a transaction.
type TransactionExt struct {
	V           int32
	SorobanData *SorobanTransactionData
}

func (u TransactionExt) SwitchFieldName() string { return "V" }

func (u TransactionExt) ArmForSwitch(sw int32) (string, bool) {
	switch sw {
	case 0:
		return "", true
	case 1:
		return "SorobanData", true
	}
	return "-", false
}

// Transaction is a v1 transaction.
type Transaction struct {
	SourceAccount MuxedAccount
	Fee           Uint32
	SeqNum        SequenceNumber
	Cond          Preconditions
	Memo          Memo
	Operations    []Operation `xdrmaxsize:"100"`
	Ext           TransactionExt
}

// TransactionV0Ext is the (empty) extension of a v0 transaction.
type TransactionV0Ext struct {
	V int32
}

func (u TransactionV0Ext) SwitchFieldName() string { return "V" }

func (u TransactionV0Ext) ArmForSwitch(sw int32) (string, bool) {
	if sw == 0 {
		return "", true
	}
	return "-", false
}

// TransactionV0 is the legacy transaction form whose source account is a
// bare ed25519 key.
type TransactionV0 struct {
	SourceAccountEd25519 Uint256
	Fee                  Uint32
	SeqNum               SequenceNumber
	TimeBounds           *TimeBounds
	Memo                 Memo
	Operations           []Operation `xdrmaxsize:"100"`
	Ext                  TransactionV0Ext
}

// TransactionV0Envelope is a v0 transaction plus its signatures.
type TransactionV0Envelope struct {
	Tx         TransactionV0
	Signatures []DecoratedSignature `xdrmaxsize:"20"`
}

// TransactionV1Envelope is a v1 transaction plus its signatures.
type TransactionV1Envelope struct {
	Tx         Transaction
	Signatures []DecoratedSignature `xdrmaxsize:"20"`
}

// FeeBumpTransactionInnerTx wraps the inner envelope of a fee bump. Only a
// v1 envelope is legal here; a fee bump cannot wrap another fee bump.
type FeeBumpTransactionInnerTx struct {
	Type EnvelopeType
	V1   *TransactionV1Envelope
}

func (u FeeBumpTransactionInnerTx) SwitchFieldName() string { return "Type" }

func (u FeeBumpTransactionInnerTx) ArmForSwitch(sw int32) (string, bool) {
	if EnvelopeType(sw) == EnvelopeTypeEnvelopeTypeTx {
		return "V1", true
	}
	return "-", false
}

// FeeBumpTransactionExt is the (empty) extension of a fee bump transaction.
type FeeBumpTransactionExt struct {
	V int32
}

func (u FeeBumpTransactionExt) SwitchFieldName() string { return "V" }

func (u FeeBumpTransactionExt) ArmForSwitch(sw int32) (string, bool) {
	if sw == 0 {
		return "", true
	}
	return "-", false
}

// FeeBumpTransaction re-submits an inner transaction with a new fee paid by
// FeeSource.
type FeeBumpTransaction struct {
	FeeSource MuxedAccount
	Fee       Int64
	InnerTx   FeeBumpTransactionInnerTx
	Ext       FeeBumpTransactionExt
}

// FeeBumpTransactionEnvelope is a fee bump transaction plus the outer
// signatures.
type FeeBumpTransactionEnvelope struct {
	Tx         FeeBumpTransaction
	Signatures []DecoratedSignature `xdrmaxsize:"20"`
}

// TransactionEnvelope is the top-level signed transaction container.
type TransactionEnvelope struct {
	Type    EnvelopeType
	V0      *TransactionV0Envelope
	V1      *TransactionV1Envelope
	FeeBump *FeeBumpTransactionEnvelope
}

func (u TransactionEnvelope) SwitchFieldName() string { return "Type" }

func (u TransactionEnvelope) ArmForSwitch(sw int32) (string, bool) {
	switch EnvelopeType(sw) {
	case EnvelopeTypeEnvelopeTypeTxV0:
		return "V0", true
	case EnvelopeTypeEnvelopeTypeTx:
		return "V1", true
	case EnvelopeTypeEnvelopeTypeTxFeeBump:
		return "FeeBump", true
	}
	return "-", false
}
