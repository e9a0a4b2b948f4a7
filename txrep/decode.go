package txrep

import (
	"encoding/hex"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/stellar/txrep/xdr"
)

const (
	maxOperations     = 100
	maxSignatures     = 20
	maxExtraSigners   = 2
	maxPathLength     = 5
	maxClaimants      = 10
	maxPredicateDepth = 50
	maxMemoTextBytes  = 28
	maxSignatureBytes = 64
	maxDataBytes      = 64
	maxHomeDomain     = 32
)

// FromTxrep parses txrep text and returns the base64 XDR encoding of the
// reconstructed envelope.
func FromTxrep(text string) (string, error) {
	env, err := FromTxrepEnvelope(text)
	if err != nil {
		return "", err
	}
	return xdr.MarshalBase64(env)
}

// FromTxrepEnvelope parses txrep text into a transaction envelope. Decoding
// is order independent: keys may appear in any order, unknown keys and
// trailing comments are ignored, and duplicate keys take the last value.
func FromTxrepEnvelope(text string) (xdr.TransactionEnvelope, error) {
	d := newDecoder(text)
	var env xdr.TransactionEnvelope

	typ, err := d.get("type")
	if err != nil {
		return env, err
	}
	switch typ {
	case "ENVELOPE_TYPE_TX":
		tx, err := d.transaction("tx")
		if err != nil {
			return env, err
		}
		sigs, err := d.signatures("")
		if err != nil {
			return env, err
		}
		env.Type = xdr.EnvelopeTypeEnvelopeTypeTx
		env.V1 = &xdr.TransactionV1Envelope{Tx: tx, Signatures: sigs}
	case "ENVELOPE_TYPE_TX_V0":
		tx, err := d.transactionV0()
		if err != nil {
			return env, err
		}
		sigs, err := d.signatures("")
		if err != nil {
			return env, err
		}
		env.Type = xdr.EnvelopeTypeEnvelopeTypeTxV0
		env.V0 = &xdr.TransactionV0Envelope{Tx: tx, Signatures: sigs}
	case "ENVELOPE_TYPE_TX_FEE_BUMP":
		fb, err := d.feeBump()
		if err != nil {
			return env, err
		}
		env.Type = xdr.EnvelopeTypeEnvelopeTypeTxFeeBump
		env.FeeBump = fb
	default:
		return env, UnsupportedVariantError{Key: "type", Variant: typ}
	}
	return env, nil
}

type decoder struct {
	m map[string]string
}

func newDecoder(text string) *decoder {
	d := &decoder{m: make(map[string]string)}
	for _, line := range strings.Split(text, "\n") {
		idx := strings.Index(line, ":")
		if idx < 0 {
			continue
		}
		key := strings.TrimSpace(line[:idx])
		if key == "" {
			continue
		}
		value := stripComment(strings.TrimSpace(line[idx+1:]))
		d.m[key] = value
	}
	return d
}

// stripComment removes a trailing parenthetical comment. A value starting
// with a double quote extends to the matching closing quote; anything after
// it is a comment. An unquoted value ends at the first " (" sequence.
func stripComment(v string) string {
	if strings.HasPrefix(v, `"`) {
		for i := 1; i < len(v); i++ {
			switch v[i] {
			case '\\':
				i++
			case '"':
				return v[:i+1]
			}
		}
		return v
	}
	if i := strings.Index(v, " ("); i >= 0 {
		return strings.TrimSpace(v[:i])
	}
	return v
}

func (d *decoder) has(key string) bool {
	_, ok := d.m[key]
	return ok
}

func (d *decoder) get(key string) (string, error) {
	v, ok := d.m[key]
	if !ok {
		return "", MissingFieldError{Key: key}
	}
	return v, nil
}

func (d *decoder) getInt64(key string) (int64, error) {
	v, err := d.get(key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, InvalidValueError{Key: key, Value: v}
	}
	return n, nil
}

func (d *decoder) getInt32(key string) (int32, error) {
	v, err := d.get(key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		return 0, InvalidValueError{Key: key, Value: v}
	}
	return int32(n), nil
}

func (d *decoder) getUint64(key string) (uint64, error) {
	v, err := d.get(key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, InvalidValueError{Key: key, Value: v}
	}
	return n, nil
}

func (d *decoder) getUint32(key string) (uint32, error) {
	v, err := d.get(key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return 0, InvalidValueError{Key: key, Value: v}
	}
	return uint32(n), nil
}

func (d *decoder) getBool(key string) (bool, error) {
	v, err := d.get(key)
	if err != nil {
		return false, err
	}
	switch v {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, InvalidValueError{Key: key, Value: v}
}

// getLen reads a ".len" counter and enforces its upper bound. Indexed
// entries at or beyond the declared count are rejected so a declared length
// cannot silently drop trailing elements.
func (d *decoder) getLen(key string, limit int64) (int, error) {
	n, err := d.getInt64(key)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, InvalidValueError{Key: key, Value: strconv.FormatInt(n, 10)}
	}
	if n > limit {
		return 0, BoundsExceededError{Key: key, Limit: limit, Actual: n}
	}
	prefix := strings.TrimSuffix(key, ".len") + "["
	for k := range d.m {
		if !strings.HasPrefix(k, prefix) {
			continue
		}
		rest := k[len(prefix):]
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			continue
		}
		idx, err := strconv.ParseInt(rest[:end], 10, 64)
		if err != nil {
			continue
		}
		if idx >= n {
			return 0, InvalidValueError{Key: key, Value: strconv.FormatInt(n, 10)}
		}
	}
	return int(n), nil
}

// present reads the "._present" flag of an optional. When the flag is false,
// none of valueKeys may also be set: a false flag next to a populated value
// is contradictory and rejected rather than guessed at.
func (d *decoder) present(base string, valueKeys ...string) (bool, error) {
	flagKey := base + "._present"
	p, err := d.getBool(flagKey)
	if err != nil {
		return false, err
	}
	if !p {
		for _, vk := range append(valueKeys, base) {
			if d.has(vk) {
				return false, InvalidValueError{Key: flagKey, Value: "false"}
			}
		}
	}
	return p, nil
}

func (d *decoder) getQuoted(key string, limit int64) (string, error) {
	v, err := d.get(key)
	if err != nil {
		return "", err
	}
	s, err := strconv.Unquote(v)
	if err != nil {
		return "", InvalidValueError{Key: key, Value: v}
	}
	if int64(len(s)) > limit {
		return "", BoundsExceededError{Key: key, Limit: limit, Actual: int64(len(s))}
	}
	return s, nil
}

func (d *decoder) getHex(key string) ([]byte, error) {
	v, err := d.get(key)
	if err != nil {
		return nil, err
	}
	b, err := hex.DecodeString(v)
	if err != nil {
		return nil, InvalidValueError{Key: key, Value: v}
	}
	return b, nil
}

func (d *decoder) getHash(key string) (xdr.Hash, error) {
	var h xdr.Hash
	b, err := d.getHex(key)
	if err != nil {
		return h, err
	}
	if len(b) != len(h) {
		return h, InvalidValueError{Key: key, Value: hex.EncodeToString(b)}
	}
	copy(h[:], b)
	return h, nil
}

func (d *decoder) getBase64(key string, dest interface{}) error {
	v, err := d.get(key)
	if err != nil {
		return err
	}
	if err := xdr.UnmarshalBase64(v, dest); err != nil {
		return InvalidValueError{Key: key, Value: v}
	}
	return nil
}

func (d *decoder) muxedAccount(key string) (xdr.MuxedAccount, error) {
	var m xdr.MuxedAccount
	v, err := d.get(key)
	if err != nil {
		return m, err
	}
	if err := m.SetAddress(v); err != nil {
		return m, InvalidAddressError{Value: v}
	}
	return m, nil
}

func (d *decoder) accountId(key string) (xdr.AccountId, error) {
	var a xdr.AccountId
	v, err := d.get(key)
	if err != nil {
		return a, err
	}
	if err := a.SetAddress(v); err != nil {
		return a, InvalidAddressError{Value: v}
	}
	return a, nil
}

func (d *decoder) signerKey(key string) (xdr.SignerKey, error) {
	var s xdr.SignerKey
	v, err := d.get(key)
	if err != nil {
		return s, err
	}
	if err := s.SetAddress(v); err != nil {
		return s, InvalidAddressError{Value: v}
	}
	return s, nil
}

func (d *decoder) scAddress(key string) (xdr.ScAddress, error) {
	var a xdr.ScAddress
	v, err := d.get(key)
	if err != nil {
		return a, err
	}
	if err := a.SetAddress(v); err != nil {
		return a, InvalidAddressError{Value: v}
	}
	return a, nil
}

func (d *decoder) asset(key string) (xdr.Asset, error) {
	v, err := d.get(key)
	if err != nil {
		return xdr.Asset{}, err
	}
	a, err := xdr.ParseAssetString(v)
	if err != nil {
		return xdr.Asset{}, InvalidValueError{Key: key, Value: v}
	}
	return a, nil
}

func (d *decoder) amount(key string) (xdr.Int64, error) {
	n, err := d.getInt64(key)
	return xdr.Int64(n), err
}

func (d *decoder) price(p string) (xdr.Price, error) {
	n, err := d.getInt32(p + ".n")
	if err != nil {
		return xdr.Price{}, err
	}
	dn, err := d.getInt32(p + ".d")
	if err != nil {
		return xdr.Price{}, err
	}
	return xdr.Price{N: xdr.Int32(n), D: xdr.Int32(dn)}, nil
}

func (d *decoder) transaction(p string) (xdr.Transaction, error) {
	var tx xdr.Transaction
	var err error

	if tx.SourceAccount, err = d.muxedAccount(p + ".sourceAccount"); err != nil {
		return tx, err
	}
	fee, err := d.getUint32(p + ".fee")
	if err != nil {
		return tx, err
	}
	tx.Fee = xdr.Uint32(fee)
	seq, err := d.getInt64(p + ".seqNum")
	if err != nil {
		return tx, err
	}
	tx.SeqNum = xdr.SequenceNumber(seq)
	if tx.Cond, err = d.cond(p + ".cond"); err != nil {
		return tx, err
	}
	if tx.Memo, err = d.memo(p + ".memo"); err != nil {
		return tx, err
	}
	if tx.Operations, err = d.operations(p); err != nil {
		return tx, err
	}
	extV, err := d.getInt64(p + ".ext.v")
	if err != nil {
		return tx, err
	}
	switch extV {
	case 0:
		tx.Ext = xdr.TransactionExt{V: 0}
	case 1:
		data, err := d.sorobanData(p + ".sorobanData")
		if err != nil {
			return tx, err
		}
		tx.Ext = xdr.TransactionExt{V: 1, SorobanData: &data}
	default:
		return tx, UnsupportedVariantError{Key: p + ".ext.v", Variant: strconv.FormatInt(extV, 10)}
	}
	return tx, nil
}

func (d *decoder) transactionV0() (xdr.TransactionV0, error) {
	var tx xdr.TransactionV0

	source, err := d.muxedAccount("tx.sourceAccount")
	if err != nil {
		return tx, err
	}
	if source.Type != xdr.CryptoKeyTypeKeyTypeEd25519 {
		v, _ := d.get("tx.sourceAccount")
		return tx, InvalidAddressError{Value: v}
	}
	tx.SourceAccountEd25519 = *source.Ed25519

	fee, err := d.getUint32("tx.fee")
	if err != nil {
		return tx, err
	}
	tx.Fee = xdr.Uint32(fee)
	seq, err := d.getInt64("tx.seqNum")
	if err != nil {
		return tx, err
	}
	tx.SeqNum = xdr.SequenceNumber(seq)

	hasBounds, err := d.present("tx.timeBounds",
		"tx.timeBounds.minTime", "tx.timeBounds.maxTime")
	if err != nil {
		return tx, err
	}
	if hasBounds {
		tb, err := d.timeBounds("tx.timeBounds")
		if err != nil {
			return tx, err
		}
		tx.TimeBounds = &tb
	}
	if tx.Memo, err = d.memo("tx.memo"); err != nil {
		return tx, err
	}
	if tx.Operations, err = d.operations("tx"); err != nil {
		return tx, err
	}
	extV, err := d.getInt64("tx.ext.v")
	if err != nil {
		return tx, err
	}
	if extV != 0 {
		return tx, UnsupportedVariantError{Key: "tx.ext.v", Variant: strconv.FormatInt(extV, 10)}
	}
	return tx, nil
}

func (d *decoder) feeBump() (*xdr.FeeBumpTransactionEnvelope, error) {
	var fb xdr.FeeBumpTransaction
	var err error

	if fb.FeeSource, err = d.muxedAccount("feeBump.tx.feeSource"); err != nil {
		return nil, err
	}
	fee, err := d.getInt64("feeBump.tx.fee")
	if err != nil {
		return nil, err
	}
	fb.Fee = xdr.Int64(fee)

	innerType, err := d.get("feeBump.tx.innerTx.type")
	if err != nil {
		return nil, err
	}
	if innerType != "ENVELOPE_TYPE_TX" {
		return nil, UnsupportedVariantError{Key: "feeBump.tx.innerTx.type", Variant: innerType}
	}
	innerTx, err := d.transaction("feeBump.tx.innerTx.tx")
	if err != nil {
		return nil, err
	}
	innerSigs, err := d.signatures("feeBump.tx.innerTx.")
	if err != nil {
		return nil, err
	}
	fb.InnerTx = xdr.FeeBumpTransactionInnerTx{
		Type: xdr.EnvelopeTypeEnvelopeTypeTx,
		V1:   &xdr.TransactionV1Envelope{Tx: innerTx, Signatures: innerSigs},
	}

	extV, err := d.getInt64("feeBump.tx.ext.v")
	if err != nil {
		return nil, err
	}
	if extV != 0 {
		return nil, UnsupportedVariantError{Key: "feeBump.tx.ext.v", Variant: strconv.FormatInt(extV, 10)}
	}

	sigs, err := d.signatures("feeBump.")
	if err != nil {
		return nil, err
	}
	return &xdr.FeeBumpTransactionEnvelope{Tx: fb, Signatures: sigs}, nil
}

func (d *decoder) timeBounds(p string) (xdr.TimeBounds, error) {
	minTime, err := d.getUint64(p + ".minTime")
	if err != nil {
		return xdr.TimeBounds{}, err
	}
	maxTime, err := d.getUint64(p + ".maxTime")
	if err != nil {
		return xdr.TimeBounds{}, err
	}
	return xdr.TimeBounds{
		MinTime: xdr.TimePoint(minTime),
		MaxTime: xdr.TimePoint(maxTime),
	}, nil
}

func (d *decoder) cond(p string) (xdr.Preconditions, error) {
	var c xdr.Preconditions
	typ, err := d.get(p + ".type")
	if err != nil {
		return c, err
	}
	condType, ok := xdr.PreconditionTypeFromString(typ)
	if !ok {
		return c, UnsupportedVariantError{Key: p + ".type", Variant: typ}
	}
	c.Type = condType
	switch condType {
	case xdr.PreconditionTypePrecondNone:
	case xdr.PreconditionTypePrecondTime:
		tb, err := d.timeBounds(p + ".timeBounds")
		if err != nil {
			return c, err
		}
		c.TimeBounds = &tb
	case xdr.PreconditionTypePrecondV2:
		v2, err := d.condV2(p + ".v2")
		if err != nil {
			return c, err
		}
		c.V2 = &v2
	}
	return c, nil
}

func (d *decoder) condV2(p string) (xdr.PreconditionsV2, error) {
	var v2 xdr.PreconditionsV2

	hasTB, err := d.present(p+".timeBounds",
		p+".timeBounds.minTime", p+".timeBounds.maxTime")
	if err != nil {
		return v2, err
	}
	if hasTB {
		tb, err := d.timeBounds(p + ".timeBounds")
		if err != nil {
			return v2, err
		}
		v2.TimeBounds = &tb
	}

	hasLB, err := d.present(p+".ledgerBounds",
		p+".ledgerBounds.minLedger", p+".ledgerBounds.maxLedger")
	if err != nil {
		return v2, err
	}
	if hasLB {
		minLedger, err := d.getUint32(p + ".ledgerBounds.minLedger")
		if err != nil {
			return v2, err
		}
		maxLedger, err := d.getUint32(p + ".ledgerBounds.maxLedger")
		if err != nil {
			return v2, err
		}
		v2.LedgerBounds = &xdr.LedgerBounds{
			MinLedger: xdr.Uint32(minLedger),
			MaxLedger: xdr.Uint32(maxLedger),
		}
	}

	hasMinSeq, err := d.present(p + ".minSeqNum")
	if err != nil {
		return v2, err
	}
	if hasMinSeq {
		minSeq, err := d.getInt64(p + ".minSeqNum")
		if err != nil {
			return v2, err
		}
		seq := xdr.SequenceNumber(minSeq)
		v2.MinSeqNum = &seq
	}

	minSeqAge, err := d.getUint64(p + ".minSeqAge")
	if err != nil {
		return v2, err
	}
	v2.MinSeqAge = xdr.Duration(minSeqAge)
	gap, err := d.getUint32(p + ".minSeqLedgerGap")
	if err != nil {
		return v2, err
	}
	v2.MinSeqLedgerGap = xdr.Uint32(gap)

	n, err := d.getLen(p+".extraSigners.len", maxExtraSigners)
	if err != nil {
		return v2, err
	}
	for i := 0; i < n; i++ {
		signer, err := d.signerKey(fmt.Sprintf("%s.extraSigners[%d]", p, i))
		if err != nil {
			return v2, err
		}
		v2.ExtraSigners = append(v2.ExtraSigners, signer)
	}
	return v2, nil
}

func (d *decoder) memo(p string) (xdr.Memo, error) {
	var m xdr.Memo
	typ, err := d.get(p + ".type")
	if err != nil {
		return m, err
	}
	memoType, ok := xdr.MemoTypeFromString(typ)
	if !ok {
		return m, UnsupportedVariantError{Key: p + ".type", Variant: typ}
	}
	m.Type = memoType
	switch memoType {
	case xdr.MemoTypeMemoNone:
	case xdr.MemoTypeMemoText:
		text, err := d.getQuoted(p+".text", maxMemoTextBytes)
		if err != nil {
			return m, err
		}
		m.Text = &text
	case xdr.MemoTypeMemoId:
		id, err := d.getUint64(p + ".id")
		if err != nil {
			return m, err
		}
		xid := xdr.Uint64(id)
		m.Id = &xid
	case xdr.MemoTypeMemoHash:
		h, err := d.getHash(p + ".hash")
		if err != nil {
			return m, err
		}
		m.Hash = &h
	case xdr.MemoTypeMemoReturn:
		h, err := d.getHash(p + ".retHash")
		if err != nil {
			return m, err
		}
		m.RetHash = &h
	}
	return m, nil
}

func (d *decoder) operations(p string) ([]xdr.Operation, error) {
	n, err := d.getLen(p+".operations.len", maxOperations)
	if err != nil {
		return nil, err
	}
	ops := make([]xdr.Operation, 0, n)
	for i := 0; i < n; i++ {
		opKey := fmt.Sprintf("%s.operations[%d]", p, i)
		var op xdr.Operation

		hasSource, err := d.present(opKey + ".sourceAccount")
		if err != nil {
			return nil, err
		}
		if hasSource {
			source, err := d.muxedAccount(opKey + ".sourceAccount")
			if err != nil {
				return nil, err
			}
			op.SourceAccount = &source
		}
		if op.Body, err = d.operationBody(opKey + ".body"); err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

func (d *decoder) operationBody(p string) (xdr.OperationBody, error) {
	var body xdr.OperationBody
	typ, err := d.get(p + ".type")
	if err != nil {
		return body, err
	}
	opType, ok := xdr.OperationTypeFromString(typ)
	if !ok {
		return body, UnsupportedVariantError{Key: p + ".type", Variant: typ}
	}
	body.Type = opType

	switch opType {
	case xdr.OperationTypeCreateAccount:
		var op xdr.CreateAccountOp
		q := p + ".createAccountOp"
		if op.Destination, err = d.accountId(q + ".destination"); err != nil {
			return body, err
		}
		if op.StartingBalance, err = d.amount(q + ".startingBalance"); err != nil {
			return body, err
		}
		body.CreateAccountOp = &op
	case xdr.OperationTypePayment:
		var op xdr.PaymentOp
		q := p + ".paymentOp"
		if op.Destination, err = d.muxedAccount(q + ".destination"); err != nil {
			return body, err
		}
		if op.Asset, err = d.asset(q + ".asset"); err != nil {
			return body, err
		}
		if op.Amount, err = d.amount(q + ".amount"); err != nil {
			return body, err
		}
		body.PaymentOp = &op
	case xdr.OperationTypePathPaymentStrictReceive:
		var op xdr.PathPaymentStrictReceiveOp
		q := p + ".pathPaymentStrictReceiveOp"
		if op.SendAsset, err = d.asset(q + ".sendAsset"); err != nil {
			return body, err
		}
		if op.SendMax, err = d.amount(q + ".sendMax"); err != nil {
			return body, err
		}
		if op.Destination, err = d.muxedAccount(q + ".destination"); err != nil {
			return body, err
		}
		if op.DestAsset, err = d.asset(q + ".destAsset"); err != nil {
			return body, err
		}
		if op.DestAmount, err = d.amount(q + ".destAmount"); err != nil {
			return body, err
		}
		if op.Path, err = d.path(q); err != nil {
			return body, err
		}
		body.PathPaymentStrictReceiveOp = &op
	case xdr.OperationTypeManageSellOffer:
		var op xdr.ManageSellOfferOp
		q := p + ".manageSellOfferOp"
		if op.Selling, err = d.asset(q + ".selling"); err != nil {
			return body, err
		}
		if op.Buying, err = d.asset(q + ".buying"); err != nil {
			return body, err
		}
		if op.Amount, err = d.amount(q + ".amount"); err != nil {
			return body, err
		}
		if op.Price, err = d.price(q + ".price"); err != nil {
			return body, err
		}
		offerID, err := d.getInt64(q + ".offerID")
		if err != nil {
			return body, err
		}
		op.OfferId = xdr.Int64(offerID)
		body.ManageSellOfferOp = &op
	case xdr.OperationTypeCreatePassiveSellOffer:
		var op xdr.CreatePassiveSellOfferOp
		q := p + ".createPassiveSellOfferOp"
		if op.Selling, err = d.asset(q + ".selling"); err != nil {
			return body, err
		}
		if op.Buying, err = d.asset(q + ".buying"); err != nil {
			return body, err
		}
		if op.Amount, err = d.amount(q + ".amount"); err != nil {
			return body, err
		}
		if op.Price, err = d.price(q + ".price"); err != nil {
			return body, err
		}
		body.CreatePassiveSellOfferOp = &op
	case xdr.OperationTypeSetOptions:
		op, err := d.setOptions(p + ".setOptionsOp")
		if err != nil {
			return body, err
		}
		body.SetOptionsOp = &op
	case xdr.OperationTypeChangeTrust:
		var op xdr.ChangeTrustOp
		q := p + ".changeTrustOp"
		if op.Line, err = d.changeTrustAsset(q + ".line"); err != nil {
			return body, err
		}
		if op.Limit, err = d.amount(q + ".limit"); err != nil {
			return body, err
		}
		body.ChangeTrustOp = &op
	case xdr.OperationTypeAllowTrust:
		var op xdr.AllowTrustOp
		q := p + ".allowTrustOp"
		if op.Trustor, err = d.accountId(q + ".trustor"); err != nil {
			return body, err
		}
		codeStr, err := d.get(q + ".asset")
		if err != nil {
			return body, err
		}
		code, err := xdr.ParseAssetCode(codeStr)
		if err != nil {
			return body, InvalidValueError{Key: q + ".asset", Value: codeStr}
		}
		op.Asset = code
		authorize, err := d.getUint32(q + ".authorize")
		if err != nil {
			return body, err
		}
		op.Authorize = xdr.Uint32(authorize)
		body.AllowTrustOp = &op
	case xdr.OperationTypeAccountMerge:
		dest, err := d.muxedAccount(p + ".destination")
		if err != nil {
			return body, err
		}
		body.Destination = &dest
	case xdr.OperationTypeInflation:
	case xdr.OperationTypeManageData:
		var op xdr.ManageDataOp
		q := p + ".manageDataOp"
		name, err := d.getQuoted(q+".dataName", maxDataBytes)
		if err != nil {
			return body, err
		}
		op.DataName = xdr.String64(name)
		hasValue, err := d.present(q + ".dataValue")
		if err != nil {
			return body, err
		}
		if hasValue {
			raw, err := d.getHex(q + ".dataValue")
			if err != nil {
				return body, err
			}
			if len(raw) > maxDataBytes {
				return body, BoundsExceededError{
					Key: q + ".dataValue", Limit: maxDataBytes, Actual: int64(len(raw)),
				}
			}
			value := xdr.DataValue(raw)
			op.DataValue = &value
		}
		body.ManageDataOp = &op
	case xdr.OperationTypeBumpSequence:
		bumpTo, err := d.getInt64(p + ".bumpSequenceOp.bumpTo")
		if err != nil {
			return body, err
		}
		body.BumpSequenceOp = &xdr.BumpSequenceOp{BumpTo: xdr.SequenceNumber(bumpTo)}
	case xdr.OperationTypeManageBuyOffer:
		var op xdr.ManageBuyOfferOp
		q := p + ".manageBuyOfferOp"
		if op.Selling, err = d.asset(q + ".selling"); err != nil {
			return body, err
		}
		if op.Buying, err = d.asset(q + ".buying"); err != nil {
			return body, err
		}
		if op.BuyAmount, err = d.amount(q + ".buyAmount"); err != nil {
			return body, err
		}
		if op.Price, err = d.price(q + ".price"); err != nil {
			return body, err
		}
		offerID, err := d.getInt64(q + ".offerID")
		if err != nil {
			return body, err
		}
		op.OfferId = xdr.Int64(offerID)
		body.ManageBuyOfferOp = &op
	case xdr.OperationTypePathPaymentStrictSend:
		var op xdr.PathPaymentStrictSendOp
		q := p + ".pathPaymentStrictSendOp"
		if op.SendAsset, err = d.asset(q + ".sendAsset"); err != nil {
			return body, err
		}
		if op.SendAmount, err = d.amount(q + ".sendAmount"); err != nil {
			return body, err
		}
		if op.Destination, err = d.muxedAccount(q + ".destination"); err != nil {
			return body, err
		}
		if op.DestAsset, err = d.asset(q + ".destAsset"); err != nil {
			return body, err
		}
		if op.DestMin, err = d.amount(q + ".destMin"); err != nil {
			return body, err
		}
		if op.Path, err = d.path(q); err != nil {
			return body, err
		}
		body.PathPaymentStrictSendOp = &op
	case xdr.OperationTypeCreateClaimableBalance:
		var op xdr.CreateClaimableBalanceOp
		q := p + ".createClaimableBalanceOp"
		if op.Asset, err = d.asset(q + ".asset"); err != nil {
			return body, err
		}
		if op.Amount, err = d.amount(q + ".amount"); err != nil {
			return body, err
		}
		n, err := d.getLen(q+".claimants.len", maxClaimants)
		if err != nil {
			return body, err
		}
		for i := 0; i < n; i++ {
			claimant, err := d.claimant(fmt.Sprintf("%s.claimants[%d]", q, i))
			if err != nil {
				return body, err
			}
			op.Claimants = append(op.Claimants, claimant)
		}
		body.CreateClaimableBalanceOp = &op
	case xdr.OperationTypeClaimClaimableBalance:
		id, err := d.balanceID(p + ".claimClaimableBalanceOp.balanceID")
		if err != nil {
			return body, err
		}
		body.ClaimClaimableBalanceOp = &xdr.ClaimClaimableBalanceOp{BalanceId: id}
	case xdr.OperationTypeBeginSponsoringFutureReserves:
		sponsored, err := d.accountId(p + ".beginSponsoringFutureReservesOp.sponsoredID")
		if err != nil {
			return body, err
		}
		body.BeginSponsoringFutureReservesOp = &xdr.BeginSponsoringFutureReservesOp{
			SponsoredId: sponsored,
		}
	case xdr.OperationTypeEndSponsoringFutureReserves:
	case xdr.OperationTypeRevokeSponsorship:
		op, err := d.revokeSponsorship(p + ".revokeSponsorshipOp")
		if err != nil {
			return body, err
		}
		body.RevokeSponsorshipOp = &op
	case xdr.OperationTypeClawback:
		var op xdr.ClawbackOp
		q := p + ".clawbackOp"
		if op.Asset, err = d.asset(q + ".asset"); err != nil {
			return body, err
		}
		if op.From, err = d.muxedAccount(q + ".from"); err != nil {
			return body, err
		}
		if op.Amount, err = d.amount(q + ".amount"); err != nil {
			return body, err
		}
		body.ClawbackOp = &op
	case xdr.OperationTypeClawbackClaimableBalance:
		id, err := d.balanceID(p + ".clawbackClaimableBalanceOp.balanceID")
		if err != nil {
			return body, err
		}
		body.ClawbackClaimableBalanceOp = &xdr.ClawbackClaimableBalanceOp{BalanceId: id}
	case xdr.OperationTypeSetTrustLineFlags:
		var op xdr.SetTrustLineFlagsOp
		q := p + ".setTrustLineFlagsOp"
		if op.Trustor, err = d.accountId(q + ".trustor"); err != nil {
			return body, err
		}
		if op.Asset, err = d.asset(q + ".asset"); err != nil {
			return body, err
		}
		clear, err := d.getUint32(q + ".clearFlags")
		if err != nil {
			return body, err
		}
		op.ClearFlags = xdr.Uint32(clear)
		set, err := d.getUint32(q + ".setFlags")
		if err != nil {
			return body, err
		}
		op.SetFlags = xdr.Uint32(set)
		body.SetTrustLineFlagsOp = &op
	case xdr.OperationTypeLiquidityPoolDeposit:
		var op xdr.LiquidityPoolDepositOp
		q := p + ".liquidityPoolDepositOp"
		if op.LiquidityPoolId, err = d.poolID(q + ".liquidityPoolID"); err != nil {
			return body, err
		}
		if op.MaxAmountA, err = d.amount(q + ".maxAmountA"); err != nil {
			return body, err
		}
		if op.MaxAmountB, err = d.amount(q + ".maxAmountB"); err != nil {
			return body, err
		}
		if op.MinPrice, err = d.price(q + ".minPrice"); err != nil {
			return body, err
		}
		if op.MaxPrice, err = d.price(q + ".maxPrice"); err != nil {
			return body, err
		}
		body.LiquidityPoolDepositOp = &op
	case xdr.OperationTypeLiquidityPoolWithdraw:
		var op xdr.LiquidityPoolWithdrawOp
		q := p + ".liquidityPoolWithdrawOp"
		if op.LiquidityPoolId, err = d.poolID(q + ".liquidityPoolID"); err != nil {
			return body, err
		}
		if op.Amount, err = d.amount(q + ".amount"); err != nil {
			return body, err
		}
		if op.MinAmountA, err = d.amount(q + ".minAmountA"); err != nil {
			return body, err
		}
		if op.MinAmountB, err = d.amount(q + ".minAmountB"); err != nil {
			return body, err
		}
		body.LiquidityPoolWithdrawOp = &op
	case xdr.OperationTypeInvokeHostFunction:
		var op xdr.InvokeHostFunctionOp
		q := p + ".invokeHostFunctionOp"
		if err := d.getBase64(q+".hostFunction", &op.HostFunction); err != nil {
			return body, err
		}
		n, err := d.getLen(q+".auth.len", math.MaxInt32)
		if err != nil {
			return body, err
		}
		for i := 0; i < n; i++ {
			var auth xdr.SorobanAuthorizationEntry
			if err := d.getBase64(fmt.Sprintf("%s.auth[%d]", q, i), &auth); err != nil {
				return body, err
			}
			op.Auth = append(op.Auth, auth)
		}
		body.InvokeHostFunctionOp = &op
	case xdr.OperationTypeExtendFootprintTtl:
		extendTo, err := d.getUint32(p + ".extendFootprintTTLOp.extendTo")
		if err != nil {
			return body, err
		}
		body.ExtendFootprintTtlOp = &xdr.ExtendFootprintTtlOp{
			ExtendTo: xdr.Uint32(extendTo),
		}
	case xdr.OperationTypeRestoreFootprint:
		body.RestoreFootprintOp = &xdr.RestoreFootprintOp{}
	}
	return body, nil
}

func (d *decoder) path(p string) ([]xdr.Asset, error) {
	n, err := d.getLen(p+".path.len", maxPathLength)
	if err != nil {
		return nil, err
	}
	var path []xdr.Asset
	for i := 0; i < n; i++ {
		a, err := d.asset(fmt.Sprintf("%s.path[%d]", p, i))
		if err != nil {
			return nil, err
		}
		path = append(path, a)
	}
	return path, nil
}

func (d *decoder) setOptions(p string) (xdr.SetOptionsOp, error) {
	var op xdr.SetOptionsOp

	hasDest, err := d.present(p + ".inflationDest")
	if err != nil {
		return op, err
	}
	if hasDest {
		dest, err := d.accountId(p + ".inflationDest")
		if err != nil {
			return op, err
		}
		op.InflationDest = &dest
	}
	if op.ClearFlags, err = d.optUint32(p + ".clearFlags"); err != nil {
		return op, err
	}
	if op.SetFlags, err = d.optUint32(p + ".setFlags"); err != nil {
		return op, err
	}
	if op.MasterWeight, err = d.optUint32(p + ".masterWeight"); err != nil {
		return op, err
	}
	if op.LowThreshold, err = d.optUint32(p + ".lowThreshold"); err != nil {
		return op, err
	}
	if op.MedThreshold, err = d.optUint32(p + ".medThreshold"); err != nil {
		return op, err
	}
	if op.HighThreshold, err = d.optUint32(p + ".highThreshold"); err != nil {
		return op, err
	}

	hasDomain, err := d.present(p + ".homeDomain")
	if err != nil {
		return op, err
	}
	if hasDomain {
		domain, err := d.getQuoted(p+".homeDomain", maxHomeDomain)
		if err != nil {
			return op, err
		}
		xd := xdr.String32(domain)
		op.HomeDomain = &xd
	}

	hasSigner, err := d.present(p+".signer", p+".signer.key", p+".signer.weight")
	if err != nil {
		return op, err
	}
	if hasSigner {
		var signer xdr.Signer
		if signer.Key, err = d.signerKey(p + ".signer.key"); err != nil {
			return op, err
		}
		weight, err := d.getUint32(p + ".signer.weight")
		if err != nil {
			return op, err
		}
		signer.Weight = xdr.Uint32(weight)
		op.Signer = &signer
	}
	return op, nil
}

func (d *decoder) optUint32(key string) (*xdr.Uint32, error) {
	has, err := d.present(key)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, nil
	}
	v, err := d.getUint32(key)
	if err != nil {
		return nil, err
	}
	xv := xdr.Uint32(v)
	return &xv, nil
}

func (d *decoder) changeTrustAsset(p string) (xdr.ChangeTrustAsset, error) {
	if d.has(p) {
		a, err := d.asset(p)
		if err != nil {
			return xdr.ChangeTrustAsset{}, err
		}
		return a.ToChangeTrustAsset(), nil
	}
	typ, err := d.get(p + ".type")
	if err != nil {
		return xdr.ChangeTrustAsset{}, err
	}
	if typ != "ASSET_TYPE_POOL_SHARE" {
		return xdr.ChangeTrustAsset{}, UnsupportedVariantError{Key: p + ".type", Variant: typ}
	}
	poolType, err := d.get(p + ".liquidityPool.type")
	if err != nil {
		return xdr.ChangeTrustAsset{}, err
	}
	if poolType != "LIQUIDITY_POOL_CONSTANT_PRODUCT" {
		return xdr.ChangeTrustAsset{}, UnsupportedVariantError{
			Key: p + ".liquidityPool.type", Variant: poolType,
		}
	}
	q := p + ".liquidityPool.constantProduct"
	var cp xdr.LiquidityPoolConstantProductParameters
	if cp.AssetA, err = d.asset(q + ".assetA"); err != nil {
		return xdr.ChangeTrustAsset{}, err
	}
	if cp.AssetB, err = d.asset(q + ".assetB"); err != nil {
		return xdr.ChangeTrustAsset{}, err
	}
	fee, err := d.getInt32(q + ".fee")
	if err != nil {
		return xdr.ChangeTrustAsset{}, err
	}
	cp.Fee = xdr.Int32(fee)
	return xdr.ChangeTrustAsset{
		Type: xdr.AssetTypeAssetTypePoolShare,
		LiquidityPool: &xdr.LiquidityPoolParameters{
			Type:            xdr.LiquidityPoolTypeLiquidityPoolConstantProduct,
			ConstantProduct: &cp,
		},
	}, nil
}

func (d *decoder) claimant(p string) (xdr.Claimant, error) {
	var c xdr.Claimant
	typ, err := d.get(p + ".type")
	if err != nil {
		return c, err
	}
	if typ != "CLAIMANT_TYPE_V0" {
		return c, UnsupportedVariantError{Key: p + ".type", Variant: typ}
	}
	var v0 xdr.ClaimantV0
	if v0.Destination, err = d.accountId(p + ".v0.destination"); err != nil {
		return c, err
	}
	if v0.Predicate, err = d.predicate(p+".v0.predicate", 1); err != nil {
		return c, err
	}
	c.Type = xdr.ClaimantTypeClaimantTypeV0
	c.V0 = &v0
	return c, nil
}

func (d *decoder) predicate(p string, depth int) (xdr.ClaimPredicate, error) {
	var pred xdr.ClaimPredicate
	if depth > maxPredicateDepth {
		return pred, BoundsExceededError{
			Key: p + ".type", Limit: maxPredicateDepth, Actual: int64(depth),
		}
	}
	typ, err := d.get(p + ".type")
	if err != nil {
		return pred, err
	}
	predType, ok := xdr.ClaimPredicateTypeFromString(typ)
	if !ok {
		return pred, UnsupportedVariantError{Key: p + ".type", Variant: typ}
	}
	pred.Type = predType

	switch predType {
	case xdr.ClaimPredicateTypeClaimPredicateUnconditional:
	case xdr.ClaimPredicateTypeClaimPredicateAnd:
		children, err := d.predicatePair(p+".andPredicates", depth)
		if err != nil {
			return pred, err
		}
		pred.AndPredicates = &children
	case xdr.ClaimPredicateTypeClaimPredicateOr:
		children, err := d.predicatePair(p+".orPredicates", depth)
		if err != nil {
			return pred, err
		}
		pred.OrPredicates = &children
	case xdr.ClaimPredicateTypeClaimPredicateNot:
		hasInner, err := d.present(p+".notPredicate", p+".notPredicate.type")
		if err != nil {
			return pred, err
		}
		inner := new(*xdr.ClaimPredicate)
		if hasInner {
			child, err := d.predicate(p+".notPredicate", depth+1)
			if err != nil {
				return pred, err
			}
			*inner = &child
		}
		pred.NotPredicate = inner
	case xdr.ClaimPredicateTypeClaimPredicateBeforeAbsoluteTime:
		abs, err := d.getInt64(p + ".absBefore")
		if err != nil {
			return pred, err
		}
		t := xdr.Int64(abs)
		pred.AbsBefore = &t
	case xdr.ClaimPredicateTypeClaimPredicateBeforeRelativeTime:
		rel, err := d.getInt64(p + ".relBefore")
		if err != nil {
			return pred, err
		}
		t := xdr.Int64(rel)
		pred.RelBefore = &t
	}
	return pred, nil
}

// predicatePair reads the two children of an And or Or predicate. The
// protocol fixes the arity at exactly two.
func (d *decoder) predicatePair(p string, depth int) ([]xdr.ClaimPredicate, error) {
	n, err := d.getLen(p+".len", 2)
	if err != nil {
		return nil, err
	}
	if n != 2 {
		return nil, InvalidValueError{Key: p + ".len", Value: strconv.Itoa(n)}
	}
	children := make([]xdr.ClaimPredicate, 0, 2)
	for i := 0; i < 2; i++ {
		child, err := d.predicate(fmt.Sprintf("%s[%d]", p, i), depth+1)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return children, nil
}

func (d *decoder) balanceID(key string) (xdr.ClaimableBalanceId, error) {
	var id xdr.ClaimableBalanceId
	raw, err := d.getHex(key)
	if err != nil {
		return id, err
	}
	if err := xdr.SafeUnmarshal(raw, &id); err != nil {
		v, _ := d.get(key)
		return id, InvalidValueError{Key: key, Value: v}
	}
	return id, nil
}

func (d *decoder) poolID(key string) (xdr.PoolId, error) {
	h, err := d.getHash(key)
	return xdr.PoolId(h), err
}

func (d *decoder) revokeSponsorship(p string) (xdr.RevokeSponsorshipOp, error) {
	var op xdr.RevokeSponsorshipOp
	typ, err := d.get(p + ".type")
	if err != nil {
		return op, err
	}
	switch typ {
	case "REVOKE_SPONSORSHIP_LEDGER_ENTRY":
		op.Type = xdr.RevokeSponsorshipTypeRevokeSponsorshipLedgerEntry
		key, err := d.ledgerKey(p + ".ledgerKey")
		if err != nil {
			return op, err
		}
		op.LedgerKey = &key
	case "REVOKE_SPONSORSHIP_SIGNER":
		op.Type = xdr.RevokeSponsorshipTypeRevokeSponsorshipSigner
		var signer xdr.RevokeSponsorshipOpSigner
		if signer.AccountId, err = d.accountId(p + ".signer.accountID"); err != nil {
			return op, err
		}
		if signer.SignerKey, err = d.signerKey(p + ".signer.signerKey"); err != nil {
			return op, err
		}
		op.Signer = &signer
	default:
		return op, UnsupportedVariantError{Key: p + ".type", Variant: typ}
	}
	return op, nil
}

func (d *decoder) ledgerKey(p string) (xdr.LedgerKey, error) {
	var k xdr.LedgerKey
	typ, err := d.get(p + ".type")
	if err != nil {
		return k, err
	}
	entryType, ok := xdr.LedgerEntryTypeFromString(typ)
	if !ok {
		return k, UnsupportedVariantError{Key: p + ".type", Variant: typ}
	}
	k.Type = entryType

	switch entryType {
	case xdr.LedgerEntryTypeAccount:
		acc, err := d.accountId(p + ".account.accountID")
		if err != nil {
			return k, err
		}
		k.Account = &xdr.LedgerKeyAccount{AccountId: acc}
	case xdr.LedgerEntryTypeTrustline:
		var tl xdr.LedgerKeyTrustLine
		if tl.AccountId, err = d.accountId(p + ".trustLine.accountID"); err != nil {
			return k, err
		}
		if d.has(p + ".trustLine.liquidityPoolID") {
			poolID, err := d.poolID(p + ".trustLine.liquidityPoolID")
			if err != nil {
				return k, err
			}
			tl.Asset = xdr.TrustLineAsset{
				Type:            xdr.AssetTypeAssetTypePoolShare,
				LiquidityPoolId: &poolID,
			}
		} else {
			a, err := d.asset(p + ".trustLine.asset")
			if err != nil {
				return k, err
			}
			tl.Asset = xdr.TrustLineAsset{
				Type:       a.Type,
				AlphaNum4:  a.AlphaNum4,
				AlphaNum12: a.AlphaNum12,
			}
		}
		k.TrustLine = &tl
	case xdr.LedgerEntryTypeOffer:
		var offer xdr.LedgerKeyOffer
		if offer.SellerId, err = d.accountId(p + ".offer.sellerID"); err != nil {
			return k, err
		}
		offerID, err := d.getInt64(p + ".offer.offerID")
		if err != nil {
			return k, err
		}
		offer.OfferId = xdr.Int64(offerID)
		k.Offer = &offer
	case xdr.LedgerEntryTypeData:
		var data xdr.LedgerKeyData
		if data.AccountId, err = d.accountId(p + ".data.accountID"); err != nil {
			return k, err
		}
		name, err := d.getQuoted(p+".data.dataName", maxDataBytes)
		if err != nil {
			return k, err
		}
		data.DataName = xdr.String64(name)
		k.Data = &data
	case xdr.LedgerEntryTypeClaimableBalance:
		id, err := d.balanceID(p + ".claimableBalance.balanceID")
		if err != nil {
			return k, err
		}
		k.ClaimableBalance = &xdr.LedgerKeyClaimableBalance{BalanceId: id}
	case xdr.LedgerEntryTypeLiquidityPool:
		poolID, err := d.poolID(p + ".liquidityPool.liquidityPoolID")
		if err != nil {
			return k, err
		}
		k.LiquidityPool = &xdr.LedgerKeyLiquidityPool{LiquidityPoolId: poolID}
	case xdr.LedgerEntryTypeContractData:
		var cd xdr.LedgerKeyContractData
		if cd.Contract, err = d.scAddress(p + ".contractData.contract"); err != nil {
			return k, err
		}
		if err := d.getBase64(p+".contractData.key", &cd.Key); err != nil {
			return k, err
		}
		durStr, err := d.get(p + ".contractData.durability")
		if err != nil {
			return k, err
		}
		dur, ok := xdr.ContractDataDurabilityFromString(durStr)
		if !ok {
			return k, UnsupportedVariantError{
				Key: p + ".contractData.durability", Variant: durStr,
			}
		}
		cd.Durability = dur
		k.ContractData = &cd
	case xdr.LedgerEntryTypeContractCode:
		hash, err := d.getHash(p + ".contractCode.hash")
		if err != nil {
			return k, err
		}
		k.ContractCode = &xdr.LedgerKeyContractCode{Hash: hash}
	case xdr.LedgerEntryTypeConfigSetting:
		settingID, err := d.getInt32(p + ".configSetting.configSettingID")
		if err != nil {
			return k, err
		}
		setting := xdr.ConfigSettingId(settingID)
		if !setting.ValidEnum(settingID) {
			return k, InvalidValueError{
				Key:   p + ".configSetting.configSettingID",
				Value: strconv.FormatInt(int64(settingID), 10),
			}
		}
		k.ConfigSetting = &xdr.LedgerKeyConfigSetting{ConfigSettingId: setting}
	case xdr.LedgerEntryTypeTtl:
		hash, err := d.getHash(p + ".ttl.keyHash")
		if err != nil {
			return k, err
		}
		k.Ttl = &xdr.LedgerKeyTtl{KeyHash: hash}
	}
	return k, nil
}

func (d *decoder) sorobanData(p string) (xdr.SorobanTransactionData, error) {
	var data xdr.SorobanTransactionData

	extV, err := d.getInt64(p + ".ext.v")
	if err != nil {
		return data, err
	}
	if extV != 0 {
		return data, UnsupportedVariantError{
			Key: p + ".ext.v", Variant: strconv.FormatInt(extV, 10),
		}
	}
	if data.Resources.Footprint.ReadOnly, err = d.footprintSide(p + ".resources.footprint.readOnly"); err != nil {
		return data, err
	}
	if data.Resources.Footprint.ReadWrite, err = d.footprintSide(p + ".resources.footprint.readWrite"); err != nil {
		return data, err
	}
	instructions, err := d.getUint32(p + ".resources.instructions")
	if err != nil {
		return data, err
	}
	data.Resources.Instructions = xdr.Uint32(instructions)
	readBytes, err := d.getUint32(p + ".resources.readBytes")
	if err != nil {
		return data, err
	}
	data.Resources.ReadBytes = xdr.Uint32(readBytes)
	writeBytes, err := d.getUint32(p + ".resources.writeBytes")
	if err != nil {
		return data, err
	}
	data.Resources.WriteBytes = xdr.Uint32(writeBytes)
	resourceFee, err := d.getInt64(p + ".resourceFee")
	if err != nil {
		return data, err
	}
	data.ResourceFee = xdr.Int64(resourceFee)
	return data, nil
}

func (d *decoder) footprintSide(p string) ([]xdr.LedgerKey, error) {
	n, err := d.getLen(p+".len", math.MaxInt32)
	if err != nil {
		return nil, err
	}
	var keys []xdr.LedgerKey
	for i := 0; i < n; i++ {
		k, err := d.ledgerKey(fmt.Sprintf("%s[%d]", p, i))
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

func (d *decoder) signatures(p string) ([]xdr.DecoratedSignature, error) {
	n, err := d.getLen(p+"signatures.len", maxSignatures)
	if err != nil {
		return nil, err
	}
	sigs := make([]xdr.DecoratedSignature, 0, n)
	for i := 0; i < n; i++ {
		hintKey := fmt.Sprintf("%ssignatures[%d].hint", p, i)
		sigKey := fmt.Sprintf("%ssignatures[%d].signature", p, i)

		hint, err := d.getHex(hintKey)
		if err != nil {
			return nil, err
		}
		var sig xdr.DecoratedSignature
		if len(hint) != len(sig.Hint) {
			return nil, InvalidValueError{Key: hintKey, Value: hex.EncodeToString(hint)}
		}
		copy(sig.Hint[:], hint)

		raw, err := d.getHex(sigKey)
		if err != nil {
			return nil, err
		}
		if len(raw) > maxSignatureBytes {
			return nil, BoundsExceededError{
				Key: sigKey, Limit: maxSignatureBytes, Actual: int64(len(raw)),
			}
		}
		sig.Signature = xdr.Signature(raw)
		sigs = append(sigs, sig)
	}
	return sigs, nil
}
