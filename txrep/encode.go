// Package txrep implements the canonical line-oriented text representation
// of transaction envelopes (SEP-0011): a bidirectional, bit-exact
// transformation between base64 XDR envelopes and deterministic
// "key: value" text suitable for review, diffing and signing workflows.
package txrep

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/stellar/txrep/amount"
	"github.com/stellar/txrep/xdr"
)

// ToTxrep decodes a base64 transaction envelope and renders it as canonical
// txrep text.
func ToTxrep(envelopeBase64 string) (string, error) {
	var env xdr.TransactionEnvelope
	if err := xdr.UnmarshalBase64(envelopeBase64, &env); err != nil {
		return "", err
	}
	return ToTxrepEnvelope(env), nil
}

// ToTxrepEnvelope renders a decoded envelope as canonical txrep text. It is
// total for any envelope the binary codec can produce; it panics only on a
// structurally broken graph (a union whose arm does not match its
// discriminant), which is a contract violation of the caller.
func ToTxrepEnvelope(env xdr.TransactionEnvelope) string {
	e := &encoder{}
	switch env.Type {
	case xdr.EnvelopeTypeEnvelopeTypeTxV0:
		e.add("type", "ENVELOPE_TYPE_TX_V0")
		e.transactionV0(env.V0.Tx)
		e.signatures("", env.V0.Signatures)
	case xdr.EnvelopeTypeEnvelopeTypeTx:
		e.add("type", "ENVELOPE_TYPE_TX")
		e.transaction("tx", env.V1.Tx)
		e.signatures("", env.V1.Signatures)
	case xdr.EnvelopeTypeEnvelopeTypeTxFeeBump:
		fb := env.FeeBump.Tx
		e.add("type", "ENVELOPE_TYPE_TX_FEE_BUMP")
		e.add("feeBump.tx.feeSource", fb.FeeSource.MustAddress())
		e.int64("feeBump.tx.fee", int64(fb.Fee))
		e.add("feeBump.tx.innerTx.type", "ENVELOPE_TYPE_TX")
		e.transaction("feeBump.tx.innerTx.tx", fb.InnerTx.V1.Tx)
		e.signatures("feeBump.tx.innerTx.", fb.InnerTx.V1.Signatures)
		e.int64("feeBump.tx.ext.v", 0)
		e.signatures("feeBump.", env.FeeBump.Signatures)
	default:
		panic(fmt.Sprintf("unknown envelope type %d", env.Type))
	}
	return strings.Join(e.lines, "\n") + "\n"
}

type encoder struct {
	lines []string
}

func (e *encoder) add(key, value string) {
	e.lines = append(e.lines, key+": "+value)
}

func (e *encoder) int64(key string, v int64) {
	e.add(key, strconv.FormatInt(v, 10))
}

func (e *encoder) uint64(key string, v uint64) {
	e.add(key, strconv.FormatUint(v, 10))
}

// amount emits a stroop value with its informational decimal restatement,
// e.g. "400004000 (40.0004e7)". The decoder strips the comment.
func (e *encoder) amount(key string, v xdr.Int64) {
	e.lines = append(e.lines,
		fmt.Sprintf("%s: %d (%se7)", key, int64(v), amount.String(v)))
}

func (e *encoder) hexBytes(key string, b []byte) {
	e.add(key, hex.EncodeToString(b))
}

func (e *encoder) quoted(key, s string) {
	e.add(key, strconv.Quote(s))
}

func (e *encoder) present(key string, present bool) {
	e.add(key+"._present", strconv.FormatBool(present))
}

func (e *encoder) base64XDR(key string, v interface{}) {
	b64, err := xdr.MarshalBase64(v)
	if err != nil {
		panic(err)
	}
	e.add(key, b64)
}

func (e *encoder) transaction(p string, tx xdr.Transaction) {
	e.add(p+".sourceAccount", tx.SourceAccount.MustAddress())
	e.uint64(p+".fee", uint64(tx.Fee))
	e.int64(p+".seqNum", int64(tx.SeqNum))
	e.cond(p+".cond", tx.Cond)
	e.memo(p+".memo", tx.Memo)
	e.operations(p, tx.Operations)
	e.int64(p+".ext.v", int64(tx.Ext.V))
	if tx.Ext.V == 1 {
		e.sorobanData(p+".sorobanData", *tx.Ext.SorobanData)
	}
}

func (e *encoder) transactionV0(tx xdr.TransactionV0) {
	source := xdr.MuxedAccount{
		Type:    xdr.CryptoKeyTypeKeyTypeEd25519,
		Ed25519: &tx.SourceAccountEd25519,
	}
	e.add("tx.sourceAccount", source.MustAddress())
	e.uint64("tx.fee", uint64(tx.Fee))
	e.int64("tx.seqNum", int64(tx.SeqNum))
	e.present("tx.timeBounds", tx.TimeBounds != nil)
	if tx.TimeBounds != nil {
		e.uint64("tx.timeBounds.minTime", uint64(tx.TimeBounds.MinTime))
		e.uint64("tx.timeBounds.maxTime", uint64(tx.TimeBounds.MaxTime))
	}
	e.memo("tx.memo", tx.Memo)
	e.operations("tx", tx.Operations)
	e.int64("tx.ext.v", 0)
}

func (e *encoder) cond(p string, c xdr.Preconditions) {
	switch c.Type {
	case xdr.PreconditionTypePrecondNone:
		e.add(p+".type", "PRECOND_NONE")
	case xdr.PreconditionTypePrecondTime:
		e.add(p+".type", "PRECOND_TIME")
		e.uint64(p+".timeBounds.minTime", uint64(c.TimeBounds.MinTime))
		e.uint64(p+".timeBounds.maxTime", uint64(c.TimeBounds.MaxTime))
	case xdr.PreconditionTypePrecondV2:
		e.add(p+".type", "PRECOND_V2")
		v2 := c.V2
		e.present(p+".v2.timeBounds", v2.TimeBounds != nil)
		if v2.TimeBounds != nil {
			e.uint64(p+".v2.timeBounds.minTime", uint64(v2.TimeBounds.MinTime))
			e.uint64(p+".v2.timeBounds.maxTime", uint64(v2.TimeBounds.MaxTime))
		}
		e.present(p+".v2.ledgerBounds", v2.LedgerBounds != nil)
		if v2.LedgerBounds != nil {
			e.uint64(p+".v2.ledgerBounds.minLedger", uint64(v2.LedgerBounds.MinLedger))
			e.uint64(p+".v2.ledgerBounds.maxLedger", uint64(v2.LedgerBounds.MaxLedger))
		}
		e.present(p+".v2.minSeqNum", v2.MinSeqNum != nil)
		if v2.MinSeqNum != nil {
			e.int64(p+".v2.minSeqNum", int64(*v2.MinSeqNum))
		}
		e.uint64(p+".v2.minSeqAge", uint64(v2.MinSeqAge))
		e.uint64(p+".v2.minSeqLedgerGap", uint64(v2.MinSeqLedgerGap))
		e.int64(p+".v2.extraSigners.len", int64(len(v2.ExtraSigners)))
		for i, signer := range v2.ExtraSigners {
			e.add(fmt.Sprintf("%s.v2.extraSigners[%d]", p, i), signer.MustAddress())
		}
	}
}

func (e *encoder) memo(p string, m xdr.Memo) {
	switch m.Type {
	case xdr.MemoTypeMemoNone:
		e.add(p+".type", "MEMO_NONE")
	case xdr.MemoTypeMemoText:
		e.add(p+".type", "MEMO_TEXT")
		e.quoted(p+".text", *m.Text)
	case xdr.MemoTypeMemoId:
		e.add(p+".type", "MEMO_ID")
		e.uint64(p+".id", uint64(*m.Id))
	case xdr.MemoTypeMemoHash:
		e.add(p+".type", "MEMO_HASH")
		e.hexBytes(p+".hash", m.Hash[:])
	case xdr.MemoTypeMemoReturn:
		e.add(p+".type", "MEMO_RETURN")
		e.hexBytes(p+".retHash", m.RetHash[:])
	}
}

func (e *encoder) operations(p string, ops []xdr.Operation) {
	e.int64(p+".operations.len", int64(len(ops)))
	for i, op := range ops {
		opKey := fmt.Sprintf("%s.operations[%d]", p, i)
		e.present(opKey+".sourceAccount", op.SourceAccount != nil)
		if op.SourceAccount != nil {
			e.add(opKey+".sourceAccount", op.SourceAccount.MustAddress())
		}
		e.operationBody(opKey+".body", op.Body)
	}
}

func (e *encoder) operationBody(p string, body xdr.OperationBody) {
	e.add(p+".type", body.Type.String())
	switch body.Type {
	case xdr.OperationTypeCreateAccount:
		op := body.CreateAccountOp
		e.add(p+".createAccountOp.destination", op.Destination.MustAddress())
		e.amount(p+".createAccountOp.startingBalance", op.StartingBalance)
	case xdr.OperationTypePayment:
		op := body.PaymentOp
		e.add(p+".paymentOp.destination", op.Destination.MustAddress())
		e.add(p+".paymentOp.asset", op.Asset.MustStringCanonical())
		e.amount(p+".paymentOp.amount", op.Amount)
	case xdr.OperationTypePathPaymentStrictReceive:
		op := body.PathPaymentStrictReceiveOp
		q := p + ".pathPaymentStrictReceiveOp"
		e.add(q+".sendAsset", op.SendAsset.MustStringCanonical())
		e.amount(q+".sendMax", op.SendMax)
		e.add(q+".destination", op.Destination.MustAddress())
		e.add(q+".destAsset", op.DestAsset.MustStringCanonical())
		e.amount(q+".destAmount", op.DestAmount)
		e.path(q, op.Path)
	case xdr.OperationTypeManageSellOffer:
		op := body.ManageSellOfferOp
		q := p + ".manageSellOfferOp"
		e.add(q+".selling", op.Selling.MustStringCanonical())
		e.add(q+".buying", op.Buying.MustStringCanonical())
		e.amount(q+".amount", op.Amount)
		e.int64(q+".price.n", int64(op.Price.N))
		e.int64(q+".price.d", int64(op.Price.D))
		e.int64(q+".offerID", int64(op.OfferId))
	case xdr.OperationTypeCreatePassiveSellOffer:
		op := body.CreatePassiveSellOfferOp
		q := p + ".createPassiveSellOfferOp"
		e.add(q+".selling", op.Selling.MustStringCanonical())
		e.add(q+".buying", op.Buying.MustStringCanonical())
		e.amount(q+".amount", op.Amount)
		e.int64(q+".price.n", int64(op.Price.N))
		e.int64(q+".price.d", int64(op.Price.D))
	case xdr.OperationTypeSetOptions:
		e.setOptions(p+".setOptionsOp", *body.SetOptionsOp)
	case xdr.OperationTypeChangeTrust:
		op := body.ChangeTrustOp
		e.changeTrustAsset(p+".changeTrustOp.line", op.Line)
		e.amount(p+".changeTrustOp.limit", op.Limit)
	case xdr.OperationTypeAllowTrust:
		op := body.AllowTrustOp
		q := p + ".allowTrustOp"
		e.add(q+".trustor", op.Trustor.MustAddress())
		code, err := op.Asset.CodeString()
		if err != nil {
			panic(err)
		}
		e.add(q+".asset", code)
		e.uint64(q+".authorize", uint64(op.Authorize))
	case xdr.OperationTypeAccountMerge:
		e.add(p+".destination", body.Destination.MustAddress())
	case xdr.OperationTypeInflation:
	case xdr.OperationTypeManageData:
		op := body.ManageDataOp
		e.quoted(p+".manageDataOp.dataName", string(op.DataName))
		e.present(p+".manageDataOp.dataValue", op.DataValue != nil)
		if op.DataValue != nil {
			e.hexBytes(p+".manageDataOp.dataValue", *op.DataValue)
		}
	case xdr.OperationTypeBumpSequence:
		e.int64(p+".bumpSequenceOp.bumpTo", int64(body.BumpSequenceOp.BumpTo))
	case xdr.OperationTypeManageBuyOffer:
		op := body.ManageBuyOfferOp
		q := p + ".manageBuyOfferOp"
		e.add(q+".selling", op.Selling.MustStringCanonical())
		e.add(q+".buying", op.Buying.MustStringCanonical())
		e.amount(q+".buyAmount", op.BuyAmount)
		e.int64(q+".price.n", int64(op.Price.N))
		e.int64(q+".price.d", int64(op.Price.D))
		e.int64(q+".offerID", int64(op.OfferId))
	case xdr.OperationTypePathPaymentStrictSend:
		op := body.PathPaymentStrictSendOp
		q := p + ".pathPaymentStrictSendOp"
		e.add(q+".sendAsset", op.SendAsset.MustStringCanonical())
		e.amount(q+".sendAmount", op.SendAmount)
		e.add(q+".destination", op.Destination.MustAddress())
		e.add(q+".destAsset", op.DestAsset.MustStringCanonical())
		e.amount(q+".destMin", op.DestMin)
		e.path(q, op.Path)
	case xdr.OperationTypeCreateClaimableBalance:
		op := body.CreateClaimableBalanceOp
		q := p + ".createClaimableBalanceOp"
		e.add(q+".asset", op.Asset.MustStringCanonical())
		e.amount(q+".amount", op.Amount)
		e.int64(q+".claimants.len", int64(len(op.Claimants)))
		for i, c := range op.Claimants {
			ck := fmt.Sprintf("%s.claimants[%d]", q, i)
			e.add(ck+".type", "CLAIMANT_TYPE_V0")
			e.add(ck+".v0.destination", c.V0.Destination.MustAddress())
			e.predicate(ck+".v0.predicate", c.V0.Predicate)
		}
	case xdr.OperationTypeClaimClaimableBalance:
		e.balanceID(p+".claimClaimableBalanceOp.balanceID", body.ClaimClaimableBalanceOp.BalanceId)
	case xdr.OperationTypeBeginSponsoringFutureReserves:
		e.add(p+".beginSponsoringFutureReservesOp.sponsoredID",
			body.BeginSponsoringFutureReservesOp.SponsoredId.MustAddress())
	case xdr.OperationTypeEndSponsoringFutureReserves:
	case xdr.OperationTypeRevokeSponsorship:
		op := body.RevokeSponsorshipOp
		q := p + ".revokeSponsorshipOp"
		switch op.Type {
		case xdr.RevokeSponsorshipTypeRevokeSponsorshipLedgerEntry:
			e.add(q+".type", "REVOKE_SPONSORSHIP_LEDGER_ENTRY")
			e.ledgerKey(q+".ledgerKey", *op.LedgerKey)
		case xdr.RevokeSponsorshipTypeRevokeSponsorshipSigner:
			e.add(q+".type", "REVOKE_SPONSORSHIP_SIGNER")
			e.add(q+".signer.accountID", op.Signer.AccountId.MustAddress())
			e.add(q+".signer.signerKey", op.Signer.SignerKey.MustAddress())
		}
	case xdr.OperationTypeClawback:
		op := body.ClawbackOp
		q := p + ".clawbackOp"
		e.add(q+".asset", op.Asset.MustStringCanonical())
		e.add(q+".from", op.From.MustAddress())
		e.amount(q+".amount", op.Amount)
	case xdr.OperationTypeClawbackClaimableBalance:
		e.balanceID(p+".clawbackClaimableBalanceOp.balanceID", body.ClawbackClaimableBalanceOp.BalanceId)
	case xdr.OperationTypeSetTrustLineFlags:
		op := body.SetTrustLineFlagsOp
		q := p + ".setTrustLineFlagsOp"
		e.add(q+".trustor", op.Trustor.MustAddress())
		e.add(q+".asset", op.Asset.MustStringCanonical())
		e.uint64(q+".clearFlags", uint64(op.ClearFlags))
		e.uint64(q+".setFlags", uint64(op.SetFlags))
	case xdr.OperationTypeLiquidityPoolDeposit:
		op := body.LiquidityPoolDepositOp
		q := p + ".liquidityPoolDepositOp"
		e.hexBytes(q+".liquidityPoolID", op.LiquidityPoolId[:])
		e.amount(q+".maxAmountA", op.MaxAmountA)
		e.amount(q+".maxAmountB", op.MaxAmountB)
		e.int64(q+".minPrice.n", int64(op.MinPrice.N))
		e.int64(q+".minPrice.d", int64(op.MinPrice.D))
		e.int64(q+".maxPrice.n", int64(op.MaxPrice.N))
		e.int64(q+".maxPrice.d", int64(op.MaxPrice.D))
	case xdr.OperationTypeLiquidityPoolWithdraw:
		op := body.LiquidityPoolWithdrawOp
		q := p + ".liquidityPoolWithdrawOp"
		e.hexBytes(q+".liquidityPoolID", op.LiquidityPoolId[:])
		e.amount(q+".amount", op.Amount)
		e.amount(q+".minAmountA", op.MinAmountA)
		e.amount(q+".minAmountB", op.MinAmountB)
	case xdr.OperationTypeInvokeHostFunction:
		op := body.InvokeHostFunctionOp
		q := p + ".invokeHostFunctionOp"
		e.base64XDR(q+".hostFunction", op.HostFunction)
		e.int64(q+".auth.len", int64(len(op.Auth)))
		for i, a := range op.Auth {
			e.base64XDR(fmt.Sprintf("%s.auth[%d]", q, i), a)
		}
	case xdr.OperationTypeExtendFootprintTtl:
		e.uint64(p+".extendFootprintTTLOp.extendTo", uint64(body.ExtendFootprintTtlOp.ExtendTo))
	case xdr.OperationTypeRestoreFootprint:
	}
}

func (e *encoder) path(p string, path []xdr.Asset) {
	e.int64(p+".path.len", int64(len(path)))
	for i, a := range path {
		e.add(fmt.Sprintf("%s.path[%d]", p, i), a.MustStringCanonical())
	}
}

func (e *encoder) setOptions(p string, op xdr.SetOptionsOp) {
	e.present(p+".inflationDest", op.InflationDest != nil)
	if op.InflationDest != nil {
		e.add(p+".inflationDest", op.InflationDest.MustAddress())
	}
	e.optUint32(p+".clearFlags", op.ClearFlags)
	e.optUint32(p+".setFlags", op.SetFlags)
	e.optUint32(p+".masterWeight", op.MasterWeight)
	e.optUint32(p+".lowThreshold", op.LowThreshold)
	e.optUint32(p+".medThreshold", op.MedThreshold)
	e.optUint32(p+".highThreshold", op.HighThreshold)
	e.present(p+".homeDomain", op.HomeDomain != nil)
	if op.HomeDomain != nil {
		e.quoted(p+".homeDomain", string(*op.HomeDomain))
	}
	e.present(p+".signer", op.Signer != nil)
	if op.Signer != nil {
		e.add(p+".signer.key", op.Signer.Key.MustAddress())
		e.uint64(p+".signer.weight", uint64(op.Signer.Weight))
	}
}

func (e *encoder) optUint32(key string, v *xdr.Uint32) {
	e.present(key, v != nil)
	if v != nil {
		e.uint64(key, uint64(*v))
	}
}

func (e *encoder) changeTrustAsset(p string, a xdr.ChangeTrustAsset) {
	if a.Type == xdr.AssetTypeAssetTypePoolShare {
		cp := a.LiquidityPool.ConstantProduct
		e.add(p+".type", "ASSET_TYPE_POOL_SHARE")
		e.add(p+".liquidityPool.type", "LIQUIDITY_POOL_CONSTANT_PRODUCT")
		e.add(p+".liquidityPool.constantProduct.assetA", cp.AssetA.MustStringCanonical())
		e.add(p+".liquidityPool.constantProduct.assetB", cp.AssetB.MustStringCanonical())
		e.int64(p+".liquidityPool.constantProduct.fee", int64(cp.Fee))
		return
	}
	plain, err := a.ToAsset()
	if err != nil {
		panic(err)
	}
	e.add(p, plain.MustStringCanonical())
}

func (e *encoder) predicate(p string, pred xdr.ClaimPredicate) {
	e.add(p+".type", pred.Type.String())
	switch pred.Type {
	case xdr.ClaimPredicateTypeClaimPredicateUnconditional:
	case xdr.ClaimPredicateTypeClaimPredicateAnd:
		e.int64(p+".andPredicates.len", int64(len(*pred.AndPredicates)))
		for i, child := range *pred.AndPredicates {
			e.predicate(fmt.Sprintf("%s.andPredicates[%d]", p, i), child)
		}
	case xdr.ClaimPredicateTypeClaimPredicateOr:
		e.int64(p+".orPredicates.len", int64(len(*pred.OrPredicates)))
		for i, child := range *pred.OrPredicates {
			e.predicate(fmt.Sprintf("%s.orPredicates[%d]", p, i), child)
		}
	case xdr.ClaimPredicateTypeClaimPredicateNot:
		inner := *pred.NotPredicate
		e.present(p+".notPredicate", inner != nil)
		if inner != nil {
			e.predicate(p+".notPredicate", *inner)
		}
	case xdr.ClaimPredicateTypeClaimPredicateBeforeAbsoluteTime:
		e.int64(p+".absBefore", int64(*pred.AbsBefore))
	case xdr.ClaimPredicateTypeClaimPredicateBeforeRelativeTime:
		e.int64(p+".relBefore", int64(*pred.RelBefore))
	}
}

// balanceID renders a claimable balance id as the hex of its full XDR form
// (discriminant plus hash).
func (e *encoder) balanceID(key string, id xdr.ClaimableBalanceId) {
	raw, err := xdr.SafeMarshal(id)
	if err != nil {
		panic(err)
	}
	e.hexBytes(key, raw)
}

func (e *encoder) ledgerKey(p string, k xdr.LedgerKey) {
	e.add(p+".type", k.Type.String())
	switch k.Type {
	case xdr.LedgerEntryTypeAccount:
		e.add(p+".account.accountID", k.Account.AccountId.MustAddress())
	case xdr.LedgerEntryTypeTrustline:
		e.add(p+".trustLine.accountID", k.TrustLine.AccountId.MustAddress())
		if k.TrustLine.Asset.Type == xdr.AssetTypeAssetTypePoolShare {
			e.hexBytes(p+".trustLine.liquidityPoolID", (*k.TrustLine.Asset.LiquidityPoolId)[:])
		} else {
			plain, err := k.TrustLine.Asset.ToAsset()
			if err != nil {
				panic(err)
			}
			e.add(p+".trustLine.asset", plain.MustStringCanonical())
		}
	case xdr.LedgerEntryTypeOffer:
		e.add(p+".offer.sellerID", k.Offer.SellerId.MustAddress())
		e.int64(p+".offer.offerID", int64(k.Offer.OfferId))
	case xdr.LedgerEntryTypeData:
		e.add(p+".data.accountID", k.Data.AccountId.MustAddress())
		e.quoted(p+".data.dataName", string(k.Data.DataName))
	case xdr.LedgerEntryTypeClaimableBalance:
		e.balanceID(p+".claimableBalance.balanceID", k.ClaimableBalance.BalanceId)
	case xdr.LedgerEntryTypeLiquidityPool:
		e.hexBytes(p+".liquidityPool.liquidityPoolID", k.LiquidityPool.LiquidityPoolId[:])
	case xdr.LedgerEntryTypeContractData:
		addr, err := k.ContractData.Contract.Address()
		if err != nil {
			panic(err)
		}
		e.add(p+".contractData.contract", addr)
		e.base64XDR(p+".contractData.key", k.ContractData.Key)
		e.add(p+".contractData.durability", k.ContractData.Durability.String())
	case xdr.LedgerEntryTypeContractCode:
		e.hexBytes(p+".contractCode.hash", k.ContractCode.Hash[:])
	case xdr.LedgerEntryTypeConfigSetting:
		e.int64(p+".configSetting.configSettingID", int64(k.ConfigSetting.ConfigSettingId))
	case xdr.LedgerEntryTypeTtl:
		e.hexBytes(p+".ttl.keyHash", k.Ttl.KeyHash[:])
	}
}

func (e *encoder) sorobanData(p string, d xdr.SorobanTransactionData) {
	e.int64(p+".ext.v", 0)
	e.footprintSide(p+".resources.footprint.readOnly", d.Resources.Footprint.ReadOnly)
	e.footprintSide(p+".resources.footprint.readWrite", d.Resources.Footprint.ReadWrite)
	e.uint64(p+".resources.instructions", uint64(d.Resources.Instructions))
	e.uint64(p+".resources.readBytes", uint64(d.Resources.ReadBytes))
	e.uint64(p+".resources.writeBytes", uint64(d.Resources.WriteBytes))
	e.int64(p+".resourceFee", int64(d.ResourceFee))
}

func (e *encoder) footprintSide(p string, keys []xdr.LedgerKey) {
	e.int64(p+".len", int64(len(keys)))
	for i, k := range keys {
		e.ledgerKey(fmt.Sprintf("%s[%d]", p, i), k)
	}
}

func (e *encoder) signatures(p string, sigs []xdr.DecoratedSignature) {
	e.int64(p+"signatures.len", int64(len(sigs)))
	for i, sig := range sigs {
		e.hexBytes(fmt.Sprintf("%ssignatures[%d].hint", p, i), sig.Hint[:])
		e.hexBytes(fmt.Sprintf("%ssignatures[%d].signature", p, i), sig.Signature)
	}
}
