package txrep

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stellar/txrep/strkey"
	"github.com/stellar/txrep/xdr"
)

func testAccountID(t *testing.T, fill byte) xdr.AccountId {
	t.Helper()
	raw := bytes.Repeat([]byte{fill}, 32)
	var a xdr.AccountId
	require.NoError(t, a.SetAddress(strkey.MustEncode(strkey.VersionByteAccountID, raw)))
	return a
}

func testMuxed(t *testing.T, fill byte) xdr.MuxedAccount {
	t.Helper()
	raw := bytes.Repeat([]byte{fill}, 32)
	var m xdr.MuxedAccount
	require.NoError(t, m.SetAddress(strkey.MustEncode(strkey.VersionByteAccountID, raw)))
	return m
}

func testAsset(t *testing.T, code string, fill byte) xdr.Asset {
	t.Helper()
	issuer := testAccountID(t, fill)
	a, err := xdr.NewCreditAsset(code, issuer.MustAddress())
	require.NoError(t, err)
	return a
}

func testSignature(fill byte) xdr.DecoratedSignature {
	return xdr.DecoratedSignature{
		Hint:      xdr.SignatureHint{fill, fill, fill, fill},
		Signature: xdr.Signature(bytes.Repeat([]byte{fill}, 8)),
	}
}

func paymentEnvelope(t *testing.T) xdr.TransactionEnvelope {
	t.Helper()
	source := testMuxed(t, 0x24)
	dest := testMuxed(t, 0x42)
	return xdr.TransactionEnvelope{
		Type: xdr.EnvelopeTypeEnvelopeTypeTx,
		V1: &xdr.TransactionV1Envelope{
			Tx: xdr.Transaction{
				SourceAccount: source,
				Fee:           100,
				SeqNum:        46489056724385793,
				Cond:          xdr.Preconditions{Type: xdr.PreconditionTypePrecondNone},
				Memo:          xdr.Memo{Type: xdr.MemoTypeMemoNone},
				Operations: []xdr.Operation{{
					Body: xdr.OperationBody{
						Type: xdr.OperationTypePayment,
						PaymentOp: &xdr.PaymentOp{
							Destination: dest,
							Asset:       xdr.NewNativeAsset(),
							Amount:      400004000,
						},
					},
				}},
			},
			Signatures: []xdr.DecoratedSignature{{
				Hint:      xdr.SignatureHint{0xde, 0xad, 0xbe, 0xef},
				Signature: xdr.Signature{0x01, 0x02, 0x03},
			}},
		},
	}
}

func roundTrip(t *testing.T, env xdr.TransactionEnvelope) {
	t.Helper()
	b64, err := xdr.MarshalBase64(env)
	require.NoError(t, err)

	text, err := ToTxrep(b64)
	require.NoError(t, err)

	back, err := FromTxrep(text)
	require.NoError(t, err)
	assert.Equal(t, b64, back)
}

func TestPaymentTextLayout(t *testing.T) {
	env := paymentEnvelope(t)
	text := ToTxrepEnvelope(env)

	source := env.V1.Tx.SourceAccount.MustAddress()
	dest := env.V1.Tx.Operations[0].Body.PaymentOp.Destination.MustAddress()
	expected := strings.Join([]string{
		"type: ENVELOPE_TYPE_TX",
		"tx.sourceAccount: " + source,
		"tx.fee: 100",
		"tx.seqNum: 46489056724385793",
		"tx.cond.type: PRECOND_NONE",
		"tx.memo.type: MEMO_NONE",
		"tx.operations.len: 1",
		"tx.operations[0].sourceAccount._present: false",
		"tx.operations[0].body.type: PAYMENT",
		"tx.operations[0].body.paymentOp.destination: " + dest,
		"tx.operations[0].body.paymentOp.asset: native",
		"tx.operations[0].body.paymentOp.amount: 400004000 (40.0004e7)",
		"tx.ext.v: 0",
		"signatures.len: 1",
		"signatures[0].hint: deadbeef",
		"signatures[0].signature: 010203",
	}, "\n") + "\n"
	assert.Equal(t, expected, text)
}

func TestPaymentRoundTrip(t *testing.T) {
	roundTrip(t, paymentEnvelope(t))
}

func TestMuxedDestinationRoundTrip(t *testing.T) {
	env := paymentEnvelope(t)
	ed := testMuxed(t, 0x42)
	env.V1.Tx.Operations[0].Body.PaymentOp.Destination = xdr.MuxedAccount{
		Type: xdr.CryptoKeyTypeKeyTypeMuxedEd25519,
		Med25519: &xdr.MuxedAccountMed25519{
			Id:      1234567890,
			Ed25519: *ed.Ed25519,
		},
	}
	roundTrip(t, env)

	text := ToTxrepEnvelope(env)
	assert.Contains(t, text, "paymentOp.destination: M")
}

func TestV0RoundTrip(t *testing.T) {
	source := testMuxed(t, 0x24)
	env := xdr.TransactionEnvelope{
		Type: xdr.EnvelopeTypeEnvelopeTypeTxV0,
		V0: &xdr.TransactionV0Envelope{
			Tx: xdr.TransactionV0{
				SourceAccountEd25519: *source.Ed25519,
				Fee:                  200,
				SeqNum:               77,
				TimeBounds:           &xdr.TimeBounds{MinTime: 100, MaxTime: 200},
				Memo:                 xdr.Memo{Type: xdr.MemoTypeMemoNone},
				Operations: []xdr.Operation{{
					Body: xdr.OperationBody{Type: xdr.OperationTypeInflation},
				}},
			},
			Signatures: []xdr.DecoratedSignature{testSignature(0x11)},
		},
	}
	roundTrip(t, env)

	text := ToTxrepEnvelope(env)
	assert.Contains(t, text, "type: ENVELOPE_TYPE_TX_V0\n")
	assert.Contains(t, text, "tx.timeBounds._present: true\n")
	assert.Contains(t, text, "tx.timeBounds.minTime: 100\n")
}

func TestFeeBumpRoundTrip(t *testing.T) {
	inner := paymentEnvelope(t)
	env := xdr.TransactionEnvelope{
		Type: xdr.EnvelopeTypeEnvelopeTypeTxFeeBump,
		FeeBump: &xdr.FeeBumpTransactionEnvelope{
			Tx: xdr.FeeBumpTransaction{
				FeeSource: testMuxed(t, 0x77),
				Fee:       1000,
				InnerTx: xdr.FeeBumpTransactionInnerTx{
					Type: xdr.EnvelopeTypeEnvelopeTypeTx,
					V1:   inner.V1,
				},
			},
			Signatures: []xdr.DecoratedSignature{testSignature(0x22)},
		},
	}
	roundTrip(t, env)

	text := ToTxrepEnvelope(env)
	assert.Contains(t, text, "type: ENVELOPE_TYPE_TX_FEE_BUMP\n")
	assert.Contains(t, text, "feeBump.tx.innerTx.type: ENVELOPE_TYPE_TX\n")
	assert.Contains(t, text, "feeBump.tx.innerTx.tx.fee: 100\n")
	assert.Contains(t, text, "feeBump.signatures.len: 1\n")
}

func TestMemoVariantsRoundTrip(t *testing.T) {
	text := "hello, txrep"
	id := xdr.Uint64(98765)
	hash := xdr.Hash(bytes.Repeat([]byte{0x5a}, 32))
	memos := []xdr.Memo{
		{Type: xdr.MemoTypeMemoText, Text: &text},
		{Type: xdr.MemoTypeMemoId, Id: &id},
		{Type: xdr.MemoTypeMemoHash, Hash: &hash},
		{Type: xdr.MemoTypeMemoReturn, RetHash: &hash},
	}
	for _, memo := range memos {
		env := paymentEnvelope(t)
		env.V1.Tx.Memo = memo
		roundTrip(t, env)
	}

	env := paymentEnvelope(t)
	env.V1.Tx.Memo = memos[0]
	assert.Contains(t, ToTxrepEnvelope(env), `tx.memo.text: "hello, txrep"`)
}

func TestPreconditionsV2RoundTrip(t *testing.T) {
	minSeq := xdr.SequenceNumber(42)
	signers := []xdr.SignerKey{
		{
			Type:    xdr.SignerKeyTypeSignerKeyTypeEd25519,
			Ed25519: testMuxed(t, 0x33).Ed25519,
		},
		{
			Type:    xdr.SignerKeyTypeSignerKeyTypeEd25519,
			Ed25519: testMuxed(t, 0x34).Ed25519,
		},
	}
	env := paymentEnvelope(t)
	env.V1.Tx.Cond = xdr.Preconditions{
		Type: xdr.PreconditionTypePrecondV2,
		V2: &xdr.PreconditionsV2{
			TimeBounds:      &xdr.TimeBounds{MinTime: 1, MaxTime: 2},
			LedgerBounds:    &xdr.LedgerBounds{MinLedger: 3, MaxLedger: 4},
			MinSeqNum:       &minSeq,
			MinSeqAge:       5,
			MinSeqLedgerGap: 6,
			ExtraSigners:    signers,
		},
	}
	roundTrip(t, env)

	text := ToTxrepEnvelope(env)
	assert.Contains(t, text, "tx.cond.type: PRECOND_V2\n")
	assert.Contains(t, text, "tx.cond.v2.minSeqNum._present: true\n")
	assert.Contains(t, text, "tx.cond.v2.extraSigners.len: 2\n")
}

func allOperations(t *testing.T) []xdr.Operation {
	t.Helper()
	dest := testMuxed(t, 0x42)
	destID := testAccountID(t, 0x42)
	usd := testAsset(t, "USD", 0x55)
	eurocoin := testAsset(t, "EUROCOIN", 0x55)
	native := xdr.NewNativeAsset()
	price := xdr.Price{N: 1, D: 2}
	poolID := xdr.PoolId(bytes.Repeat([]byte{0x99}, 32))
	dataValue := xdr.DataValue{0x01, 0x02}
	homeDomain := xdr.String32("example.com")
	weight := xdr.Uint32(255)
	absBefore := xdr.Int64(1700000000)
	relBefore := xdr.Int64(86400)
	notInner := &xdr.ClaimPredicate{
		Type:      xdr.ClaimPredicateTypeClaimPredicateBeforeRelativeTime,
		RelBefore: &relBefore,
	}
	predicate := xdr.ClaimPredicate{
		Type: xdr.ClaimPredicateTypeClaimPredicateAnd,
		AndPredicates: &[]xdr.ClaimPredicate{
			{
				Type: xdr.ClaimPredicateTypeClaimPredicateOr,
				OrPredicates: &[]xdr.ClaimPredicate{
					{Type: xdr.ClaimPredicateTypeClaimPredicateUnconditional},
					{Type: xdr.ClaimPredicateTypeClaimPredicateBeforeAbsoluteTime, AbsBefore: &absBefore},
				},
			},
			{Type: xdr.ClaimPredicateTypeClaimPredicateNot, NotPredicate: &notInner},
		},
	}
	balanceHash := xdr.Hash(bytes.Repeat([]byte{0xab}, 32))
	balanceID := xdr.ClaimableBalanceId{
		Type: xdr.ClaimableBalanceIdTypeClaimableBalanceIdTypeV0,
		V0:   &balanceHash,
	}
	usdCode, err := xdr.ParseAssetCode("USD")
	require.NoError(t, err)

	bodies := []xdr.OperationBody{
		{Type: xdr.OperationTypeCreateAccount, CreateAccountOp: &xdr.CreateAccountOp{
			Destination: destID, StartingBalance: 1000000000,
		}},
		{Type: xdr.OperationTypePayment, PaymentOp: &xdr.PaymentOp{
			Destination: dest, Asset: usd, Amount: 5000000,
		}},
		{Type: xdr.OperationTypePathPaymentStrictReceive, PathPaymentStrictReceiveOp: &xdr.PathPaymentStrictReceiveOp{
			SendAsset: native, SendMax: 10, Destination: dest,
			DestAsset: usd, DestAmount: 20, Path: []xdr.Asset{eurocoin},
		}},
		{Type: xdr.OperationTypeManageSellOffer, ManageSellOfferOp: &xdr.ManageSellOfferOp{
			Selling: usd, Buying: native, Amount: 30, Price: price, OfferId: 7,
		}},
		{Type: xdr.OperationTypeCreatePassiveSellOffer, CreatePassiveSellOfferOp: &xdr.CreatePassiveSellOfferOp{
			Selling: native, Buying: usd, Amount: 40, Price: price,
		}},
		{Type: xdr.OperationTypeSetOptions, SetOptionsOp: &xdr.SetOptionsOp{
			InflationDest: &destID,
			MasterWeight:  &weight,
			HomeDomain:    &homeDomain,
			Signer: &xdr.Signer{
				Key: xdr.SignerKey{
					Type:    xdr.SignerKeyTypeSignerKeyTypeEd25519,
					Ed25519: testMuxed(t, 0x66).Ed25519,
				},
				Weight: 1,
			},
		}},
		{Type: xdr.OperationTypeChangeTrust, ChangeTrustOp: &xdr.ChangeTrustOp{
			Line: usd.ToChangeTrustAsset(), Limit: 9223372036854775807,
		}},
		{Type: xdr.OperationTypeChangeTrust, ChangeTrustOp: &xdr.ChangeTrustOp{
			Line: xdr.ChangeTrustAsset{
				Type: xdr.AssetTypeAssetTypePoolShare,
				LiquidityPool: &xdr.LiquidityPoolParameters{
					Type: xdr.LiquidityPoolTypeLiquidityPoolConstantProduct,
					ConstantProduct: &xdr.LiquidityPoolConstantProductParameters{
						AssetA: native, AssetB: usd, Fee: 30,
					},
				},
			},
			Limit: 1000,
		}},
		{Type: xdr.OperationTypeAllowTrust, AllowTrustOp: &xdr.AllowTrustOp{
			Trustor: destID, Asset: usdCode, Authorize: 1,
		}},
		{Type: xdr.OperationTypeAccountMerge, Destination: &dest},
		{Type: xdr.OperationTypeInflation},
		{Type: xdr.OperationTypeManageData, ManageDataOp: &xdr.ManageDataOp{
			DataName: "config", DataValue: &dataValue,
		}},
		{Type: xdr.OperationTypeManageData, ManageDataOp: &xdr.ManageDataOp{
			DataName: "tombstone",
		}},
		{Type: xdr.OperationTypeBumpSequence, BumpSequenceOp: &xdr.BumpSequenceOp{BumpTo: 12345}},
		{Type: xdr.OperationTypeManageBuyOffer, ManageBuyOfferOp: &xdr.ManageBuyOfferOp{
			Selling: usd, Buying: native, BuyAmount: 50, Price: price, OfferId: 0,
		}},
		{Type: xdr.OperationTypePathPaymentStrictSend, PathPaymentStrictSendOp: &xdr.PathPaymentStrictSendOp{
			SendAsset: usd, SendAmount: 60, Destination: dest,
			DestAsset: native, DestMin: 70, Path: []xdr.Asset{eurocoin, native},
		}},
		{Type: xdr.OperationTypeCreateClaimableBalance, CreateClaimableBalanceOp: &xdr.CreateClaimableBalanceOp{
			Asset: native, Amount: 80,
			Claimants: []xdr.Claimant{{
				Type: xdr.ClaimantTypeClaimantTypeV0,
				V0:   &xdr.ClaimantV0{Destination: destID, Predicate: predicate},
			}},
		}},
		{Type: xdr.OperationTypeClaimClaimableBalance, ClaimClaimableBalanceOp: &xdr.ClaimClaimableBalanceOp{
			BalanceId: balanceID,
		}},
		{Type: xdr.OperationTypeBeginSponsoringFutureReserves, BeginSponsoringFutureReservesOp: &xdr.BeginSponsoringFutureReservesOp{
			SponsoredId: destID,
		}},
		{Type: xdr.OperationTypeEndSponsoringFutureReserves},
		{Type: xdr.OperationTypeRevokeSponsorship, RevokeSponsorshipOp: &xdr.RevokeSponsorshipOp{
			Type: xdr.RevokeSponsorshipTypeRevokeSponsorshipLedgerEntry,
			LedgerKey: &xdr.LedgerKey{
				Type:    xdr.LedgerEntryTypeAccount,
				Account: &xdr.LedgerKeyAccount{AccountId: destID},
			},
		}},
		{Type: xdr.OperationTypeRevokeSponsorship, RevokeSponsorshipOp: &xdr.RevokeSponsorshipOp{
			Type: xdr.RevokeSponsorshipTypeRevokeSponsorshipSigner,
			Signer: &xdr.RevokeSponsorshipOpSigner{
				AccountId: destID,
				SignerKey: xdr.SignerKey{
					Type:    xdr.SignerKeyTypeSignerKeyTypeEd25519,
					Ed25519: testMuxed(t, 0x66).Ed25519,
				},
			},
		}},
		{Type: xdr.OperationTypeClawback, ClawbackOp: &xdr.ClawbackOp{
			Asset: usd, From: dest, Amount: 90,
		}},
		{Type: xdr.OperationTypeClawbackClaimableBalance, ClawbackClaimableBalanceOp: &xdr.ClawbackClaimableBalanceOp{
			BalanceId: balanceID,
		}},
		{Type: xdr.OperationTypeSetTrustLineFlags, SetTrustLineFlagsOp: &xdr.SetTrustLineFlagsOp{
			Trustor: destID, Asset: usd, ClearFlags: 2, SetFlags: 1,
		}},
		{Type: xdr.OperationTypeLiquidityPoolDeposit, LiquidityPoolDepositOp: &xdr.LiquidityPoolDepositOp{
			LiquidityPoolId: poolID, MaxAmountA: 100, MaxAmountB: 200,
			MinPrice: price, MaxPrice: xdr.Price{N: 3, D: 1},
		}},
		{Type: xdr.OperationTypeLiquidityPoolWithdraw, LiquidityPoolWithdrawOp: &xdr.LiquidityPoolWithdrawOp{
			LiquidityPoolId: poolID, Amount: 300, MinAmountA: 10, MinAmountB: 20,
		}},
	}

	source := testMuxed(t, 0x11)
	ops := make([]xdr.Operation, len(bodies))
	for i, body := range bodies {
		ops[i] = xdr.Operation{Body: body}
	}
	ops[0].SourceAccount = &source
	return ops
}

func TestEveryOperationRoundTrip(t *testing.T) {
	env := paymentEnvelope(t)
	env.V1.Tx.Operations = allOperations(t)
	roundTrip(t, env)
}

func TestSorobanRoundTrip(t *testing.T) {
	contract := xdr.Hash(bytes.Repeat([]byte{0xcd}, 32))
	sym := xdr.ScSymbol("transfer")
	arg := xdr.Uint32(7)
	hostFn := xdr.HostFunction{
		Type: xdr.HostFunctionTypeHostFunctionTypeInvokeContract,
		InvokeContract: &xdr.InvokeContractArgs{
			ContractAddress: xdr.ScAddress{
				Type:       xdr.ScAddressTypeScAddressTypeContract,
				ContractId: &contract,
			},
			FunctionName: sym,
			Args: []xdr.ScVal{
				{Type: xdr.ScValTypeScvU32, U32: &arg},
			},
		},
	}
	auth := xdr.SorobanAuthorizationEntry{
		Credentials: xdr.SorobanCredentials{
			Type: xdr.SorobanCredentialsTypeSorobanCredentialsSourceAccount,
		},
		RootInvocation: xdr.SorobanAuthorizedInvocation{
			Function: xdr.SorobanAuthorizedFunction{
				Type:       xdr.SorobanAuthorizedFunctionTypeSorobanAuthorizedFunctionTypeContractFn,
				ContractFn: hostFn.InvokeContract,
			},
		},
	}

	env := paymentEnvelope(t)
	env.V1.Tx.Operations = []xdr.Operation{{
		Body: xdr.OperationBody{
			Type: xdr.OperationTypeInvokeHostFunction,
			InvokeHostFunctionOp: &xdr.InvokeHostFunctionOp{
				HostFunction: hostFn,
				Auth:         []xdr.SorobanAuthorizationEntry{auth},
			},
		},
	}}
	env.V1.Tx.Ext = xdr.TransactionExt{
		V: 1,
		SorobanData: &xdr.SorobanTransactionData{
			Resources: xdr.SorobanResources{
				Footprint: xdr.LedgerFootprint{
					ReadOnly: []xdr.LedgerKey{{
						Type:         xdr.LedgerEntryTypeContractCode,
						ContractCode: &xdr.LedgerKeyContractCode{Hash: contract},
					}},
					ReadWrite: []xdr.LedgerKey{{
						Type: xdr.LedgerEntryTypeContractData,
						ContractData: &xdr.LedgerKeyContractData{
							Contract: xdr.ScAddress{
								Type:       xdr.ScAddressTypeScAddressTypeContract,
								ContractId: &contract,
							},
							Key:        xdr.ScVal{Type: xdr.ScValTypeScvLedgerKeyContractInstance},
							Durability: xdr.ContractDataDurabilityPersistent,
						},
					}},
				},
				Instructions: 4000000,
				ReadBytes:    2000,
				WriteBytes:   1000,
			},
			ResourceFee: 50000,
		},
	}
	roundTrip(t, env)

	text := ToTxrepEnvelope(env)
	assert.Contains(t, text, "tx.ext.v: 1\n")
	assert.Contains(t, text, "tx.sorobanData.resources.instructions: 4000000\n")
	assert.Contains(t, text, "tx.sorobanData.resources.footprint.readOnly.len: 1\n")
	assert.Contains(t, text, ".contractData.durability: PERSISTENT\n")
}

func TestDecodeOrderIndependent(t *testing.T) {
	env := paymentEnvelope(t)
	env.V1.Tx.Operations = allOperations(t)
	b64, err := xdr.MarshalBase64(env)
	require.NoError(t, err)
	text, err := ToTxrep(b64)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	sort.Sort(sort.Reverse(sort.StringSlice(lines)))
	lines = append(lines, "", "prose without a separator is skipped", "tx.annotation: ignored")
	shuffled := strings.Join(lines, "\n")

	back, err := FromTxrep(shuffled)
	require.NoError(t, err)
	assert.Equal(t, b64, back)
}

func TestDecodeStripsComments(t *testing.T) {
	env := paymentEnvelope(t)
	b64, err := xdr.MarshalBase64(env)
	require.NoError(t, err)
	text := ToTxrepEnvelope(env)

	text = strings.Replace(text, "tx.fee: 100", "tx.fee: 100 (0.00001 of the native asset)", 1)
	text = strings.Replace(text, "tx.seqNum: 46489056724385793", "tx.seqNum: 46489056724385793 (ledger 10823021, tx 1)", 1)

	back, err := FromTxrep(text)
	require.NoError(t, err)
	assert.Equal(t, b64, back)
}

func TestQuotedValueKeepsParenthetical(t *testing.T) {
	text := `it is a ("quoted") value`
	env := paymentEnvelope(t)
	memoText := text
	env.V1.Tx.Memo = xdr.Memo{Type: xdr.MemoTypeMemoText, Text: &memoText}
	roundTrip(t, env)
}

func replaceLine(t *testing.T, text, key, value string) string {
	t.Helper()
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, key+": ") {
			lines[i] = key + ": " + value
			return strings.Join(lines, "\n") + "\n"
		}
	}
	t.Fatalf("key %q not found", key)
	return ""
}

func dropLine(t *testing.T, text, key string) string {
	t.Helper()
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	kept := lines[:0]
	for _, line := range lines {
		if !strings.HasPrefix(line, key+": ") {
			kept = append(kept, line)
		}
	}
	require.NotEqual(t, len(lines), len(kept), "key %q not found", key)
	return strings.Join(kept, "\n") + "\n"
}

func TestDecodeMissingField(t *testing.T) {
	text := ToTxrepEnvelope(paymentEnvelope(t))
	_, err := FromTxrep(dropLine(t, text, "tx.fee"))
	var missing MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "tx.fee", missing.Key)
}

func TestDecodeInvalidValues(t *testing.T) {
	base := ToTxrepEnvelope(paymentEnvelope(t))

	idEnv := paymentEnvelope(t)
	memoID := xdr.Uint64(7)
	idEnv.V1.Tx.Memo = xdr.Memo{Type: xdr.MemoTypeMemoId, Id: &memoID}
	idBase := ToTxrepEnvelope(idEnv)

	cases := []struct {
		name  string
		text  string
		key   string
		value string
	}{
		{"non-numeric fee", base, "tx.fee", "free"},
		{"negative fee", base, "tx.fee", "-1"},
		{"non-boolean flag", base, "tx.operations[0].sourceAccount._present", "yes"},
		{"odd hex signature", base, "signatures[0].signature", "abc"},
		{"short hint", base, "signatures[0].hint", "dead"},
		{"negative length", base, "tx.operations.len", "-1"},
		{"non-numeric memo id", idBase, "tx.memo.id", "seven"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromTxrep(replaceLine(t, tc.text, tc.key, tc.value))
			var invalid InvalidValueError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tc.key, invalid.Key)
		})
	}
}

func TestDecodeUnsupportedVariants(t *testing.T) {
	base := ToTxrepEnvelope(paymentEnvelope(t))
	cases := []struct {
		name  string
		key   string
		value string
	}{
		{"envelope type", "type", "ENVELOPE_TYPE_SCP"},
		{"precondition type", "tx.cond.type", "PRECOND_V9"},
		{"memo type", "tx.memo.type", "MEMO_EMOJI"},
		{"operation type", "tx.operations[0].body.type", "TELEPORT"},
		{"transaction ext", "tx.ext.v", "2"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromTxrep(replaceLine(t, base, tc.key, tc.value))
			var unsupported UnsupportedVariantError
			require.ErrorAs(t, err, &unsupported)
			assert.Equal(t, tc.key, unsupported.Key)
		})
	}
}

func TestDecodeInvalidAddress(t *testing.T) {
	base := ToTxrepEnvelope(paymentEnvelope(t))
	text := replaceLine(t, base, "tx.sourceAccount", "GBADADDRESS")
	_, err := FromTxrep(text)
	var invalid InvalidAddressError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "GBADADDRESS", invalid.Value)
}

func TestDecodeBoundsExceeded(t *testing.T) {
	base := ToTxrepEnvelope(paymentEnvelope(t))

	v2Env := paymentEnvelope(t)
	v2Env.V1.Tx.Cond = xdr.Preconditions{
		Type: xdr.PreconditionTypePrecondV2,
		V2: &xdr.PreconditionsV2{
			ExtraSigners: []xdr.SignerKey{{
				Type:    xdr.SignerKeyTypeSignerKeyTypeEd25519,
				Ed25519: testMuxed(t, 0x33).Ed25519,
			}},
		},
	}
	v2Base := ToTxrepEnvelope(v2Env)

	cases := []struct {
		name  string
		text  string
		key   string
		value string
		limit int64
	}{
		{"operations", base, "tx.operations.len", "101", 100},
		{"signatures", base, "signatures.len", "21", 20},
		{"extra signers", v2Base, "tx.cond.v2.extraSigners.len", "3", 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromTxrep(replaceLine(t, tc.text, tc.key, tc.value))
			var bounds BoundsExceededError
			require.ErrorAs(t, err, &bounds)
			assert.Equal(t, tc.key, bounds.Key)
			assert.Equal(t, tc.limit, bounds.Limit)
		})
	}
}

func TestDecodeMemoTextTooLong(t *testing.T) {
	env := paymentEnvelope(t)
	memoText := "fits"
	env.V1.Tx.Memo = xdr.Memo{Type: xdr.MemoTypeMemoText, Text: &memoText}
	base := ToTxrepEnvelope(env)

	long := strings.Repeat("x", 29)
	_, err := FromTxrep(replaceLine(t, base, "tx.memo.text", fmt.Sprintf("%q", long)))
	var bounds BoundsExceededError
	require.ErrorAs(t, err, &bounds)
	assert.Equal(t, int64(28), bounds.Limit)
	assert.Equal(t, int64(29), bounds.Actual)
}

func TestDecodePresentContradiction(t *testing.T) {
	base := ToTxrepEnvelope(paymentEnvelope(t))
	text := replaceLine(t, base, "tx.operations[0].sourceAccount._present", "false")
	lines := strings.TrimRight(text, "\n") + "\n" +
		"tx.operations[0].sourceAccount: " + testMuxed(t, 0x24).MustAddress() + "\n"

	_, err := FromTxrep(lines)
	var invalid InvalidValueError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "tx.operations[0].sourceAccount._present", invalid.Key)
}

func TestDecodeExcessIndexedEntry(t *testing.T) {
	base := ToTxrepEnvelope(paymentEnvelope(t))
	// any index at or beyond the declared count is excess, not just the
	// next one
	for _, index := range []int{1, 5} {
		extra := fmt.Sprintf("tx.operations[%d].body.type: INFLATION\n", index)
		text := strings.TrimRight(base, "\n") + "\n" + extra

		_, err := FromTxrep(text)
		var invalid InvalidValueError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "tx.operations.len", invalid.Key)
	}
}

func TestDecodePredicateArity(t *testing.T) {
	env := paymentEnvelope(t)
	env.V1.Tx.Operations = allOperations(t)
	base := ToTxrepEnvelope(env)

	andLen := "tx.operations[16].body.createClaimableBalanceOp.claimants[0].v0.predicate.andPredicates.len"
	_, err := FromTxrep(replaceLine(t, base, andLen, "1"))
	var invalid InvalidValueError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, andLen, invalid.Key)

	_, err = FromTxrep(replaceLine(t, base, andLen, "3"))
	var bounds BoundsExceededError
	require.ErrorAs(t, err, &bounds)
	assert.Equal(t, int64(2), bounds.Limit)
}

func TestDecodePredicateDepthBound(t *testing.T) {
	dest := testAccountID(t, 0x42)
	var b strings.Builder
	b.WriteString("type: ENVELOPE_TYPE_TX\n")
	b.WriteString("tx.sourceAccount: " + testMuxed(t, 0x24).MustAddress() + "\n")
	b.WriteString("tx.fee: 100\n")
	b.WriteString("tx.seqNum: 1\n")
	b.WriteString("tx.cond.type: PRECOND_NONE\n")
	b.WriteString("tx.memo.type: MEMO_NONE\n")
	b.WriteString("tx.operations.len: 1\n")
	b.WriteString("tx.operations[0].sourceAccount._present: false\n")
	b.WriteString("tx.operations[0].body.type: CREATE_CLAIMABLE_BALANCE\n")
	b.WriteString("tx.operations[0].body.createClaimableBalanceOp.asset: native\n")
	b.WriteString("tx.operations[0].body.createClaimableBalanceOp.amount: 1\n")
	b.WriteString("tx.operations[0].body.createClaimableBalanceOp.claimants.len: 1\n")
	b.WriteString("tx.operations[0].body.createClaimableBalanceOp.claimants[0].type: CLAIMANT_TYPE_V0\n")
	b.WriteString("tx.operations[0].body.createClaimableBalanceOp.claimants[0].v0.destination: " + dest.MustAddress() + "\n")

	key := "tx.operations[0].body.createClaimableBalanceOp.claimants[0].v0.predicate"
	for i := 0; i < 60; i++ {
		b.WriteString(key + ".type: CLAIM_PREDICATE_NOT\n")
		b.WriteString(key + ".notPredicate._present: true\n")
		key += ".notPredicate"
	}
	b.WriteString(key + ".type: CLAIM_PREDICATE_UNCONDITIONAL\n")
	b.WriteString("tx.ext.v: 0\n")
	b.WriteString("signatures.len: 0\n")

	_, err := FromTxrep(b.String())
	var bounds BoundsExceededError
	require.ErrorAs(t, err, &bounds)
	assert.Equal(t, int64(maxPredicateDepth), bounds.Limit)
}

func TestDecodeRejectsNestedFeeBump(t *testing.T) {
	env := paymentEnvelope(t)
	text := ToTxrepEnvelope(env)
	text = strings.ReplaceAll(text, "type: ENVELOPE_TYPE_TX\n", "type: ENVELOPE_TYPE_TX_FEE_BUMP\n")
	text = strings.ReplaceAll(text, "tx.", "feeBump.tx.innerTx.tx.")
	text = strings.Replace(text, "signatures.len", "feeBump.tx.innerTx.signatures.len", 1)
	text += "feeBump.tx.feeSource: " + testMuxed(t, 0x77).MustAddress() + "\n"
	text += "feeBump.tx.fee: 1000\n"
	text += "feeBump.tx.innerTx.type: ENVELOPE_TYPE_TX_FEE_BUMP\n"
	text += "feeBump.tx.ext.v: 0\n"
	text += "feeBump.signatures.len: 0\n"

	_, err := FromTxrep(text)
	var unsupported UnsupportedVariantError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "feeBump.tx.innerTx.type", unsupported.Key)
}

func TestToTxrepRejectsMalformedBase64(t *testing.T) {
	_, err := ToTxrep("not base64 at all!")
	require.Error(t, err)

	_, err = ToTxrep("AAAA")
	require.Error(t, err)
}
