package xdr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEnvelope() TransactionEnvelope {
	var source, dest Uint256
	for i := range source {
		source[i] = 1
		dest[i] = 2
	}
	return TransactionEnvelope{
		Type: EnvelopeTypeEnvelopeTypeTx,
		V1: &TransactionV1Envelope{
			Tx: Transaction{
				SourceAccount: MuxedAccount{
					Type:    CryptoKeyTypeKeyTypeEd25519,
					Ed25519: &source,
				},
				Fee:    100,
				SeqNum: 7,
				Cond:   Preconditions{Type: PreconditionTypePrecondNone},
				Memo:   Memo{Type: MemoTypeMemoNone},
				Operations: []Operation{{
					Body: OperationBody{
						Type: OperationTypePayment,
						PaymentOp: &PaymentOp{
							Destination: MuxedAccount{
								Type:    CryptoKeyTypeKeyTypeEd25519,
								Ed25519: &dest,
							},
							Asset:  Asset{Type: AssetTypeAssetTypeNative},
							Amount: 5000000,
						},
					},
				}},
			},
		},
	}
}

func TestSafeMarshalRoundTrip(t *testing.T) {
	env := testEnvelope()
	data, err := SafeMarshal(env)
	require.NoError(t, err)

	var decoded TransactionEnvelope
	require.NoError(t, SafeUnmarshal(data, &decoded))
	assert.Equal(t, EnvelopeTypeEnvelopeTypeTx, decoded.Type)
	require.NotNil(t, decoded.V1)
	assert.Equal(t, env.V1.Tx.Fee, decoded.V1.Tx.Fee)
	assert.Equal(t, env.V1.Tx.SourceAccount.Ed25519, decoded.V1.Tx.SourceAccount.Ed25519)
	require.Len(t, decoded.V1.Tx.Operations, 1)
	assert.Equal(t, Int64(5000000), decoded.V1.Tx.Operations[0].Body.PaymentOp.Amount)
}

func TestSafeUnmarshalRejectsTrailingBytes(t *testing.T) {
	data, err := SafeMarshal(testEnvelope())
	require.NoError(t, err)
	data = append(data, 0)

	var decoded TransactionEnvelope
	err = SafeUnmarshal(data, &decoded)
	require.Error(t, err)
	var malformed MalformedBinaryError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, len(data)-1, malformed.Offset)
}

func TestSafeUnmarshalRejectsTruncatedInput(t *testing.T) {
	data, err := SafeMarshal(testEnvelope())
	require.NoError(t, err)

	var decoded TransactionEnvelope
	err = SafeUnmarshal(data[:len(data)-4], &decoded)
	require.Error(t, err)
	var malformed MalformedBinaryError
	assert.ErrorAs(t, err, &malformed)
}

func TestUnmarshalRejectsUnknownUnionDiscriminant(t *testing.T) {
	// an envelope type with no arm defined
	data, err := SafeMarshal(int32(99))
	require.NoError(t, err)

	var decoded TransactionEnvelope
	assert.Error(t, SafeUnmarshal(data, &decoded))
}

func TestMemoTextSizeBound(t *testing.T) {
	text := "0123456789012345678901234567" // 28 bytes, at the limit
	memo := Memo{Type: MemoTypeMemoText, Text: &text}
	data, err := SafeMarshal(memo)
	require.NoError(t, err)

	var decoded Memo
	require.NoError(t, SafeUnmarshal(data, &decoded))
	require.NotNil(t, decoded.Text)
	assert.Equal(t, text, *decoded.Text)

	tooLong := text + "X"
	memo.Text = &tooLong
	_, err = SafeMarshal(memo)
	assert.Error(t, err)
}

func TestMarshalBase64RoundTrip(t *testing.T) {
	env := testEnvelope()
	b64, err := MarshalBase64(env)
	require.NoError(t, err)

	var decoded TransactionEnvelope
	require.NoError(t, UnmarshalBase64(b64, &decoded))

	again, err := MarshalBase64(decoded)
	require.NoError(t, err)
	assert.Equal(t, b64, again)
}

func TestUnmarshalBase64RejectsBadEncoding(t *testing.T) {
	var decoded TransactionEnvelope
	err := UnmarshalBase64("this is not base64!", &decoded)
	require.Error(t, err)
	var malformed MalformedBinaryError
	assert.ErrorAs(t, err, &malformed)
}
