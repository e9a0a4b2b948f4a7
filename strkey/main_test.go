package strkey

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func payload32(fill byte) []byte {
	p := make([]byte, 32)
	for i := range p {
		p[i] = fill
	}
	return p
}

func TestEncodeLeadingCharacter(t *testing.T) {
	testCases := []struct {
		version VersionByte
		payload []byte
		leading byte
	}{
		{VersionByteAccountID, payload32(1), 'G'},
		{VersionByteMuxedAccount, make([]byte, 40), 'M'},
		{VersionByteSeed, payload32(2), 'S'},
		{VersionByteHashTx, payload32(3), 'T'},
		{VersionByteHashX, payload32(4), 'X'},
		{VersionByteContract, payload32(5), 'C'},
	}

	for _, tc := range testCases {
		encoded, err := Encode(tc.version, tc.payload)
		require.NoError(t, err)
		assert.Equal(t, tc.leading, encoded[0])

		version, err := Version(encoded)
		require.NoError(t, err)
		assert.Equal(t, tc.version, version)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, version := range []VersionByte{
		VersionByteAccountID,
		VersionByteSeed,
		VersionByteHashTx,
		VersionByteHashX,
		VersionByteContract,
	} {
		payload := payload32(byte(version))
		encoded := MustEncode(version, payload)
		decoded, err := Decode(version, encoded)
		require.NoError(t, err)
		assert.Equal(t, payload, decoded)
	}
}

func TestMuxedAccountRoundTrip(t *testing.T) {
	payload := make([]byte, 40)
	copy(payload, payload32(7))
	binary.BigEndian.PutUint64(payload[32:], 1234567890)

	encoded := MustEncode(VersionByteMuxedAccount, payload)
	decoded, err := Decode(VersionByteMuxedAccount, encoded)
	require.NoError(t, err)
	assert.Equal(t, payload, decoded)
}

func TestSignedPayloadRoundTrip(t *testing.T) {
	// 32 byte key, 4 byte length prefix, 9 byte payload padded to 12
	payload := make([]byte, 32+4+12)
	copy(payload, payload32(9))
	binary.BigEndian.PutUint32(payload[32:], 9)
	for i := 0; i < 9; i++ {
		payload[36+i] = byte(i + 1)
	}

	encoded := MustEncode(VersionByteSignedPayload, payload)
	assert.Equal(t, byte('P'), encoded[0])
	decoded, err := Decode(VersionByteSignedPayload, encoded)
	require.NoError(t, err)
	assert.Equal(t, payload, decoded)
}

func TestSignedPayloadInvalid(t *testing.T) {
	// non-zero padding byte
	payload := make([]byte, 32+4+12)
	binary.BigEndian.PutUint32(payload[32:], 9)
	payload[36+11] = 1
	_, err := Encode(VersionByteSignedPayload, payload)
	assert.Error(t, err)

	// length prefix exceeds the 64 byte maximum
	payload = make([]byte, 32+4+68)
	binary.BigEndian.PutUint32(payload[32:], 68)
	_, err = Encode(VersionByteSignedPayload, payload)
	assert.Error(t, err)
}

func TestDecodeWrongVersion(t *testing.T) {
	encoded := MustEncode(VersionByteAccountID, payload32(1))
	_, err := Decode(VersionByteSeed, encoded)
	assert.ErrorIs(t, err, ErrInvalidVersionByte)
}

func TestDecodeCorruptedChecksum(t *testing.T) {
	encoded := MustEncode(VersionByteAccountID, payload32(1))

	// flip a payload character so the checksum no longer matches
	corrupted := []byte(encoded)
	mid := len(corrupted) / 2
	if corrupted[mid] == 'A' {
		corrupted[mid] = 'B'
	} else {
		corrupted[mid] = 'A'
	}
	_, err := Decode(VersionByteAccountID, string(corrupted))
	assert.Error(t, err)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	for _, input := range []string{
		"",
		"hello",
		"G123",
		"GAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA1",
	} {
		_, err := Decode(VersionByteAccountID, input)
		assert.Error(t, err, input)
	}
}

func TestEncodeWrongPayloadSize(t *testing.T) {
	_, err := Encode(VersionByteAccountID, make([]byte, 31))
	assert.Error(t, err)

	_, err = Encode(VersionByteMuxedAccount, make([]byte, 32))
	assert.Error(t, err)
}

func TestEncodeInvalidVersionByte(t *testing.T) {
	_, err := Encode(VersionByte(1), payload32(1))
	assert.ErrorIs(t, err, ErrInvalidVersionByte)
}

func TestIsValidEd25519PublicKey(t *testing.T) {
	encoded := MustEncode(VersionByteAccountID, payload32(3))
	assert.True(t, IsValidEd25519PublicKey(encoded))
	assert.False(t, IsValidEd25519PublicKey("not a key"))
	assert.False(t, IsValidEd25519PublicKey(MustEncode(VersionByteContract, payload32(3))))
}
