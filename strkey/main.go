// Package strkey implements the checksummed base-32 text encoding used for
// Stellar account, muxed account, contract, and signer keys. The leading
// character of an encoded key identifies its kind: G for ed25519 account
// public keys, M for muxed accounts, C for contract addresses, S for seeds,
// T for pre-auth-tx hashes, X for hash-x preimages and P for ed25519 signed
// payloads.
package strkey

import (
	"bytes"
	"encoding/base32"
	"encoding/binary"

	"github.com/pkg/errors"
)

// VersionByte is the leading byte of a decoded strkey, identifying the kind
// of key the payload carries.
type VersionByte byte

const (
	// VersionByteAccountID is the version byte used for encoded stellar addresses
	VersionByteAccountID VersionByte = 6 << 3 // Base32-encodes to 'G...'
	// VersionByteMuxedAccount is the version byte used for encoded stellar muxed addresses
	VersionByteMuxedAccount VersionByte = 12 << 3 // Base32-encodes to 'M...'
	// VersionByteSeed is the version byte used for encoded stellar seed
	VersionByteSeed VersionByte = 18 << 3 // Base32-encodes to 'S...'
	// VersionByteHashTx is the version byte used for encoded stellar hashTx
	// signer keys.
	VersionByteHashTx VersionByte = 19 << 3 // Base32-encodes to 'T...'
	// VersionByteHashX is the version byte used for encoded stellar hashX
	// signer keys.
	VersionByteHashX VersionByte = 23 << 3 // Base32-encodes to 'X...'
	// VersionByteSignedPayload is the version byte used for encoding "signed
	// payload" signer keys.
	VersionByteSignedPayload VersionByte = 15 << 3 // Base32-encodes to 'P...'
	// VersionByteContract is the version byte used for encoded stellar contracts
	VersionByteContract VersionByte = 2 << 3 // Base32-encodes to 'C...'
)

var base32Codec = base32.StdEncoding.WithPadding(base32.NoPadding)

// maxPayloadSize is the largest payload a strkey can carry: an ed25519
// public key plus a length-prefixed signed payload of up to 64 bytes.
const maxPayloadSize = 32 + 4 + 64

// ErrInvalidVersionByte is returned when the version byte from a provided
// strkey-encoded string is not one of the valid values.
var ErrInvalidVersionByte = errors.New("invalid version byte")

// Version extracts and returns the version byte from the provided source
// string.
func Version(src string) (VersionByte, error) {
	raw, err := decodeString(src)
	if err != nil {
		return VersionByte(0), err
	}
	return VersionByte(raw[0]), nil
}

// Decode decodes the provided strkey into a raw value, checking the checksum
// and ensuring the expected VersionByte (the version parameter) is the value
// actually encoded into the provided source string.
func Decode(expected VersionByte, src string) ([]byte, error) {
	if err := checkValidVersionByte(expected); err != nil {
		return nil, err
	}

	raw, err := decodeString(src)
	if err != nil {
		return nil, err
	}

	// The minimal strkey is one version byte, an empty payload and a two
	// byte checksum.
	if len(raw) < 3 {
		return nil, errors.Errorf("encoded value is %d bytes; minimum valid length is 3", len(raw))
	}

	version := VersionByte(raw[0])
	vp := raw[0 : len(raw)-2]
	payload := raw[1 : len(raw)-2]
	checksum := raw[len(raw)-2:]

	if version != expected {
		return nil, ErrInvalidVersionByte
	}

	if err := verifyChecksum(vp, checksum); err != nil {
		return nil, err
	}

	if err := checkPayloadSize(version, payload); err != nil {
		return nil, err
	}

	// Reject non-canonical encodings: the only valid text form of a strkey
	// is the one Encode produces for its raw bytes.
	if canonical, err := Encode(version, payload); err != nil || canonical != src {
		return nil, errors.New("non-canonical strkey encoding")
	}

	return payload, nil
}

// MustDecode is like Decode, but panics on error
func MustDecode(expected VersionByte, src string) []byte {
	d, err := Decode(expected, src)
	if err != nil {
		panic(err)
	}
	return d
}

// Encode encodes the provided data to a strkey, using the provided version
// byte.
func Encode(version VersionByte, src []byte) (string, error) {
	if err := checkValidVersionByte(version); err != nil {
		return "", err
	}
	if err := checkPayloadSize(version, src); err != nil {
		return "", err
	}

	raw := make([]byte, 0, 1+len(src)+2)
	raw = append(raw, byte(version))
	raw = append(raw, src...)
	raw = appendChecksum(raw)

	return base32Codec.EncodeToString(raw), nil
}

// MustEncode is like Encode, but panics on error
func MustEncode(version VersionByte, src []byte) string {
	e, err := Encode(version, src)
	if err != nil {
		panic(err)
	}
	return e
}

// IsValidEd25519PublicKey validates a stellar public key
func IsValidEd25519PublicKey(s string) bool {
	_, err := Decode(VersionByteAccountID, s)
	return err == nil
}

// checkValidVersionByte returns an error if the provided value is not one of
// the defined valid version bytes.
func checkValidVersionByte(version VersionByte) error {
	switch version {
	case VersionByteAccountID, VersionByteMuxedAccount, VersionByteSeed,
		VersionByteHashTx, VersionByteHashX, VersionByteSignedPayload,
		VersionByteContract:
		return nil
	default:
		return ErrInvalidVersionByte
	}
}

// checkPayloadSize enforces the payload length for each key kind: 32 bytes
// for everything except muxed accounts (32 byte key plus 8 byte id) and
// signed payloads (32 byte key plus a 4-byte length prefix and up to 64
// payload bytes padded to a 4 byte boundary).
func checkPayloadSize(version VersionByte, payload []byte) error {
	switch version {
	case VersionByteMuxedAccount:
		if len(payload) != 40 {
			return errors.Errorf("muxed account payload is %d bytes; expected 40", len(payload))
		}
	case VersionByteSignedPayload:
		if len(payload) < 32+4 || len(payload) > maxPayloadSize {
			return errors.Errorf("signed payload is %d bytes; expected 36 to %d", len(payload), maxPayloadSize)
		}
		innerLen := binary.BigEndian.Uint32(payload[32:36])
		padded := (innerLen + 3) &^ 3
		if innerLen > 64 || len(payload) != int(32+4+padded) {
			return errors.New("signed payload has invalid length prefix")
		}
		for _, b := range payload[36+int(innerLen):] {
			if b != 0 {
				return errors.New("signed payload padding must be zero")
			}
		}
	default:
		if len(payload) != 32 {
			return errors.Errorf("payload is %d bytes; expected 32", len(payload))
		}
	}
	return nil
}

func decodeString(src string) ([]byte, error) {
	raw, err := base32Codec.DecodeString(src)
	if err != nil {
		return nil, errors.Wrap(err, "base32 decode failed")
	}
	return raw, nil
}

// appendChecksum appends the CRC16-XMODEM checksum of data, little-endian.
func appendChecksum(data []byte) []byte {
	var crc uint16
	for _, b := range data {
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return append(data, byte(crc), byte(crc>>8))
}

func verifyChecksum(data, expected []byte) error {
	actual := appendChecksum(append([]byte{}, data...))[len(data):]
	if !bytes.Equal(actual, expected) {
		return errors.New("invalid checksum")
	}
	return nil
}
