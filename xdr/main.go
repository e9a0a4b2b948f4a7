// Package xdr models the subset of the Stellar XDR schema reachable from a
// transaction envelope, together with its binary wire codec. Unions are
// closed sum types: a discriminant enum plus one pointer arm per variant,
// with the SwitchFieldName/ArmForSwitch method pair the xdr3 codec dispatches
// on. An unknown discriminant is a decode error, never a silently dropped
// value.
package xdr

import (
	"bytes"
	"encoding/base64"
	"fmt"

	xdr3 "github.com/stellar/go-xdr/xdr3"
)

// Int32 is an XDR Typedef
type Int32 int32

// Uint32 is an XDR Typedef
type Uint32 uint32

// Int64 is an XDR Typedef
type Int64 int64

// Uint64 is an XDR Typedef
type Uint64 uint64

// Hash is a fixed 32-byte opaque value.
type Hash [32]byte

// Uint256 is a fixed 32-byte opaque value.
type Uint256 [32]byte

// String32 is an XDR string bounded to 32 bytes.
type String32 string

// String64 is an XDR string bounded to 64 bytes.
type String64 string

// SequenceNumber is a transaction sequence number.
type SequenceNumber Int64

// TimePoint is a Unix timestamp in seconds.
type TimePoint Uint64

// Duration is a length of time in seconds.
type Duration Uint64

// DataValue is the value of a managed data entry, up to 64 bytes.
type DataValue []byte

// Signature is a raw signature, up to 64 bytes.
type Signature []byte

// SignatureHint is the last 4 bytes of the signer's public key.
type SignatureHint [4]byte

// PoolId identifies a liquidity pool.
type PoolId Hash

// MalformedBinaryError is returned when binary input cannot be decoded as
// the expected XDR structure. Offset is the number of bytes successfully
// consumed before the failure.
type MalformedBinaryError struct {
	Offset int
	Err    error
}

func (e MalformedBinaryError) Error() string {
	return fmt.Sprintf("malformed binary at offset %d: %v", e.Offset, e.Err)
}

func (e MalformedBinaryError) Unwrap() error { return e.Err }

// SafeMarshal marshals the provided value to its binary XDR form.
func SafeMarshal(v interface{}) ([]byte, error) {
	var b bytes.Buffer
	if _, err := xdr3.Marshal(&b, v); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// SafeUnmarshal decodes the provided binary blob into the destination,
// requiring the input to be fully consumed: trailing bytes are an error.
func SafeUnmarshal(data []byte, dest interface{}) error {
	r := bytes.NewReader(data)
	n, err := xdr3.Unmarshal(r, dest)
	if err != nil {
		return MalformedBinaryError{Offset: n, Err: err}
	}
	if n != len(data) {
		return MalformedBinaryError{
			Offset: n,
			Err:    fmt.Errorf("input is %d bytes but only %d were consumed", len(data), n),
		}
	}
	return nil
}

// MarshalBase64 marshals the provided value to base64-encoded XDR.
func MarshalBase64(v interface{}) (string, error) {
	data, err := SafeMarshal(v)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// UnmarshalBase64 decodes a base64-encoded XDR blob into the destination.
func UnmarshalBase64(b64 string, dest interface{}) error {
	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return MalformedBinaryError{Offset: 0, Err: err}
	}
	return SafeUnmarshal(data, dest)
}
