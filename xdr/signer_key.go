package xdr

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/stellar/txrep/strkey"
)

// Address returns the strkey form of the signer key. The leading character
// encodes the kind: G, T, X or P.
func (s SignerKey) Address() (string, error) {
	switch s.Type {
	case SignerKeyTypeSignerKeyTypeEd25519:
		if s.Ed25519 == nil {
			return "", errors.New("signer key has no ed25519 arm")
		}
		return strkey.Encode(strkey.VersionByteAccountID, s.Ed25519[:])
	case SignerKeyTypeSignerKeyTypePreAuthTx:
		if s.PreAuthTx == nil {
			return "", errors.New("signer key has no pre-auth-tx arm")
		}
		return strkey.Encode(strkey.VersionByteHashTx, s.PreAuthTx[:])
	case SignerKeyTypeSignerKeyTypeHashX:
		if s.HashX == nil {
			return "", errors.New("signer key has no hash-x arm")
		}
		return strkey.Encode(strkey.VersionByteHashX, s.HashX[:])
	case SignerKeyTypeSignerKeyTypeEd25519SignedPayload:
		if s.Ed25519SignedPayload == nil {
			return "", errors.New("signer key has no signed-payload arm")
		}
		sp := s.Ed25519SignedPayload
		padded := (len(sp.Payload) + 3) &^ 3
		raw := make([]byte, 0, 32+4+padded)
		raw = append(raw, sp.Ed25519[:]...)
		raw = binary.BigEndian.AppendUint32(raw, uint32(len(sp.Payload)))
		raw = append(raw, sp.Payload...)
		raw = append(raw, make([]byte, padded-len(sp.Payload))...)
		return strkey.Encode(strkey.VersionByteSignedPayload, raw)
	}
	return "", errors.Errorf("unknown signer key type %d", s.Type)
}

// MustAddress is like Address but panics; it requires a validly constructed
// signer key.
func (s SignerKey) MustAddress() string {
	addr, err := s.Address()
	if err != nil {
		panic(err)
	}
	return addr
}

// SetAddress decodes a G, T, X or P strkey into the signer key.
func (s *SignerKey) SetAddress(address string) error {
	if len(address) == 0 {
		return errors.New("empty signer key")
	}
	*s = SignerKey{}
	switch address[0] {
	case 'G':
		raw, err := strkey.Decode(strkey.VersionByteAccountID, address)
		if err != nil {
			return err
		}
		var key Uint256
		copy(key[:], raw)
		s.Type = SignerKeyTypeSignerKeyTypeEd25519
		s.Ed25519 = &key
	case 'T':
		raw, err := strkey.Decode(strkey.VersionByteHashTx, address)
		if err != nil {
			return err
		}
		var key Uint256
		copy(key[:], raw)
		s.Type = SignerKeyTypeSignerKeyTypePreAuthTx
		s.PreAuthTx = &key
	case 'X':
		raw, err := strkey.Decode(strkey.VersionByteHashX, address)
		if err != nil {
			return err
		}
		var key Uint256
		copy(key[:], raw)
		s.Type = SignerKeyTypeSignerKeyTypeHashX
		s.HashX = &key
	case 'P':
		raw, err := strkey.Decode(strkey.VersionByteSignedPayload, address)
		if err != nil {
			return err
		}
		sp := SignerKeyEd25519SignedPayload{}
		copy(sp.Ed25519[:], raw[:32])
		payloadLen := binary.BigEndian.Uint32(raw[32:36])
		sp.Payload = append([]byte{}, raw[36:36+int(payloadLen)]...)
		s.Type = SignerKeyTypeSignerKeyTypeEd25519SignedPayload
		s.Ed25519SignedPayload = &sp
	default:
		return errors.Errorf("%q is not a signer key", address)
	}
	return nil
}

// AddressSignerKey builds a SignerKey from its strkey form.
func AddressSignerKey(address string) (SignerKey, error) {
	var s SignerKey
	err := s.SetAddress(address)
	return s, err
}
