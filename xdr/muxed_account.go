package xdr

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/stellar/txrep/strkey"
)

// Address returns the strkey form of the account id (a G address).
func (a AccountId) Address() (string, error) {
	if a.Ed25519 == nil {
		return "", errors.New("account id is not an ed25519 key")
	}
	return strkey.Encode(strkey.VersionByteAccountID, a.Ed25519[:])
}

// MustAddress is like Address but panics; it requires a validly constructed
// account id.
func (a AccountId) MustAddress() string {
	addr, err := a.Address()
	if err != nil {
		panic(err)
	}
	return addr
}

// SetAddress decodes a G strkey into the account id.
func (a *AccountId) SetAddress(address string) error {
	raw, err := strkey.Decode(strkey.VersionByteAccountID, address)
	if err != nil {
		return err
	}
	var key Uint256
	copy(key[:], raw)
	a.Type = PublicKeyTypePublicKeyTypeEd25519
	a.Ed25519 = &key
	return nil
}

// AddressAccountId builds an AccountId from a G strkey.
func AddressAccountId(address string) (AccountId, error) {
	var a AccountId
	err := a.SetAddress(address)
	return a, err
}

// Address returns the strkey form of the muxed account: a G address for a
// bare key, an M address when a multiplexing id is present.
func (m MuxedAccount) Address() (string, error) {
	switch m.Type {
	case CryptoKeyTypeKeyTypeEd25519:
		if m.Ed25519 == nil {
			return "", errors.New("muxed account has no ed25519 key")
		}
		return strkey.Encode(strkey.VersionByteAccountID, m.Ed25519[:])
	case CryptoKeyTypeKeyTypeMuxedEd25519:
		if m.Med25519 == nil {
			return "", errors.New("muxed account has no med25519 payload")
		}
		raw := make([]byte, 0, 40)
		raw = append(raw, m.Med25519.Ed25519[:]...)
		raw = binary.BigEndian.AppendUint64(raw, uint64(m.Med25519.Id))
		return strkey.Encode(strkey.VersionByteMuxedAccount, raw)
	}
	return "", errors.Errorf("unknown muxed account type %d", m.Type)
}

// MustAddress is like Address but panics; it requires a validly constructed
// muxed account.
func (m MuxedAccount) MustAddress() string {
	addr, err := m.Address()
	if err != nil {
		panic(err)
	}
	return addr
}

// SetAddress decodes a G or M strkey into the muxed account.
func (m *MuxedAccount) SetAddress(address string) error {
	if len(address) == 0 {
		return errors.New("empty address")
	}
	switch address[0] {
	case 'G':
		raw, err := strkey.Decode(strkey.VersionByteAccountID, address)
		if err != nil {
			return err
		}
		var key Uint256
		copy(key[:], raw)
		m.Type = CryptoKeyTypeKeyTypeEd25519
		m.Ed25519 = &key
		m.Med25519 = nil
	case 'M':
		raw, err := strkey.Decode(strkey.VersionByteMuxedAccount, address)
		if err != nil {
			return err
		}
		med := MuxedAccountMed25519{
			Id: Uint64(binary.BigEndian.Uint64(raw[32:])),
		}
		copy(med.Ed25519[:], raw[:32])
		m.Type = CryptoKeyTypeKeyTypeMuxedEd25519
		m.Med25519 = &med
		m.Ed25519 = nil
	default:
		return errors.Errorf("%q is not an account address", address)
	}
	return nil
}

// AddressMuxedAccount builds a MuxedAccount from a G or M strkey.
func AddressMuxedAccount(address string) (MuxedAccount, error) {
	var m MuxedAccount
	err := m.SetAddress(address)
	return m, err
}

// ToAccountId strips the multiplexing id, returning the underlying account.
func (m MuxedAccount) ToAccountId() (AccountId, error) {
	var key Uint256
	switch m.Type {
	case CryptoKeyTypeKeyTypeEd25519:
		if m.Ed25519 == nil {
			return AccountId{}, errors.New("muxed account has no ed25519 key")
		}
		key = *m.Ed25519
	case CryptoKeyTypeKeyTypeMuxedEd25519:
		if m.Med25519 == nil {
			return AccountId{}, errors.New("muxed account has no med25519 payload")
		}
		key = m.Med25519.Ed25519
	default:
		return AccountId{}, errors.Errorf("unknown muxed account type %d", m.Type)
	}
	return AccountId{Type: PublicKeyTypePublicKeyTypeEd25519, Ed25519: &key}, nil
}

// Address returns the strkey form of the Soroban address: a G address for
// accounts, a C address for contracts.
func (a ScAddress) Address() (string, error) {
	switch a.Type {
	case ScAddressTypeScAddressTypeAccount:
		if a.AccountId == nil {
			return "", errors.New("sc address has no account id")
		}
		return a.AccountId.Address()
	case ScAddressTypeScAddressTypeContract:
		if a.ContractId == nil {
			return "", errors.New("sc address has no contract id")
		}
		return strkey.Encode(strkey.VersionByteContract, a.ContractId[:])
	}
	return "", errors.Errorf("unknown sc address type %d", a.Type)
}

// SetAddress decodes a G or C strkey into the Soroban address.
func (a *ScAddress) SetAddress(address string) error {
	if len(address) == 0 {
		return errors.New("empty address")
	}
	switch address[0] {
	case 'G':
		var id AccountId
		if err := id.SetAddress(address); err != nil {
			return err
		}
		a.Type = ScAddressTypeScAddressTypeAccount
		a.AccountId = &id
		a.ContractId = nil
	case 'C':
		raw, err := strkey.Decode(strkey.VersionByteContract, address)
		if err != nil {
			return err
		}
		var h Hash
		copy(h[:], raw)
		a.Type = ScAddressTypeScAddressTypeContract
		a.ContractId = &h
		a.AccountId = nil
	default:
		return errors.Errorf("%q is not an account or contract address", address)
	}
	return nil
}
