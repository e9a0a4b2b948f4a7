package xdr

import (
	"bytes"
	"strings"

	"github.com/pkg/errors"
)

// trimAssetCode strips the right NUL padding of a raw asset code.
func trimAssetCode(code []byte) string {
	return string(bytes.TrimRight(code, "\x00"))
}

// NewCreditAsset builds a credit asset from a code and issuer address. The
// code length selects the alphanum4 or alphanum12 form.
func NewCreditAsset(code, issuer string) (Asset, error) {
	var a Asset
	issuerId, err := AddressAccountId(issuer)
	if err != nil {
		return a, err
	}
	switch {
	case len(code) >= 1 && len(code) <= 4:
		a.Type = AssetTypeAssetTypeCreditAlphanum4
		an := AssetAlphaNum4{Issuer: issuerId}
		copy(an.AssetCode[:], code)
		a.AlphaNum4 = &an
	case len(code) >= 5 && len(code) <= 12:
		a.Type = AssetTypeAssetTypeCreditAlphanum12
		an := AssetAlphaNum12{Issuer: issuerId}
		copy(an.AssetCode[:], code)
		a.AlphaNum12 = &an
	default:
		return a, errors.Errorf("asset code length %d is out of range", len(code))
	}
	return a, nil
}

// NewNativeAsset returns the native asset.
func NewNativeAsset() Asset {
	return Asset{Type: AssetTypeAssetTypeNative}
}

// StringCanonical renders the asset in its canonical text form: "native" or
// "CODE:ISSUER".
func (a Asset) StringCanonical() (string, error) {
	switch a.Type {
	case AssetTypeAssetTypeNative:
		return "native", nil
	case AssetTypeAssetTypeCreditAlphanum4:
		if a.AlphaNum4 == nil {
			return "", errors.New("alphanum4 asset has no arm")
		}
		issuer, err := a.AlphaNum4.Issuer.Address()
		if err != nil {
			return "", err
		}
		return trimAssetCode(a.AlphaNum4.AssetCode[:]) + ":" + issuer, nil
	case AssetTypeAssetTypeCreditAlphanum12:
		if a.AlphaNum12 == nil {
			return "", errors.New("alphanum12 asset has no arm")
		}
		issuer, err := a.AlphaNum12.Issuer.Address()
		if err != nil {
			return "", err
		}
		return trimAssetCode(a.AlphaNum12.AssetCode[:]) + ":" + issuer, nil
	}
	return "", errors.Errorf("unknown asset type %d", a.Type)
}

// MustStringCanonical is like StringCanonical but panics; it requires a
// validly constructed asset.
func (a Asset) MustStringCanonical() string {
	s, err := a.StringCanonical()
	if err != nil {
		panic(err)
	}
	return s
}

// ParseAssetString parses the canonical "native" or "CODE:ISSUER" form.
func ParseAssetString(s string) (Asset, error) {
	if s == "native" {
		return NewNativeAsset(), nil
	}
	code, issuer, ok := strings.Cut(s, ":")
	if !ok {
		return Asset{}, errors.Errorf("%q is not an asset", s)
	}
	return NewCreditAsset(code, issuer)
}

// CodeString renders the bare asset code union as its trimmed code.
func (c AssetCode) CodeString() (string, error) {
	switch c.Type {
	case AssetTypeAssetTypeCreditAlphanum4:
		if c.AssetCode4 == nil {
			return "", errors.New("alphanum4 code has no arm")
		}
		return trimAssetCode(c.AssetCode4[:]), nil
	case AssetTypeAssetTypeCreditAlphanum12:
		if c.AssetCode12 == nil {
			return "", errors.New("alphanum12 code has no arm")
		}
		return trimAssetCode(c.AssetCode12[:]), nil
	}
	return "", errors.Errorf("unknown asset code type %d", c.Type)
}

// ParseAssetCode parses a bare asset code, selecting the alphanum4 or
// alphanum12 form by length.
func ParseAssetCode(code string) (AssetCode, error) {
	var c AssetCode
	switch {
	case len(code) >= 1 && len(code) <= 4:
		c.Type = AssetTypeAssetTypeCreditAlphanum4
		var c4 AssetCode4
		copy(c4[:], code)
		c.AssetCode4 = &c4
	case len(code) >= 5 && len(code) <= 12:
		c.Type = AssetTypeAssetTypeCreditAlphanum12
		var c12 AssetCode12
		copy(c12[:], code)
		c.AssetCode12 = &c12
	default:
		return c, errors.Errorf("asset code length %d is out of range", len(code))
	}
	return c, nil
}

// ToChangeTrustAsset widens a plain asset into the change-trust asset union.
func (a Asset) ToChangeTrustAsset() ChangeTrustAsset {
	return ChangeTrustAsset{
		Type:       a.Type,
		AlphaNum4:  a.AlphaNum4,
		AlphaNum12: a.AlphaNum12,
	}
}

// ToAsset narrows a change-trust asset back to a plain asset; pool-share
// assets have no plain form.
func (a ChangeTrustAsset) ToAsset() (Asset, error) {
	if a.Type == AssetTypeAssetTypePoolShare {
		return Asset{}, errors.New("pool share asset has no canonical asset form")
	}
	return Asset{Type: a.Type, AlphaNum4: a.AlphaNum4, AlphaNum12: a.AlphaNum12}, nil
}

// ToAsset narrows a trust-line asset back to a plain asset; pool-share
// assets have no plain form.
func (a TrustLineAsset) ToAsset() (Asset, error) {
	if a.Type == AssetTypeAssetTypePoolShare {
		return Asset{}, errors.New("pool share asset has no canonical asset form")
	}
	return Asset{Type: a.Type, AlphaNum4: a.AlphaNum4, AlphaNum12: a.AlphaNum12}, nil
}
