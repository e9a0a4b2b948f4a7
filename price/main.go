// Package price converts between decimal price strings and the rational
// (n, d) pairs the ledger uses. Parse computes the best rational
// approximation within signed 32-bit bounds using continued fractions, so a
// given decimal string always yields the network's canonical pair.
package price

import (
	"math"
	"math/big"

	"github.com/pkg/errors"

	"github.com/stellar/txrep/xdr"
)

// Parse  calculates and returns the best rational approximation of the given
// real number price while still keeping both the numerator and the
// denominator of the resulting value within the precision limits of a 32-bit
// signed integer.
func Parse(v string) (xdr.Price, error) {
	return continuedFraction(v)
}

// MustParse is like Parse but panics on invalid input.
func MustParse(v string) xdr.Price {
	p, err := Parse(v)
	if err != nil {
		panic(err)
	}
	return p
}

// continuedFraction calculates and returns the best rational approximation
// of the given real number.
func continuedFraction(price string) (xdr.Price, error) {
	number := &big.Rat{}
	maxInt32 := &big.Rat{}
	zero := &big.Rat{}

	if _, ok := number.SetString(price); !ok {
		return xdr.Price{}, errors.Errorf("cannot parse price: %s", price)
	}
	if number.Sign() <= 0 {
		return xdr.Price{}, errors.Errorf("price must be positive: %s", price)
	}

	maxInt32.SetInt64(math.MaxInt32)

	fractions := [][2]*big.Rat{
		{new(big.Rat).SetInt64(0), new(big.Rat).SetInt64(1)},
		{new(big.Rat).SetInt64(1), new(big.Rat).SetInt64(0)},
	}

	i := 2
	for {
		if number.Cmp(maxInt32) > 0 {
			break
		}
		a := floor(number)
		f := new(big.Rat).Sub(number, a)
		h := new(big.Rat).Mul(a, fractions[i-1][0])
		h.Add(h, fractions[i-2][0])
		k := new(big.Rat).Mul(a, fractions[i-1][1])
		k.Add(k, fractions[i-2][1])
		if h.Cmp(maxInt32) > 0 || k.Cmp(maxInt32) > 0 {
			break
		}
		fractions = append(fractions, [2]*big.Rat{h, k})
		if f.Cmp(zero) == 0 {
			break
		}
		number.Inv(f)
		i++
	}

	n, d := fractions[len(fractions)-1][0], fractions[len(fractions)-1][1]
	if n.Cmp(zero) == 0 || d.Cmp(zero) == 0 {
		return xdr.Price{}, errors.New("price is invalid")
	}

	return xdr.Price{
		N: xdr.Int32(n.Num().Int64()),
		D: xdr.Int32(d.Num().Int64()),
	}, nil
}

// floor returns the integer part of r as a rational.
func floor(r *big.Rat) *big.Rat {
	q := new(big.Int).Quo(r.Num(), r.Denom())
	return new(big.Rat).SetInt(q)
}

// String renders the price as a decimal with up to 7 fractional digits.
// It is informational only; the canonical form of a price is its (n, d)
// pair.
func String(p xdr.Price) string {
	if p.D == 0 {
		return "undefined"
	}
	r := big.NewRat(int64(p.N), int64(p.D))
	return r.FloatString(7)
}
