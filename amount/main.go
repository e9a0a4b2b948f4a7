// Package amount converts between the ledger's scaled int64 representation
// of asset amounts ("stroops", 1e7 per unit) and decimal strings. Decimal
// inputs carry at most 7 fractional digits; conversions never truncate or
// round.
package amount

import (
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/stellar/txrep/xdr"
)

// One is the number of stroops in one unit of an asset.
const One = 10000000

var validAmount = regexp.MustCompile(`^(-?)(\d*)(?:\.(\d{1,7}))?$`)

// Parse converts a decimal string to its stroop representation.
func Parse(v string) (xdr.Int64, error) {
	i, err := ParseInt64(v)
	return xdr.Int64(i), err
}

// MustParse is like Parse but panics on invalid input.
func MustParse(v string) xdr.Int64 {
	a, err := Parse(v)
	if err != nil {
		panic(err)
	}
	return a
}

// ParseInt64 converts a decimal string to stroops as a plain int64. A value
// with more than 7 fractional digits or outside the int64 range after
// scaling is rejected.
func ParseInt64(v string) (int64, error) {
	m := validAmount.FindStringSubmatch(v)
	if m == nil || (m[2] == "" && m[3] == "") {
		return 0, errors.Errorf("invalid amount format: %s", v)
	}

	frac := m[3] + strings.Repeat("0", 7-len(m[3]))
	digits := m[2] + frac
	value, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return 0, errors.Errorf("invalid amount format: %s", v)
	}
	if m[1] == "-" {
		value.Neg(value)
	}
	if !value.IsInt64() {
		return 0, errors.Errorf("amount overflows int64: %s", v)
	}
	return value.Int64(), nil
}

// String returns the minimal decimal representation of the provided stroop
// amount: no exponent, no forced trailing zeros.
func String(v xdr.Int64) string {
	return StringFromInt64(int64(v))
}

// StringFromInt64 is String for a plain int64 stroop amount.
func StringFromInt64(v int64) string {
	sign := ""
	u := uint64(v)
	if v < 0 {
		sign = "-"
		u = uint64(-(v + 1)) + 1 // avoids overflow on math.MinInt64
	}
	whole := u / One
	frac := u % One
	if frac == 0 {
		return fmt.Sprintf("%s%d", sign, whole)
	}
	f := strings.TrimRight(fmt.Sprintf("%07d", frac), "0")
	return fmt.Sprintf("%s%d.%s", sign, whole, f)
}

// IntStringToAmount converts a raw stroop string to its decimal form,
// validating the int64 range.
func IntStringToAmount(v string) (string, error) {
	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return "", errors.Wrapf(err, "invalid stroop amount %q", v)
	}
	return StringFromInt64(i), nil
}
