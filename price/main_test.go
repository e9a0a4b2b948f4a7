package price

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stellar/txrep/xdr"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		input string
		n     xdr.Int32
		d     xdr.Int32
	}{
		{"0.1", 1, 10},
		{"0.01", 1, 100},
		{"0.001", 1, 1000},
		{"543.017930", 54301793, 100000},
		{"319.69983", 31969983, 100000},
		{"0.93", 93, 100},
		{"0.5", 1, 2},
		{"1.730", 173, 100},
		{"0.85334384", 5333399, 6250000},
		{"5.5", 11, 2},
		{"2.72783", 272783, 100000},
		{"638082.0", 638082, 1},
		{"2.93850088", 36731261, 12500000},
		{"58.04", 1451, 25},
		{"41.265", 8253, 200},
		{"5.1476", 12869, 2500},
		{"95.14", 4757, 50},
		{"0.74580", 3729, 5000},
		{"4119.0", 4119, 1},
		{"1073742464.5", 1073742464, 1},
		{"1635962526.2", 1635962526, 1},
		{"2147483647", 2147483647, 1},
	}

	for _, tc := range testCases {
		p, err := Parse(tc.input)
		require.NoError(t, err, tc.input)
		assert.Equal(t, tc.n, p.N, tc.input)
		assert.Equal(t, tc.d, p.D, tc.input)
	}
}

func TestParseInvalid(t *testing.T) {
	for _, input := range []string{
		"",
		"abc",
		"0",
		"-0.5",
		"2147483648",
	} {
		_, err := Parse(input)
		assert.Error(t, err, input)
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "0.5000000", String(xdr.Price{N: 1, D: 2}))
	assert.Equal(t, "1.0000000", String(xdr.Price{N: 3, D: 3}))
	assert.Equal(t, "undefined", String(xdr.Price{N: 1, D: 0}))
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse("not-a-price") })
}
