package amount

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var conversionVectors = []struct {
	stroops int64
	decimal string
}{
	{100, "0.00001"},
	{1, "0.0000001"},
	{123456789, "12.3456789"},
	{1000000000, "100"},
	{1234567890, "123.456789"},
	{One, "1"},
	{-One, "-1"},
	{-1, "-0.0000001"},
	{0, "0"},
	{math.MaxInt64, "922337203685.4775807"},
	{math.MinInt64, "-922337203685.4775808"},
}

func TestParseInt64(t *testing.T) {
	for _, tc := range conversionVectors {
		v, err := ParseInt64(tc.decimal)
		require.NoError(t, err, tc.decimal)
		assert.Equal(t, tc.stroops, v, tc.decimal)
	}
}

func TestParseInt64Invalid(t *testing.T) {
	for _, input := range []string{
		"",
		".",
		"-",
		"1.12345678",
		"nan",
		"1e7",
		"0x10",
		"1 000",
		"922337203685.4775808",
	} {
		_, err := ParseInt64(input)
		assert.Error(t, err, input)
	}
}

func TestStringFromInt64(t *testing.T) {
	for _, tc := range conversionVectors {
		assert.Equal(t, tc.decimal, StringFromInt64(tc.stroops))
	}
}

func TestStringIsMinimal(t *testing.T) {
	assert.Equal(t, "1.5", StringFromInt64(15000000))
	assert.Equal(t, "0.5", StringFromInt64(5000000))
	assert.Equal(t, "10", StringFromInt64(100000000))
}

func TestIntStringToAmount(t *testing.T) {
	v, err := IntStringToAmount("400004000")
	require.NoError(t, err)
	assert.Equal(t, "40.0004", v)

	_, err = IntStringToAmount("not-a-number")
	assert.Error(t, err)

	_, err = IntStringToAmount("9223372036854775808")
	assert.Error(t, err)
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse("xyz") })
}
