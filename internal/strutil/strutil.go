package strutil

import (
	"math/big"
	"strings"
	"unicode"

	"github.com/avdva/fixed256"
	"github.com/shopspring/decimal"
)

// Prepare cleans the string from surrounding " symbols and spaces.
func Prepare(s string) (string, error) {
	s = strings.TrimFunc(s, unicode.IsSpace)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	if len(s) == 0 {
		return "", fixed256.Error.New("empty input")
	}
	return s, nil
}

// ParseScaled parses a decimal string and returns it multiplied by 10^decimals.
// Fails if the result is not an integer.
func ParseScaled(s string, decimals int32) (*big.Int, error) {
	s, err := Prepare(s)
	if err != nil {
		return nil, err
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fixed256.Error.Wrap(err)
	}
	scaled := d.Shift(decimals)
	if !scaled.Equal(scaled.Truncate(0)) {
		return nil, fixed256.Error.New("%q has more than %d fractional digits", s, decimals)
	}
	return scaled.BigInt(), nil
}

// ParseInt parses a decimal integer string.
func ParseInt(s string) (*big.Int, error) {
	s, err := Prepare(s)
	if err != nil {
		return nil, err
	}
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fixed256.Error.New("invalid integer %q", s)
	}
	return b, nil
}

// FormatScaled returns the shortest exact decimal representation of b/10^decimals.
func FormatScaled(b *big.Int, decimals int32) string {
	return decimal.NewFromBigInt(b, -decimals).String()
}

// Quote wraps s into ".
func Quote(s string) []byte {
	result := make([]byte, 0, len(s)+2)
	result = append(result, '"')
	result = append(result, s...)
	return append(result, '"')
}
