// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package ud60x18 implements an unsigned 60.18-decimal fixed-point number.
// A Value is a 256-bit integer, scaled by 10^18, so it has 18 digits of fractional precision,
// and can represent numbers in [0, 115792089237316195423570985008687907853269984665640564039457.584007913129639935].
package ud60x18

import (
	"math/big"

	"github.com/avdva/fixed256"
	"github.com/avdva/fixed256/internal/mathutil"
	"github.com/avdva/fixed256/internal/strutil"
	"github.com/holiman/uint256"
	"golang.org/x/exp/constraints"
)

var (
	// JSONMode defines the way all values are marshaled into json, see JSONMode* constants.
	// This variable is not thread-safe, so this should be changed on program start.
	JSONMode = JSONModeString
)

const (
	// JSONModeString produces values as decimal strings, like `"1234.5678"`.
	JSONModeString = iota
	// JSONModeRaw produces values as scaled integer strings, like `"1234567800000000000000"`.
	JSONModeRaw
)

// Decimals is the number of fractional decimal digits.
const Decimals = 18

var (
	// Zero is 0.
	Zero = Value{}
	// Unit is 1.
	Unit = fromWord("1_000000000000000000")
	// HalfUnit is 0.5.
	HalfUnit = fromWord("500000000000000000")
	// E is Euler's number.
	E = fromWord("2_718281828459045235")
	// Pi is the ratio of a circle's circumference to its diameter.
	Pi = fromWord("3_141592653589793238")
	// Log2E is log2(e).
	Log2E = fromWord("1_442695040888963407")
	// Log2Ten is log2(10).
	Log2Ten = fromWord("3_321928094887362347")
	// Max is the maximum value.
	Max = Value{v: mathutil.MaxWord}
	// MaxWhole is the maximum whole value.
	MaxWhole = fromWord("115792089237316195423570985008687907853269984665640564039457_000000000000000000")

	// maxScaled is Max / Unit, the largest integer that can be converted to a value.
	maxScaled = mathutil.MustParse("115792089237316195423570985008687907853269984665640564039457")
	// doubleUnit is 1e36.
	doubleUnit = mathutil.MustParse("1_000000000000000000_000000000000000000")
)

// Value is an unsigned 60.18-decimal fixed-point number.
// Values are immutable and can be copied and compared with ==.
type Value struct {
	v uint256.Int
}

func fromWord(s string) Value {
	return Value{v: mathutil.MustParse(s)}
}

// FromRaw returns a value, which scaled representation is raw, so that the value is raw/10^18.
func FromRaw(raw uint256.Int) Value {
	return Value{v: raw}
}

// FromUint returns a value for a whole number x.
// Fails with FromUintOverflow if x > Max/Unit.
func FromUint(x uint256.Int) (Value, error) {
	if x.Gt(&maxScaled) {
		return Zero, fixed256.NewError(fixed256.FromUintOverflow, x.ToBig())
	}
	var result Value
	result.v.Mul(&x, &Unit.v)
	return result, nil
}

// FromNative returns a value for any native unsigned integer. Never overflows.
func FromNative[T constraints.Unsigned](x T) Value {
	v, _ := FromUint(*uint256.NewInt(uint64(x)))
	return v
}

// FromBig returns a value, which scaled representation is b.
// Fails with ConvertUnderflow if b is negative, or with ConvertOverflow if it doesn't fit 256 bits.
func FromBig(b *big.Int) (Value, error) {
	if b.Sign() < 0 {
		return Zero, fixed256.NewError(fixed256.ConvertUnderflow, b)
	}
	v, overflow := uint256.FromBig(b)
	if overflow {
		return Zero, fixed256.NewError(fixed256.ConvertOverflow, b)
	}
	return Value{v: *v}, nil
}

// FromBytes32 returns a value from its big-endian storage representation.
func FromBytes32(b [32]byte) Value {
	var result Value
	result.v.SetBytes32(b[:])
	return result
}

// FromString parses a decimal string like "1234.5678" into a value.
// Fails if the number is negative, overflows, or has more than 18 fractional digits.
func FromString(s string) (Value, error) {
	b, err := strutil.ParseScaled(s, Decimals)
	if err != nil {
		return Zero, err
	}
	return FromBig(b)
}

// MustFromString parses a decimal string into a value. It panics on error.
func MustFromString(s string) Value {
	v, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// FromRawString parses a scaled integer string like "1500000000000000000" into a value.
func FromRawString(s string) (Value, error) {
	b, err := strutil.ParseInt(s)
	if err != nil {
		return Zero, err
	}
	return FromBig(b)
}

// Raw returns the scaled representation of the value.
func (v Value) Raw() uint256.Int {
	return v.v
}

// Big returns the scaled representation of the value as a big.Int.
func (v Value) Big() *big.Int {
	return v.v.ToBig()
}

// Bytes32 returns the big-endian storage representation of the value.
func (v Value) Bytes32() [32]byte {
	return v.v.Bytes32()
}

// ToUint returns the integer part of the value.
func (v Value) ToUint() uint256.Int {
	var result uint256.Int
	return *result.Div(&v.v, &Unit.v)
}

// IsZero returns true, if v == 0.
func (v Value) IsZero() bool {
	return v.v.IsZero()
}

// Eq returns true, if both values represent the same number.
func (v Value) Eq(other Value) bool {
	return v.v.Eq(&other.v)
}

// Cmp compares two values.
// Returns -1 if a < b, 0 if a == b, 1 if a > b
func (v Value) Cmp(other Value) int {
	return v.v.Cmp(&other.v)
}

func (v Value) GoString() string {
	return v.String() + " {" + v.v.ToBig().String() + "}"
}

// String returns the shortest exact decimal representation of the value.
func (v Value) String() string {
	return strutil.FormatScaled(v.v.ToBig(), Decimals)
}

// RawString returns the scaled representation as a decimal integer.
func (v Value) RawString() string {
	return v.v.ToBig().String()
}

// MarshalJSON marshals value according to current JSONMode.
// See JSONMode and JSONMode* constants.
func (v Value) MarshalJSON() ([]byte, error) {
	if JSONMode == JSONModeRaw {
		return strutil.Quote(v.RawString()), nil
	}
	return strutil.Quote(v.String()), nil
}

// UnmarshalJSON unmarshals a string or a number according to current JSONMode.
func (v *Value) UnmarshalJSON(data []byte) error {
	parse := FromString
	if JSONMode == JSONModeRaw {
		parse = FromRawString
	}
	value, err := parse(string(data))
	if err != nil {
		return err
	}
	*v = value
	return nil
}

// MarshalText returns the decimal representation of the value.
func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText parses a decimal representation of the value.
func (v *Value) UnmarshalText(data []byte) error {
	value, err := FromString(string(data))
	if err != nil {
		return err
	}
	*v = value
	return nil
}
