// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package sd59x18 implements a signed 59.18-decimal fixed-point number.
// A Value is a sign and a 256-bit magnitude, scaled by 10^18. The range is the one of a two's complement
// 256-bit integer: [-57896044618658097711785492504343953926634992332820282019728.792003956564819968,
// 57896044618658097711785492504343953926634992332820282019728.792003956564819967].
package sd59x18

import (
	"math/big"

	"github.com/avdva/fixed256"
	"github.com/avdva/fixed256/internal/mathutil"
	"github.com/avdva/fixed256/internal/strutil"
	"github.com/avdva/fixed256/ud60x18"
	"github.com/holiman/uint256"
	"golang.org/x/exp/constraints"
)

var (
	// JSONMode defines the way all values are marshaled into json, see JSONMode* constants.
	// This variable is not thread-safe, so this should be changed on program start.
	JSONMode = JSONModeString
)

const (
	// JSONModeString produces values as decimal strings, like `"-1234.5678"`.
	JSONModeString = iota
	// JSONModeRaw produces values as scaled integer strings, like `"-1234567800000000000000"`.
	JSONModeRaw
)

// Decimals is the number of fractional decimal digits.
const Decimals = 18

// Sign is the sign of a value. Zero is always Positive.
type Sign uint8

const (
	// Positive is the sign of values >= 0.
	Positive Sign = iota
	// Negative is the sign of values < 0.
	Negative
)

func (s Sign) flip() Sign {
	return s ^ 1
}

var (
	// Zero is 0.
	Zero = Value{}
	// Unit is 1.
	Unit = fromWord(Positive, "1_000000000000000000")
	// HalfUnit is 0.5.
	HalfUnit = fromWord(Positive, "500000000000000000")
	// E is Euler's number.
	E = fromWord(Positive, "2_718281828459045235")
	// Pi is the ratio of a circle's circumference to its diameter.
	Pi = fromWord(Positive, "3_141592653589793238")
	// Log2E is log2(e).
	Log2E = fromWord(Positive, "1_442695040888963407")
	// Log2Ten is log2(10).
	Log2Ten = fromWord(Positive, "3_321928094887362347")
	// Max is the maximum value, 2^255-1 scaled.
	Max = fromWord(Positive, "57896044618658097711785492504343953926634992332820282019728_792003956564819967")
	// Min is the minimum value, -2^255 scaled.
	Min = fromWord(Negative, "57896044618658097711785492504343953926634992332820282019728_792003956564819968")
	// MaxWhole is the maximum whole value.
	MaxWhole = fromWord(Positive, "57896044618658097711785492504343953926634992332820282019728_000000000000000000")
	// MinWhole is the minimum whole value.
	MinWhole = fromWord(Negative, "57896044618658097711785492504343953926634992332820282019728_000000000000000000")

	// maxScaled is Max / Unit, the largest magnitude of an integer that can be converted to a value.
	maxScaled = mathutil.MustParse("57896044618658097711785492504343953926634992332820282019728")
	// doubleUnit is 1e36.
	doubleUnit = mathutil.MustParse("1_000000000000000000_000000000000000000")
)

// Value is a signed 59.18-decimal fixed-point number.
// Values are immutable and can be copied and compared with ==.
type Value struct {
	sign Sign
	mag  uint256.Int
}

func fromWord(sign Sign, s string) Value {
	return newValue(sign, mathutil.MustParse(s))
}

// newValue normalizes the sign of zero. mag must be in range for the sign.
func newValue(sign Sign, mag uint256.Int) Value {
	if mag.IsZero() {
		return Zero
	}
	return Value{sign: sign, mag: mag}
}

// limit returns the largest magnitude a value of the given sign can have.
func limit(sign Sign) *uint256.Int {
	if sign == Negative {
		return &Min.mag
	}
	return &Max.mag
}

// New returns a value from a sign and a scaled magnitude.
// Fails with ConvertOverflow if a positive magnitude exceeds Max,
// and with ConvertUnderflow if a negative one exceeds |Min|.
func New(sign Sign, magnitude uint256.Int) (Value, error) {
	if magnitude.Gt(limit(sign)) {
		if sign == Negative {
			return Zero, fixed256.NewError(fixed256.ConvertUnderflow, magnitude.ToBig())
		}
		return Zero, fixed256.NewError(fixed256.ConvertOverflow, magnitude.ToBig())
	}
	return newValue(sign, magnitude), nil
}

// FromRaw interprets raw as a two's complement scaled representation.
func FromRaw(raw uint256.Int) Value {
	if raw.Sign() >= 0 {
		return newValue(Positive, raw)
	}
	raw.Neg(&raw)
	return newValue(Negative, raw)
}

// FromInt returns a value for a whole number x.
// Fails with FromIntOverflow if x > Max/Unit, or with FromIntUnderflow if x < Min/Unit.
func FromInt(x *big.Int) (Value, error) {
	mag, overflow := uint256.FromBig(new(big.Int).Abs(x))
	if overflow || mag.Gt(&maxScaled) {
		if x.Sign() < 0 {
			return Zero, fixed256.NewError(fixed256.FromIntUnderflow, x)
		}
		return Zero, fixed256.NewError(fixed256.FromIntOverflow, x)
	}
	sign := Positive
	if x.Sign() < 0 {
		sign = Negative
	}
	mag.Mul(mag, &Unit.mag)
	return newValue(sign, *mag), nil
}

// FromNative returns a value for any native signed integer. Never overflows.
func FromNative[T constraints.Signed](x T) Value {
	v, _ := FromInt(big.NewInt(int64(x)))
	return v
}

// FromBig returns a value, which scaled representation is b.
// Fails with ConvertOverflow or ConvertUnderflow if b doesn't fit 256-bit two's complement.
func FromBig(b *big.Int) (Value, error) {
	mag, overflow := uint256.FromBig(new(big.Int).Abs(b))
	if overflow {
		if b.Sign() < 0 {
			return Zero, fixed256.NewError(fixed256.ConvertUnderflow, b)
		}
		return Zero, fixed256.NewError(fixed256.ConvertOverflow, b)
	}
	sign := Positive
	if b.Sign() < 0 {
		sign = Negative
	}
	return New(sign, *mag)
}

// FromBytes32 returns a value from its big-endian two's complement storage representation.
func FromBytes32(b [32]byte) Value {
	var raw uint256.Int
	raw.SetBytes32(b[:])
	return FromRaw(raw)
}

// FromUD converts an unsigned value.
// Fails with ConvertOverflow if v > Max.
func FromUD(v ud60x18.Value) (Value, error) {
	return New(Positive, v.Raw())
}

// FromString parses a decimal string like "-1234.5678" into a value.
// Fails if the number overflows, or has more than 18 fractional digits.
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

// FromRawString parses a scaled integer string like "-1500000000000000000" into a value.
func FromRawString(s string) (Value, error) {
	b, err := strutil.ParseInt(s)
	if err != nil {
		return Zero, err
	}
	return FromBig(b)
}

// Parts returns the sign and the scaled magnitude of the value.
func (v Value) Parts() (Sign, uint256.Int) {
	return v.sign, v.mag
}

// Raw returns the two's complement scaled representation of the value.
func (v Value) Raw() uint256.Int {
	if v.sign == Negative {
		var result uint256.Int
		return *result.Neg(&v.mag)
	}
	return v.mag
}

// Big returns the scaled representation of the value as a big.Int.
func (v Value) Big() *big.Int {
	b := v.mag.ToBig()
	if v.sign == Negative {
		b.Neg(b)
	}
	return b
}

// Bytes32 returns the big-endian two's complement storage representation of the value.
func (v Value) Bytes32() [32]byte {
	raw := v.Raw()
	return raw.Bytes32()
}

// ToInt returns the integer part of the value, truncated toward zero.
func (v Value) ToInt() *big.Int {
	var whole uint256.Int
	whole.Div(&v.mag, &Unit.mag)
	b := whole.ToBig()
	if v.sign == Negative {
		b.Neg(b)
	}
	return b
}

// ToUD converts v to an unsigned value.
// Fails with ConvertUnderflow if v is negative.
func (v Value) ToUD() (ud60x18.Value, error) {
	if v.sign == Negative {
		return ud60x18.Zero, fixed256.NewError(fixed256.ConvertUnderflow, v.Big())
	}
	return ud60x18.FromRaw(v.mag), nil
}

// Sign returns -1 if v < 0, 0 if v = 0, 1 if v > 0.
func (v Value) Sign() int {
	if v.mag.IsZero() {
		return 0
	}
	if v.sign == Negative {
		return -1
	}
	return 1
}

// IsZero returns true, if v == 0.
func (v Value) IsZero() bool {
	return v.mag.IsZero()
}

// IsNegative returns true, if v < 0.
func (v Value) IsNegative() bool {
	return v.sign == Negative
}

// Eq returns true, if both values represent the same number.
func (v Value) Eq(other Value) bool {
	return v == other
}

// Cmp compares two values.
// Returns -1 if a < b, 0 if a == b, 1 if a > b
func (v Value) Cmp(other Value) int {
	s1, s2 := v.Sign(), other.Sign()
	if s1 > s2 {
		return 1
	} else if s1 < s2 {
		return -1
	}
	if s1 < 0 {
		return other.mag.Cmp(&v.mag)
	}
	return v.mag.Cmp(&other.mag)
}

func (v Value) GoString() string {
	return v.String() + " {" + v.Big().String() + "}"
}

// String returns the shortest exact decimal representation of the value.
func (v Value) String() string {
	return strutil.FormatScaled(v.Big(), Decimals)
}

// RawString returns the scaled representation as a decimal integer.
func (v Value) RawString() string {
	return v.Big().String()
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
