package ud60x18

import (
	"github.com/avdva/fixed256"
	"github.com/avdva/fixed256/internal/mathutil"
	"github.com/holiman/uint256"
)

var (
	// exp2MaxInput is exclusive: 2^192 doesn't fit the 192.64-bit format used by fixed256.Exp2.
	exp2MaxInput = fromWord("192_000000000000000000")
	// expMaxInput is exclusive: log2(e) * expMaxInput is just above exp2MaxInput.
	expMaxInput = fromWord("133_084258667509499441")
	twoUnit     = fromWord("2_000000000000000000")
)

// Add returns v+other.
// Fails with AddOverflow if the result exceeds Max.
func (v Value) Add(other Value) (Value, error) {
	result, err := fixed256.CheckedAdd(v.v, other.v)
	return Value{v: result}, err
}

// Sub returns v-other.
// Fails with SubUnderflow if other > v.
func (v Value) Sub(other Value) (Value, error) {
	result, err := fixed256.CheckedSub(v.v, other.v)
	return Value{v: result}, err
}

// Mul returns v*other, rounded half up to 18 decimals.
func (v Value) Mul(other Value) (Value, error) {
	result, err := fixed256.MulDivFixed(v.v, other.v)
	return Value{v: result}, err
}

// Div returns v/other, rounded down.
// Fails with DivideByZero if other is zero.
func (v Value) Div(other Value) (Value, error) {
	result, err := fixed256.MulDiv(v.v, Unit.v, other.v)
	return Value{v: result}, err
}

// MulRatio returns v * (y/z).
func (v Value) MulRatio(y, z Value) (Value, error) {
	ratio, err := y.Div(z)
	if err != nil {
		return Zero, err
	}
	return v.Mul(ratio)
}

// Avg returns the arithmetic average of v and other, rounded down.
func (v Value) Avg(other Value) Value {
	return Value{v: fixed256.Avg(v.v, other.v)}
}

// Floor returns the greatest whole value less than or equal to v.
func (v Value) Floor() Value {
	var rem Value
	rem.v.Mod(&v.v, &Unit.v)
	v.v.Sub(&v.v, &rem.v)
	return v
}

// Ceil returns the smallest whole value greater than or equal to v.
// Fails with CeilOverflow if v > MaxWhole.
func (v Value) Ceil() (Value, error) {
	if v.v.Gt(&MaxWhole.v) {
		return Zero, fixed256.NewError(fixed256.CeilOverflow, v.Big())
	}
	var rem uint256.Int
	rem.Mod(&v.v, &Unit.v)
	if rem.IsZero() {
		return v, nil
	}
	v.v.Sub(&v.v, &rem)
	v.v.Add(&v.v, &Unit.v)
	return v, nil
}

// Frac returns the fractional part of v.
func (v Value) Frac() Value {
	v.v.Mod(&v.v, &Unit.v)
	return v
}

// Inv returns 1/v, rounded down.
// Fails with DivideByZero if v is zero.
func (v Value) Inv() (Value, error) {
	if v.IsZero() {
		return Zero, fixed256.NewError(fixed256.DivideByZero)
	}
	var result Value
	result.v.Div(&doubleUnit, &v.v)
	return result, nil
}

// Exp2 returns 2^v.
// Fails with Exp2InputTooBig if v >= 192.
func (v Value) Exp2() (Value, error) {
	if !v.v.Lt(&exp2MaxInput.v) {
		return Zero, fixed256.NewError(fixed256.Exp2InputTooBig, v.Big())
	}
	// convert v to the 192.64-bit fixed-point format.
	var x192x64 uint256.Int
	x192x64.Lsh(&v.v, 64)
	x192x64.Div(&x192x64, &Unit.v)
	return Value{v: fixed256.Exp2(x192x64)}, nil
}

// Exp returns e^v, calculated as 2^(v*log2(e)).
// Fails with ExpInputTooBig if v >= 133.084258667509499441.
func (v Value) Exp() (Value, error) {
	if !v.v.Lt(&expMaxInput.v) {
		return Zero, fixed256.NewError(fixed256.ExpInputTooBig, v.Big())
	}
	var exponent Value
	exponent.v.Mul(&v.v, &Log2E.v)
	exponent.v.Add(&exponent.v, &HalfUnit.v)
	exponent.v.Div(&exponent.v, &Unit.v)
	return exponent.Exp2()
}

// Log2 returns the binary logarithm of v using the iterative approximation algorithm.
// Fails with LogInputTooSmall if v < 1.
func (v Value) Log2() (Value, error) {
	if v.v.Lt(&Unit.v) {
		return Zero, fixed256.NewError(fixed256.LogInputTooSmall, v.Big())
	}
	return Value{v: log2(v.v)}, nil
}

// log2 requires x >= Unit.
func log2(x uint256.Int) uint256.Int {
	var result, y, whole uint256.Int
	// the integer part is the msb of x/Unit, and y = x * 2^(-n) is in [1, 2).
	whole.Div(&x, &Unit.v)
	n := fixed256.MostSignificantBit(whole)
	result.Mul(uint256.NewInt(uint64(n)), &Unit.v)
	y.Rsh(&x, n)
	if y.Eq(&Unit.v) {
		return result
	}
	// the fractional part: add delta each time y^2 gets into [2, 4).
	for delta := HalfUnit.v; !delta.IsZero(); delta.Rsh(&delta, 1) {
		y.Mul(&y, &y)
		y.Div(&y, &Unit.v)
		if !y.Lt(&twoUnit.v) {
			result.Add(&result, &delta)
			y.Rsh(&y, 1)
		}
	}
	return result
}

// Ln returns the natural logarithm of v, calculated as log2(v)/log2(e).
// Fails with LogInputTooSmall if v < 1.
func (v Value) Ln() (Value, error) {
	result, err := v.Log2()
	if err != nil {
		return Zero, err
	}
	result.v.Mul(&result.v, &Unit.v)
	result.v.Div(&result.v, &Log2E.v)
	return result, nil
}

// Log10 returns the common logarithm of v.
// Exact powers of ten give exact results, other values are calculated as log2(v)/log2(10).
// Fails with LogInputTooSmall if v < 1.
func (v Value) Log10() (Value, error) {
	if v.v.Lt(&Unit.v) {
		return Zero, fixed256.NewError(fixed256.LogInputTooSmall, v.Big())
	}
	if n, ok := mathutil.Log10Exact(&v.v); ok {
		var result Value
		result.v.Mul(uint256.NewInt(uint64(n-Decimals)), &Unit.v)
		return result, nil
	}
	result := Value{v: log2(v.v)}
	result.v.Mul(&result.v, &Unit.v)
	result.v.Div(&result.v, &Log2Ten.v)
	return result, nil
}

// Pow returns v^y, calculated as 2^(log2(v)*y).
// 0^0 is 1, and 0^y is 0.
func (v Value) Pow(y Value) (Value, error) {
	if v.IsZero() {
		if y.IsZero() {
			return Unit, nil
		}
		return Zero, nil
	}
	l, err := v.Log2()
	if err != nil {
		return Zero, err
	}
	exponent, err := l.Mul(y)
	if err != nil {
		return Zero, err
	}
	return exponent.Exp2()
}

// Powu returns v^y for an integer y using exponentiation by squaring.
// Every multiplication is rounded half up. 0^0 is 1.
func (v Value) Powu(y uint64) (Value, error) {
	result := Unit
	if y&1 == 1 {
		result = v
	}
	var err error
	for y >>= 1; y > 0; y >>= 1 {
		if v, err = v.Mul(v); err != nil {
			return Zero, err
		}
		if y&1 == 1 {
			if result, err = result.Mul(v); err != nil {
				return Zero, err
			}
		}
	}
	return result, nil
}

// Gm returns the geometric mean sqrt(v*other), rounded down.
// Fails with GmOverflow if v*other doesn't fit 256 bits.
func (v Value) Gm(other Value) (Value, error) {
	if v.IsZero() {
		return Zero, nil
	}
	var product uint256.Int
	if _, overflow := product.MulOverflow(&v.v, &other.v); overflow {
		return Zero, fixed256.NewError(fixed256.GmOverflow, v.Big(), other.Big())
	}
	return Value{v: fixed256.Sqrt(product)}, nil
}

// Sqrt returns the square root of v, rounded down.
// Fails with SqrtOverflow if v > Max/Unit.
func (v Value) Sqrt() (Value, error) {
	if v.v.Gt(&maxScaled) {
		return Zero, fixed256.NewError(fixed256.SqrtOverflow, v.Big())
	}
	var scaled uint256.Int
	scaled.Mul(&v.v, &Unit.v)
	return Value{v: fixed256.Sqrt(scaled)}, nil
}
