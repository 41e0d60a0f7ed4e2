package sd59x18

import (
	"github.com/avdva/fixed256"
	"github.com/avdva/fixed256/internal/mathutil"
	"github.com/avdva/fixed256/ud60x18"
	"github.com/holiman/uint256"
)

var (
	// exp2MinInput is the smallest exponent, which 2^x doesn't truncate to zero.
	exp2MinInput = fromWord(Negative, "59_794705707972522261")
	// expMinInput is the smallest exponent, which e^x doesn't truncate to zero.
	expMinInput = fromWord(Negative, "41_446531673892822322")
	// expMaxInput is exclusive.
	expMaxInput = fromWord(Positive, "133_084258667509499441")
)

// Add returns v+other.
// Fails with AddOverflow if the result exceeds Max, or with SubUnderflow if it is below Min.
func (v Value) Add(other Value) (Value, error) {
	if v.sign == other.sign {
		var sum uint256.Int
		if _, overflow := sum.AddOverflow(&v.mag, &other.mag); overflow || sum.Gt(limit(v.sign)) {
			kind := fixed256.AddOverflow
			if v.sign == Negative {
				kind = fixed256.SubUnderflow
			}
			return Zero, fixed256.NewError(kind, v.Big(), other.Big())
		}
		return newValue(v.sign, sum), nil
	}
	// magnitudes of different signs never overflow when subtracted.
	var diff uint256.Int
	if v.mag.Lt(&other.mag) {
		diff.Sub(&other.mag, &v.mag)
		return newValue(other.sign, diff), nil
	}
	diff.Sub(&v.mag, &other.mag)
	return newValue(v.sign, diff), nil
}

// Sub returns v-other.
// Fails with AddOverflow if the result exceeds Max, or with SubUnderflow if it is below Min.
func (v Value) Sub(other Value) (Value, error) {
	if other.IsZero() {
		return v, nil
	}
	if other.sign == Negative && other.mag.Eq(&Min.mag) {
		// -Min is not representable, but v - Min = v + Max + 1.
		if v.sign == Positive {
			return Zero, fixed256.NewError(fixed256.AddOverflow, v.Big(), other.Big())
		}
		var diff uint256.Int
		diff.Sub(&Min.mag, &v.mag)
		return newValue(Positive, diff), nil
	}
	return v.Add(Value{sign: other.sign.flip(), mag: other.mag})
}

// Neg returns -v.
// Fails with AbsInputTooSmall if v is Min.
func (v Value) Neg() (Value, error) {
	if v == Min {
		return Zero, fixed256.NewError(fixed256.AbsInputTooSmall, v.Big())
	}
	return newValue(v.sign.flip(), v.mag), nil
}

// Abs returns |v|.
// Fails with AbsInputTooSmall if v is Min.
func (v Value) Abs() (Value, error) {
	if v == Min {
		return Zero, fixed256.NewError(fixed256.AbsInputTooSmall, v.Big())
	}
	return newValue(Positive, v.mag), nil
}

// Mul returns v*other, with the magnitude rounded half up to 18 decimals.
// Fails with MulInputTooSmall if any of the operands is Min, and with MulOverflow if the result exceeds Max.
func (v Value) Mul(other Value) (Value, error) {
	if v == Min || other == Min {
		return Zero, fixed256.NewError(fixed256.MulInputTooSmall, v.Big(), other.Big())
	}
	mag, err := fixed256.MulDivFixed(v.mag, other.mag)
	if err != nil {
		return Zero, err
	}
	if mag.Gt(&Max.mag) {
		return Zero, fixed256.NewError(fixed256.MulOverflow, v.Big(), other.Big())
	}
	return newValue(v.sign^other.sign, mag), nil
}

// Div returns v/other, truncated toward zero.
// Fails with DivInputTooSmall if any of the operands is Min, with DivideByZero if other is zero,
// and with DivOverflow if the result exceeds Max.
func (v Value) Div(other Value) (Value, error) {
	if v == Min || other == Min {
		return Zero, fixed256.NewError(fixed256.DivInputTooSmall, v.Big(), other.Big())
	}
	mag, err := fixed256.MulDiv(v.mag, Unit.mag, other.mag)
	if err != nil {
		return Zero, err
	}
	if mag.Gt(&Max.mag) {
		return Zero, fixed256.NewError(fixed256.DivOverflow, v.Big(), other.Big())
	}
	return newValue(v.sign^other.sign, mag), nil
}

// Avg returns the arithmetic average of v and other, truncated toward zero.
func (v Value) Avg(other Value) Value {
	if v.sign == other.sign {
		return newValue(v.sign, fixed256.Avg(v.mag, other.mag))
	}
	half := fixed256.AbsDiff(v.mag, other.mag)
	half.Rsh(&half, 1)
	if v.mag.Lt(&other.mag) {
		return newValue(other.sign, half)
	}
	return newValue(v.sign, half)
}

// Floor returns the greatest whole value less than or equal to v.
// Fails with FloorUnderflow if v < MinWhole.
func (v Value) Floor() (Value, error) {
	var rem uint256.Int
	rem.Mod(&v.mag, &Unit.mag)
	if rem.IsZero() {
		return v, nil
	}
	if v.sign == Positive {
		v.mag.Sub(&v.mag, &rem)
		return v, nil
	}
	if v.mag.Gt(&MinWhole.mag) {
		return Zero, fixed256.NewError(fixed256.FloorUnderflow, v.Big())
	}
	v.mag.Sub(&v.mag, &rem)
	v.mag.Add(&v.mag, &Unit.mag)
	return v, nil
}

// Ceil returns the smallest whole value greater than or equal to v.
// Fails with CeilOverflow if v > MaxWhole.
func (v Value) Ceil() (Value, error) {
	var rem uint256.Int
	rem.Mod(&v.mag, &Unit.mag)
	if rem.IsZero() {
		return v, nil
	}
	if v.sign == Negative {
		v.mag.Sub(&v.mag, &rem)
		return newValue(Negative, v.mag), nil
	}
	if v.mag.Gt(&MaxWhole.mag) {
		return Zero, fixed256.NewError(fixed256.CeilOverflow, v.Big())
	}
	v.mag.Sub(&v.mag, &rem)
	v.mag.Add(&v.mag, &Unit.mag)
	return v, nil
}

// Frac returns the fractional part of v. The result has the sign of v.
func (v Value) Frac() Value {
	var rem uint256.Int
	rem.Mod(&v.mag, &Unit.mag)
	return newValue(v.sign, rem)
}

// Inv returns 1/v, truncated toward zero.
// Fails with DivideByZero if v is zero.
func (v Value) Inv() (Value, error) {
	if v.IsZero() {
		return Zero, fixed256.NewError(fixed256.DivideByZero)
	}
	var mag uint256.Int
	mag.Div(&doubleUnit, &v.mag)
	return newValue(v.sign, mag), nil
}

// Exp2 returns 2^v. For v < -59.794705707972522261 the result is zero.
// Fails with Exp2InputTooBig if v >= 192.
func (v Value) Exp2() (Value, error) {
	if v.sign == Positive {
		result, err := ud60x18.FromRaw(v.mag).Exp2()
		if err != nil {
			return Zero, err
		}
		return newValue(Positive, result.Raw()), nil
	}
	// 2^(-x) = 1/2^x
	if v.Cmp(exp2MinInput) < 0 {
		return Zero, nil
	}
	// 2^59.794705707972522261 is below 1e36, the inverse fits.
	positive, err := ud60x18.FromRaw(v.mag).Exp2()
	if err != nil {
		return Zero, err
	}
	var mag uint256.Int
	denominator := positive.Raw()
	mag.Div(&doubleUnit, &denominator)
	return newValue(Positive, mag), nil
}

// Exp returns e^v, calculated as 2^(v*log2(e)). For v < -41.446531673892822322 the result is zero.
// Fails with ExpInputTooBig if v >= 133.084258667509499441.
func (v Value) Exp() (Value, error) {
	if v.Cmp(expMinInput) < 0 {
		return Zero, nil
	}
	if v.Cmp(expMaxInput) >= 0 {
		return Zero, fixed256.NewError(fixed256.ExpInputTooBig, v.Big())
	}
	// |v| * log2(e) fits 256 bits, so the scaled product is computed on magnitudes.
	var mag uint256.Int
	mag.Mul(&v.mag, &Log2E.mag)
	if v.sign == Positive {
		mag.Add(&mag, &HalfUnit.mag)
	} else {
		mag.Sub(&mag, &HalfUnit.mag)
	}
	mag.Div(&mag, &Unit.mag)
	return newValue(v.sign, mag).Exp2()
}

// Log2 returns the binary logarithm of v using the iterative approximation algorithm.
// Fails with LogInputTooSmall if v <= 0.
func (v Value) Log2() (Value, error) {
	if v.sign == Negative || v.IsZero() {
		return Zero, fixed256.NewError(fixed256.LogInputTooSmall, v.Big())
	}
	// log2(x) = -log2(1/x)
	sign, x := Positive, v.mag
	if x.Lt(&Unit.mag) {
		sign = Negative
		x.Div(&doubleUnit, &x)
	}
	result, err := ud60x18.FromRaw(x).Log2()
	if err != nil {
		return Zero, err
	}
	return newValue(sign, result.Raw()), nil
}

// Ln returns the natural logarithm of v, calculated as log2(v)/log2(e).
// Fails with LogInputTooSmall if v <= 0.
func (v Value) Ln() (Value, error) {
	result, err := v.Log2()
	if err != nil {
		return Zero, err
	}
	return result.scaleDiv(&Log2E.mag), nil
}

// Log10 returns the common logarithm of v.
// Exact powers of ten give exact results, other values are calculated as log2(v)/log2(10).
// Fails with LogInputTooSmall if v <= 0.
func (v Value) Log10() (Value, error) {
	if v.sign == Negative || v.IsZero() {
		return Zero, fixed256.NewError(fixed256.LogInputTooSmall, v.Big())
	}
	if n, ok := mathutil.Log10Exact(&v.mag); ok {
		sign, whole := Positive, n-Decimals
		if whole < 0 {
			sign, whole = Negative, -whole
		}
		var mag uint256.Int
		mag.Mul(uint256.NewInt(uint64(whole)), &Unit.mag)
		return newValue(sign, mag), nil
	}
	result, err := v.Log2()
	if err != nil {
		return Zero, err
	}
	return result.scaleDiv(&Log2Ten.mag), nil
}

// scaleDiv returns v*Unit/d, truncated toward zero. |v| must be small enough for the product to fit 256 bits.
func (v Value) scaleDiv(d *uint256.Int) Value {
	var mag uint256.Int
	mag.Mul(&v.mag, &Unit.mag)
	mag.Div(&mag, d)
	return newValue(v.sign, mag)
}

// Pow returns v^y, calculated as 2^(log2(v)*y).
// 0^0 is 1, and 0^y is 0.
// Fails with LogInputTooSmall if v < 0.
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
// The result is negative for a negative v and odd y.
// Fails with PowuOverflow if the magnitude of the result exceeds Max.
func (v Value) Powu(y uint64) (Value, error) {
	mag, err := ud60x18.FromRaw(v.mag).Powu(y)
	if err != nil {
		return Zero, err
	}
	raw := mag.Raw()
	if raw.Gt(&Max.mag) {
		return Zero, fixed256.NewError(fixed256.PowuOverflow, v.Big(), uint256.NewInt(y).ToBig())
	}
	sign := Positive
	if v.sign == Negative && y&1 == 1 {
		sign = Negative
	}
	return newValue(sign, raw), nil
}

// Gm returns the geometric mean sqrt(v*other), rounded down.
// Fails with GmOverflow if v*other doesn't fit the range of values,
// and with GmNegativeProduct if the product is negative.
func (v Value) Gm(other Value) (Value, error) {
	if v.IsZero() || other.IsZero() {
		return Zero, nil
	}
	sign := v.sign ^ other.sign
	var product uint256.Int
	if _, overflow := product.MulOverflow(&v.mag, &other.mag); overflow || product.Gt(limit(sign)) {
		return Zero, fixed256.NewError(fixed256.GmOverflow, v.Big(), other.Big())
	}
	if sign == Negative {
		return Zero, fixed256.NewError(fixed256.GmNegativeProduct, v.Big(), other.Big())
	}
	return newValue(Positive, fixed256.Sqrt(product)), nil
}

// Sqrt returns the square root of v, rounded down.
// Fails with SqrtNegativeInput if v < 0, and with SqrtOverflow if v > Max/Unit.
func (v Value) Sqrt() (Value, error) {
	if v.sign == Negative {
		return Zero, fixed256.NewError(fixed256.SqrtNegativeInput, v.Big())
	}
	if v.mag.Gt(&maxScaled) {
		return Zero, fixed256.NewError(fixed256.SqrtOverflow, v.Big())
	}
	var scaled uint256.Int
	scaled.Mul(&v.mag, &Unit.mag)
	return newValue(Positive, fixed256.Sqrt(scaled)), nil
}
