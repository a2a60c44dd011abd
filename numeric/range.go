package numeric

import (
	"math"
	"reflect"
)

// Range holds the representable limits of T in float64 terms.
type Range[T Number] struct {
	integral bool

	// lo is inclusive, hi is exclusive for integral T and inclusive for real T.
	lo float64
	hi float64

	min T
	max T
}

func RangeOf[T Number]() Range[T] {
	var r Range[T]

	t := reflect.TypeOf(&r.min).Elem()

	switch KindOfType(t) {
	case KindSigned:
		shift := 64 - t.Bits()
		reflect.ValueOf(&r.min).Elem().SetInt(math.MinInt64 >> shift)
		reflect.ValueOf(&r.max).Elem().SetInt(math.MaxInt64 >> shift)

		r.integral = true
		r.lo = -math.Ldexp(1, t.Bits()-1)
		r.hi = math.Ldexp(1, t.Bits()-1)
	case KindUnsigned:
		reflect.ValueOf(&r.max).Elem().SetUint(math.MaxUint64 >> (64 - t.Bits()))

		r.integral = true
		r.hi = math.Ldexp(1, t.Bits())
	default:
		if t.Bits() == 32 {
			r.lo, r.hi = -math.MaxFloat32, math.MaxFloat32
		} else {
			r.lo, r.hi = -math.MaxFloat64, math.MaxFloat64
		}

		r.min, r.max = T(r.lo), T(r.hi)
	}

	return r
}

func (r Range[T]) Min() T {
	return r.min
}

func (r Range[T]) Max() T {
	return r.max
}

// Contains reports whether f, rounded the way Narrow rounds, fits in T.
func (r Range[T]) Contains(f float64) bool {
	if math.IsNaN(f) {
		return false
	}

	if r.integral {
		f = math.RoundToEven(f)

		return f >= r.lo && f < r.hi
	}

	return f >= r.lo && f <= r.hi
}

// Narrow converts f to T, saturating at the limits of T. Integral types
// round half to even; NaN narrows to zero.
func (r Range[T]) Narrow(f float64) T {
	if math.IsNaN(f) {
		return 0
	}

	if r.integral {
		f = math.RoundToEven(f)

		if f >= r.hi {
			return r.max
		}
	} else if f > r.hi {
		return r.max
	}

	if f < r.lo {
		return r.min
	}

	return T(f)
}

// Convert turns a loosely typed numeric value into T, refusing values T
// cannot hold.
func Convert[T Number](v any) (T, error) {
	f, err := ToFloat(v)
	if err != nil {
		return 0, err
	}

	r := RangeOf[T]()
	if !r.Contains(f) {
		return 0, ErrOutOfRange
	}

	return r.Narrow(f), nil
}
