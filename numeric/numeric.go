package numeric

import (
	"reflect"

	"github.com/spf13/cast"
)

type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type Integer interface {
	Signed | Unsigned
}

type Real interface {
	~float32 | ~float64
}

type Number interface {
	Integer | Real
}

func Min[T Number](a, b T) T {
	if a < b {
		return a
	}

	return b
}

func Max[T Number](a, b T) T {
	if a > b {
		return a
	}

	return b
}

// Clip bounds n by the ordered pair of lower and upper, so reversed bounds
// clip the same way as forward ones.
func Clip[T Number](n, lower, upper T) T {
	if lower > upper {
		lower, upper = upper, lower
	}

	return Max(lower, Min(n, upper))
}

func IsIntegral[T Number]() bool {
	half := T(1)
	half /= 2

	return half == 0
}

// Narrow converts f to T, saturating at the limits of T. Integral types
// round half to even.
func Narrow[T Number](f float64) T {
	return RangeOf[T]().Narrow(f)
}

// ToSigned accepts only signed integers.
func ToSigned(v any) (int64, error) {
	switch KindOf(v) {
	case KindSigned:
	case KindInvalid:
		return 0, ErrInvalidType
	default:
		return 0, ErrInvalidSignedness
	}

	if n, err := cast.ToInt64E(v); err == nil {
		return n, nil
	}

	return reflect.ValueOf(v).Int(), nil
}

func ToFloat(v any) (float64, error) {
	kind := KindOf(v)
	if !kind.IsNumeric() {
		return 0, ErrInvalidType
	}

	if f, err := cast.ToFloat64E(v); err == nil {
		return f, nil
	}

	rv := reflect.ValueOf(v)

	switch kind {
	case KindSigned:
		return float64(rv.Int()), nil
	case KindUnsigned:
		return float64(rv.Uint()), nil
	default:
		return rv.Float(), nil
	}
}
