package numeric

import (
	"errors"
	"math"
	"testing"

	"github.com/sgostarter/i/commerr"
	"github.com/stretchr/testify/assert"
)

type frames int32

type opacity float32

func TestTypeKind(t *testing.T) {
	assert.Equal(t, KindSigned, TypeKind[int]())
	assert.Equal(t, KindSigned, TypeKind[frames]())
	assert.Equal(t, KindUnsigned, TypeKind[uint16]())
	assert.Equal(t, KindReal, TypeKind[opacity]())
	assert.Equal(t, KindInvalid, TypeKind[string]())
	assert.Equal(t, KindInvalid, TypeKind[bool]())
	assert.Equal(t, KindInvalid, TypeKind[any]())
}

func TestCheckType(t *testing.T) {
	assert.Nil(t, CheckType[float64]())
	assert.Nil(t, CheckType[uint8]())

	err := CheckType[string]()
	assert.True(t, errors.Is(err, ErrInvalidType))
	assert.True(t, errors.Is(err, commerr.ErrInvalidArgument))
}

func TestParseTypeName(t *testing.T) {
	kind, err := ParseTypeName("int64")
	assert.Nil(t, err)
	assert.Equal(t, KindSigned, kind)

	kind, err = ParseTypeName(" byte ")
	assert.Nil(t, err)
	assert.Equal(t, KindUnsigned, kind)

	_, err = ParseTypeName("string")
	assert.True(t, errors.Is(err, ErrInvalidType))
}

func TestToSigned(t *testing.T) {
	n, err := ToSigned(50)
	assert.Nil(t, err)
	assert.EqualValues(t, 50, n)

	n, err = ToSigned(frames(-7))
	assert.Nil(t, err)
	assert.EqualValues(t, -7, n)

	_, err = ToSigned(uint(50))
	assert.True(t, errors.Is(err, ErrInvalidSignedness))

	_, err = ToSigned(50.0)
	assert.True(t, errors.Is(err, ErrInvalidSignedness))

	_, err = ToSigned("50")
	assert.True(t, errors.Is(err, ErrInvalidType))

	_, err = ToSigned(nil)
	assert.True(t, errors.Is(err, ErrInvalidType))
}

func TestToFloat(t *testing.T) {
	f, err := ToFloat(uint8(200))
	assert.Nil(t, err)
	assert.EqualValues(t, 200, f)

	f, err = ToFloat(opacity(0.5))
	assert.Nil(t, err)
	assert.EqualValues(t, 0.5, f)

	_, err = ToFloat("0.5")
	assert.True(t, errors.Is(err, ErrInvalidType))
}

func TestClip(t *testing.T) {
	assert.EqualValues(t, 5, Clip(5, 0, 10))
	assert.EqualValues(t, 0, Clip(-3, 0, 10))
	assert.EqualValues(t, 10, Clip(13, 0, 10))

	assert.EqualValues(t, 5, Clip(5, 10, 0))
	assert.EqualValues(t, 0, Clip(-3, 10, 0))
	assert.EqualValues(t, 10, Clip(13, 10, 0))

	assert.EqualValues(t, 1.0, Clip(5.0, 0, 1))
	assert.EqualValues(t, uint(3), Clip(uint(1), uint(7), uint(3)))
}

func TestNarrow(t *testing.T) {
	assert.True(t, IsIntegral[int]())
	assert.True(t, IsIntegral[uint8]())
	assert.False(t, IsIntegral[float32]())

	assert.EqualValues(t, 50, Narrow[int](49.6))
	assert.EqualValues(t, 2, Narrow[int](2.5))
	assert.EqualValues(t, 4, Narrow[int](3.5))
	assert.EqualValues(t, -2, Narrow[int](-2.5))
	assert.EqualValues(t, -3, Narrow[int64](-2.6))
	assert.EqualValues(t, 255, Narrow[uint8](254.7))
	assert.EqualValues(t, float32(0.25), Narrow[float32](0.25))
	assert.EqualValues(t, 0.3, Narrow[float64](0.3))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "signed", KindSigned.String())
	assert.Equal(t, "invalid", Kind(42).String())
	assert.False(t, KindInvalid.IsNumeric())
}

func TestNarrowSaturates(t *testing.T) {
	assert.EqualValues(t, int64(math.MaxInt64), Narrow[int64](float64(math.MaxInt64)))
	assert.EqualValues(t, int64(math.MinInt64), Narrow[int64](float64(math.MinInt64)))
	assert.EqualValues(t, uint64(math.MaxUint64), Narrow[uint64](float64(math.MaxUint64)))
	assert.EqualValues(t, 0, Narrow[uint64](-1))
	assert.EqualValues(t, 255, Narrow[uint8](300))
	assert.EqualValues(t, 0, Narrow[uint8](-5))
	assert.EqualValues(t, -128, Narrow[int8](-1000))
	assert.EqualValues(t, math.MaxInt32, Narrow[frames](1e12))
	assert.EqualValues(t, 0, Narrow[int](math.NaN()))
	assert.EqualValues(t, float32(math.MaxFloat32), Narrow[float32](1e300))
}

func TestRangeOf(t *testing.T) {
	r8 := RangeOf[int8]()
	assert.EqualValues(t, -128, r8.Min())
	assert.EqualValues(t, 127, r8.Max())
	assert.True(t, r8.Contains(127.4))
	assert.False(t, r8.Contains(127.5))
	assert.True(t, r8.Contains(-128))
	assert.False(t, r8.Contains(-129))

	ru := RangeOf[uint16]()
	assert.EqualValues(t, 0, ru.Min())
	assert.EqualValues(t, math.MaxUint16, ru.Max())
	assert.False(t, ru.Contains(-1))
	assert.False(t, ru.Contains(math.NaN()))

	rf := RangeOf[opacity]()
	assert.True(t, rf.Contains(1e38))
	assert.False(t, rf.Contains(1e39))
}

func TestConvert(t *testing.T) {
	v, err := Convert[uint8](200)
	assert.Nil(t, err)
	assert.EqualValues(t, 200, v)

	_, err = Convert[uint8](300)
	assert.True(t, errors.Is(err, ErrOutOfRange))
	assert.True(t, errors.Is(err, commerr.ErrOutOfRange))

	_, err = Convert[uint8](-5)
	assert.True(t, errors.Is(err, ErrOutOfRange))

	f, err := Convert[float64](-5)
	assert.Nil(t, err)
	assert.EqualValues(t, -5, f)

	_, err = Convert[int]("5")
	assert.True(t, errors.Is(err, ErrInvalidType))
}
