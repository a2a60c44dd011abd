package numeric

import (
	"reflect"
	"strings"
)

type Kind int

const (
	KindInvalid Kind = iota
	KindSigned
	KindUnsigned
	KindReal
)

func (k Kind) String() string {
	switch k {
	case KindSigned:
		return "signed"
	case KindUnsigned:
		return "unsigned"
	case KindReal:
		return "real"
	default:
		return "invalid"
	}
}

func (k Kind) IsNumeric() bool {
	return k != KindInvalid
}

func KindOfType(t reflect.Type) Kind {
	if t == nil {
		return KindInvalid
	}

	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return KindSigned
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return KindUnsigned
	case reflect.Float32, reflect.Float64:
		return KindReal
	default:
		return KindInvalid
	}
}

func KindOf(v any) Kind {
	return KindOfType(reflect.TypeOf(v))
}

// TypeKind classifies T itself, so interface type parameters report KindInvalid.
func TypeKind[T any]() Kind {
	var zero T

	return KindOfType(reflect.TypeOf(&zero).Elem())
}

func CheckType[T any]() error {
	if !TypeKind[T]().IsNumeric() {
		return ErrInvalidType
	}

	return nil
}

var typeNameKinds = map[string]Kind{
	"int":     KindSigned,
	"int8":    KindSigned,
	"int16":   KindSigned,
	"int32":   KindSigned,
	"rune":    KindSigned,
	"int64":   KindSigned,
	"uint":    KindUnsigned,
	"uint8":   KindUnsigned,
	"byte":    KindUnsigned,
	"uint16":  KindUnsigned,
	"uint32":  KindUnsigned,
	"uint64":  KindUnsigned,
	"uintptr": KindUnsigned,
	"float32": KindReal,
	"float64": KindReal,
}

// ParseTypeName resolves a builtin Go numeric type name.
func ParseTypeName(name string) (Kind, error) {
	kind, ok := typeNameKinds[strings.TrimSpace(name)]
	if !ok {
		return KindInvalid, ErrInvalidType
	}

	return kind, nil
}
