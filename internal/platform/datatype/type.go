package datatype

import "fmt"

// Kind is the element kind a list is created with. It never changes for the
// lifetime of the list.
type Kind byte

const (
	KindReference Kind = iota
	KindInt
	KindText
	KindFloat32
	KindFloat64
)

const (
	LenInt64   = 8
	LenFloat32 = 4
	LenFloat64 = 8
)

// Number covers the fixed-width kinds.
type Number interface {
	~int64 | ~float32 | ~float64
}

func (k Kind) Valid() bool {
	return k <= KindFloat64
}

// IsValueKind reports whether the list copies and owns elements of this kind.
func (k Kind) IsValueKind() bool {
	return k.Valid() && k != KindReference
}

// Width is the storage width in bytes. Text and Reference report 0.
func (k Kind) Width() int {
	switch k {
	case KindInt:
		return LenInt64
	case KindFloat32:
		return LenFloat32
	case KindFloat64:
		return LenFloat64
	default:
		return 0
	}
}

func (k Kind) String() string {
	switch k {
	case KindReference:
		return "reference"
	case KindInt:
		return "int"
	case KindText:
		return "text"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	default:
		return fmt.Sprintf("kind(%d)", byte(k))
	}
}

// ParseKind maps a kind name as printed by String back to its Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "reference", "ref":
		return KindReference, nil
	case "int":
		return KindInt, nil
	case "text", "string":
		return KindText, nil
	case "float32", "float":
		return KindFloat32, nil
	case "float64", "double":
		return KindFloat64, nil
	}
	return 0, fmt.Errorf("datatype.ParseKind: unknown kind %q", s)
}
