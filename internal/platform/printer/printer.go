// Package printer renders lists for humans: [10, 20], [1.50], ["a"], [0xc000012345].
package printer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"tlist/internal/platform/datatype"
	"tlist/internal/platform/list"
)

// Format renders l read-only. Floats use two decimals, text is quoted and
// references print as their address.
func Format[T any](l *list.List[T]) string {
	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	_ = l.ForEach(func(v *T) {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(formatValue(l.Kind(), v))
	})
	sb.WriteByte(']')
	return sb.String()
}

func formatValue[T any](kind datatype.Kind, v *T) string {
	if kind == datatype.KindReference {
		if v == nil {
			return "nil"
		}
		return fmt.Sprintf("%p", v)
	}
	switch val := any(v).(type) {
	case *int64:
		return strconv.FormatInt(*val, 10)
	case *float32:
		return strconv.FormatFloat(float64(*val), 'f', 2, 32)
	case *float64:
		return strconv.FormatFloat(*val, 'f', 2, 64)
	case *string:
		return strconv.Quote(*val)
	default:
		return fmt.Sprintf("%v", *v)
	}
}

// Fprint writes Format(l) and a newline to w.
func Fprint[T any](w io.Writer, l *list.List[T]) error {
	if _, err := fmt.Fprintln(w, Format(l)); err != nil {
		return fmt.Errorf("printer.Fprint: %w", err)
	}
	return nil
}
