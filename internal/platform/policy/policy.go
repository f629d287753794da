// Package policy decides, per element kind, whether a list copies a value into
// storage it owns or keeps the caller's address, and what happens to that
// storage when the element leaves the list.
package policy

import (
	"fmt"
	"strings"

	"tlist/internal/platform/datatype"
	errors "tlist/internal/platform/error"
)

// Policy is the materialize/release rule for one element kind. The set of
// implementations is closed.
type Policy[T any] interface {
	Kind() datatype.Kind
	// Width is the storage width in bytes, 0 for Text and Reference.
	Width() int
	// Owns reports whether the list owns materialized blocks.
	Owns() bool
	// Materialize returns the block a new node will hold for src.
	Materialize(src *T) (*T, error)
	// Overwrite replaces the contents of dst with src and returns the block
	// the node must hold afterwards.
	Overwrite(dst, src *T) (*T, error)
	// Release gives up a block the list owns. It never touches caller data.
	Release(block *T)

	sealed()
}

// For resolves the policy of kind for element type T. Value kinds require
// T to be exactly the kind's Go type; Reference accepts any T.
func For[T any](kind datatype.Kind) (Policy[T], error) {
	var p any
	switch kind {
	case datatype.KindReference:
		return referencePolicy[T]{}, nil
	case datatype.KindInt:
		p = numberPolicy[int64]{kind: kind}
	case datatype.KindFloat32:
		p = numberPolicy[float32]{kind: kind}
	case datatype.KindFloat64:
		p = numberPolicy[float64]{kind: kind}
	case datatype.KindText:
		p = textPolicy{}
	default:
		return nil, errors.NewUnsupportedKindError("policy.For", kind)
	}
	typed, ok := p.(Policy[T])
	if !ok {
		return nil, errors.NewKindMismatchError("policy.For", kind.String(), typeName[T]())
	}
	return typed, nil
}

func typeName[T any]() string {
	return strings.TrimPrefix(fmt.Sprintf("%T", (*T)(nil)), "*")
}

type numberPolicy[N datatype.Number] struct {
	kind datatype.Kind
}

func (p numberPolicy[N]) Kind() datatype.Kind { return p.kind }
func (p numberPolicy[N]) Width() int          { return p.kind.Width() }
func (p numberPolicy[N]) Owns() bool          { return true }
func (p numberPolicy[N]) sealed()             {}

func (p numberPolicy[N]) Materialize(src *N) (*N, error) {
	if src == nil {
		return nil, errors.NewNilArgumentError("Materialize", p.kind.String()+" value")
	}
	block := new(N)
	*block = *src
	return block, nil
}

// Overwrite copies in place, so aliases taken before the update see the new value.
func (p numberPolicy[N]) Overwrite(dst, src *N) (*N, error) {
	if src == nil {
		return nil, errors.NewNilArgumentError("Overwrite", p.kind.String()+" value")
	}
	*dst = *src
	return dst, nil
}

func (p numberPolicy[N]) Release(block *N) {
	if block == nil {
		return
	}
	var zero N
	*block = zero
}

type textPolicy struct{}

func (textPolicy) Kind() datatype.Kind { return datatype.KindText }
func (textPolicy) Width() int          { return 0 }
func (textPolicy) Owns() bool          { return true }
func (textPolicy) sealed()             {}

func (textPolicy) Materialize(src *string) (*string, error) {
	if src == nil {
		return nil, errors.NewNilArgumentError("Materialize", "text value")
	}
	block := new(string)
	*block = strings.Clone(*src)
	return block, nil
}

// Overwrite swaps in a fresh copy and releases the old block. src may alias dst.
func (p textPolicy) Overwrite(dst, src *string) (*string, error) {
	block, err := p.Materialize(src)
	if err != nil {
		return nil, err
	}
	p.Release(dst)
	return block, nil
}

func (textPolicy) Release(block *string) {
	if block != nil {
		*block = ""
	}
}

type referencePolicy[T any] struct{}

func (referencePolicy[T]) Kind() datatype.Kind { return datatype.KindReference }
func (referencePolicy[T]) Width() int          { return 0 }
func (referencePolicy[T]) Owns() bool          { return false }
func (referencePolicy[T]) sealed()             {}

func (referencePolicy[T]) Materialize(src *T) (*T, error) {
	return src, nil
}

func (referencePolicy[T]) Overwrite(_, src *T) (*T, error) {
	return src, nil
}

func (referencePolicy[T]) Release(*T) {}
