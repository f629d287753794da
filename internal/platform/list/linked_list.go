// Package list is a singly linked list whose element kind is fixed at
// creation. Value kinds (Int, Float32, Float64, Text) are copied into storage
// the list owns; Reference lists keep the caller's addresses and never touch
// what they point to.
//
// A List has a single owner and no internal locking.
package list

import (
	"iter"
	"strings"

	"tlist/internal/platform/datatype"
	errors "tlist/internal/platform/error"
	"tlist/internal/platform/helper"
	"tlist/internal/platform/policy"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type (
	// Visitor receives a list-owned alias of each element.
	Visitor[T any] func(v *T)

	List[T any] struct {
		id     string
		kind   datatype.Kind
		policy policy.Policy[T]
		head   *node[T]
		tail   *node[T]
		count  int
		// generation changes on every structural mutation.
		generation uint64
	}
)

// New creates an empty list of kind. T must be the kind's Go type (int64,
// float32, float64, string) unless kind is Reference.
func New[T any](kind datatype.Kind) (*List[T], error) {
	p, err := policy.For[T](kind)
	if err != nil {
		return nil, err
	}
	return &List[T]{
		id:     generateID(),
		kind:   kind,
		policy: p,
	}, nil
}

func NewInt() *List[int64]       { return mustNew[int64](datatype.KindInt) }
func NewFloat32() *List[float32] { return mustNew[float32](datatype.KindFloat32) }
func NewFloat64() *List[float64] { return mustNew[float64](datatype.KindFloat64) }
func NewText() *List[string]     { return mustNew[string](datatype.KindText) }

// NewReference creates a list that stores *T aliases owned by the caller.
func NewReference[T any]() *List[T] { return mustNew[T](datatype.KindReference) }

func mustNew[T any](kind datatype.Kind) *List[T] {
	l, err := New[T](kind)
	if err != nil {
		panic(err)
	}
	return l
}

func generateID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}

func (l *List[T]) ID() string {
	if l == nil {
		return ""
	}
	return l.id
}

func (l *List[T]) Kind() datatype.Kind {
	return l.kind
}

func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.count
}

// Push appends a materialized copy of v (or v itself for Reference lists).
func (l *List[T]) Push(v *T) error {
	if l == nil {
		return nilList("Push")
	}
	n, err := materialize(l.policy, v)
	if err != nil {
		return l.reject("Push", -1, err)
	}
	l.link(n)
	return nil
}

func (l *List[T]) link(n *node[T]) {
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.count++
	l.generation++
}

// Pop removes the head and hands its value to the caller. For value kinds that
// is a copy nothing else references. ok is false when the list is empty.
func (l *List[T]) Pop() (v *T, ok bool) {
	if l == nil {
		nilList("Pop")
		return nil, false
	}
	if l.head == nil {
		return nil, false
	}
	return l.unlink(nil, l.head).detach(), true
}

// locate returns the i-th node and its predecessor. i must be in range.
func (l *List[T]) locate(i int) (prev, n *node[T]) {
	n = l.head
	for x := 0; x < i; x++ {
		prev = n
		n = n.next
	}
	return prev, n
}

func (l *List[T]) unlink(prev, n *node[T]) *node[T] {
	if prev == nil {
		l.head = n.next
	} else {
		prev.next = n.next
	}
	if n == l.tail {
		l.tail = prev
	}
	n.next = nil
	l.count--
	l.generation++
	return n
}

func (l *List[T]) checkIndex(op string, i, limit int) error {
	if i < 0 {
		return l.reject(op, i, errors.NewNegativeIndexError(op, i))
	}
	if i >= limit {
		return l.reject(op, i, errors.NewIndexOutOfRangeError(op, i, l.count))
	}
	return nil
}

// Index returns an alias to the i-th value. It stays valid until the next
// mutating call.
func (l *List[T]) Index(i int) (*T, error) {
	if l == nil {
		return nil, nilList("Index")
	}
	if err := l.checkIndex("Index", i, l.count); err != nil {
		return nil, err
	}
	_, n := l.locate(i)
	return n.val, nil
}

// Update replaces the i-th value. Numbers are overwritten in place, Text gets
// a fresh copy and Reference swaps the alias.
func (l *List[T]) Update(i int, v *T) error {
	if l == nil {
		return nilList("Update")
	}
	if err := l.checkIndex("Update", i, l.count); err != nil {
		return err
	}
	_, n := l.locate(i)
	block, err := l.policy.Overwrite(n.val, v)
	if err != nil {
		return l.reject("Update", i, err)
	}
	n.val = block
	return nil
}

// RemoveAt unlinks the i-th node and releases its value.
func (l *List[T]) RemoveAt(i int) error {
	if l == nil {
		return nilList("RemoveAt")
	}
	if err := l.checkIndex("RemoveAt", i, l.count); err != nil {
		return err
	}
	l.unlink(l.locate(i)).release(l.policy)
	return nil
}

// InsertAt splices v in so that it becomes the i-th element. i == Len appends.
func (l *List[T]) InsertAt(i int, v *T) error {
	if l == nil {
		return nilList("InsertAt")
	}
	if err := l.checkIndex("InsertAt", i, l.count+1); err != nil {
		return err
	}
	n, err := materialize(l.policy, v)
	if err != nil {
		return l.reject("InsertAt", i, err)
	}
	if i == l.count {
		l.link(n)
		return nil
	}
	if i == 0 {
		n.next = l.head
		l.head = n
	} else {
		prev, _ := l.locate(i)
		n.next = prev.next
		prev.next = n
	}
	l.count++
	l.generation++
	return nil
}

// PickAt removes the i-th element and hands its value over like Pop.
// PickAt(0) on an empty list reports ErrEmptyList.
func (l *List[T]) PickAt(i int) (*T, error) {
	if l == nil {
		return nil, nilList("PickAt")
	}
	if i == 0 && l.count == 0 {
		return nil, l.reject("PickAt", i, errors.NewEmptyListError("PickAt"))
	}
	if err := l.checkIndex("PickAt", i, l.count); err != nil {
		return nil, err
	}
	return l.unlink(l.locate(i)).detach(), nil
}

// ForEach calls visit with each value from head to tail. visit must not
// change the list's structure.
func (l *List[T]) ForEach(visit Visitor[T]) error {
	if l == nil {
		return nilList("ForEach")
	}
	if visit == nil {
		return l.reject("ForEach", -1, errors.NewNilArgumentError("ForEach", "visitor"))
	}
	for n := l.head; n != nil; n = n.next {
		visit(n.val)
	}
	return nil
}

// All yields value aliases from head to tail and stops early if the list is
// structurally modified from inside the loop.
func (l *List[T]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		if l == nil {
			return
		}
		gen := l.generation
		for n := l.head; n != nil; n = n.next {
			if !yield(n.val) || gen != l.generation {
				return
			}
		}
	}
}

// Values returns the current aliases in order.
func (l *List[T]) Values() []*T {
	values := make([]*T, 0, l.Len())
	for v := range l.All() {
		values = append(values, v)
	}
	return values
}

// ReleaseContents releases every node and its owned value and leaves the list
// empty and reusable. Reference targets are left alone.
func (l *List[T]) ReleaseContents() {
	if l == nil {
		nilList("ReleaseContents")
		return
	}
	n := l.head
	for n != nil {
		next := n.next
		n.release(l.policy)
		n = next
	}
	l.head = nil
	l.tail = nil
	l.count = 0
	l.generation++
}

// Duplicate returns a new list of the same kind. Value kinds are copied
// element by element; Reference lists share the same targets.
func (l *List[T]) Duplicate() (*List[T], error) {
	if l == nil {
		return nil, nilList("Duplicate")
	}
	dup := &List[T]{
		id:     generateID(),
		kind:   l.kind,
		policy: l.policy,
	}
	for n := l.head; n != nil; n = n.next {
		c, err := materialize(l.policy, n.val)
		if err != nil {
			dup.ReleaseContents()
			return nil, l.reject("Duplicate", -1, err)
		}
		dup.link(c)
	}
	return dup, nil
}

func (l *List[T]) reject(op string, index int, err error) error {
	entry := helper.Log.WithFields(logrus.Fields{
		"list":   l.id,
		"kind":   l.kind,
		"length": l.count,
	})
	if index >= 0 {
		entry = entry.WithField("index", index)
	}
	entry.Debugf("%s rejected: %s", op, err.Error())
	return err
}

func nilList(op string) error {
	err := errors.NewNilArgumentError(op, "list")
	helper.Log.Debugf("%s rejected: %s", op, err.Error())
	return err
}
