package list

import errors "tlist/internal/platform/error"

// Iterator walks a list from the head it saw at creation. Any structural
// mutation of the list after that ends the iteration and Err reports
// ErrStaleIterator; Update does not count as structural.
type Iterator[T any] struct {
	list       *List[T]
	cursor     *node[T]
	position   int
	generation uint64
	err        error
}

func NewIterator[T any](l *List[T]) (*Iterator[T], error) {
	if l == nil {
		return nil, nilList("NewIterator")
	}
	return &Iterator[T]{
		list:       l,
		cursor:     l.head,
		generation: l.generation,
	}, nil
}

func (it *Iterator[T]) stale() bool {
	if it.err != nil {
		return true
	}
	if it.list.generation != it.generation {
		it.err = it.list.reject("Iterator.Next", it.position, errors.NewStaleIteratorError(it.list.id))
		it.cursor = nil
		return true
	}
	return false
}

// HasNext reports whether Next will yield a value.
func (it *Iterator[T]) HasNext() bool {
	if it == nil || it.list == nil || it.stale() {
		return false
	}
	return it.cursor != nil
}

// Next returns the alias at the cursor and advances. ok is false once the
// iterator is exhausted, freed or stale.
func (it *Iterator[T]) Next() (v *T, ok bool) {
	if !it.HasNext() {
		return nil, false
	}
	v = it.cursor.val
	it.cursor = it.cursor.next
	it.position++
	return v, true
}

// Position is the number of values yielded so far.
func (it *Iterator[T]) Position() int {
	if it == nil {
		return 0
	}
	return it.position
}

// Err returns ErrStaleIterator if the list changed under the iterator.
// Plain exhaustion is not an error.
func (it *Iterator[T]) Err() error {
	if it == nil {
		return nil
	}
	return it.err
}

// Free unbinds the iterator. The list is not touched.
func (it *Iterator[T]) Free() {
	if it == nil {
		return
	}
	it.list = nil
	it.cursor = nil
}
