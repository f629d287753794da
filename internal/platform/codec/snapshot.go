// Package codec encodes value-kind lists as msgpack snapshots so a list can be
// rebuilt elsewhere with fresh, independent storage.
package codec

import (
	"tlist/internal/platform/datatype"
	errors "tlist/internal/platform/error"
	"tlist/internal/platform/helper"
	"tlist/internal/platform/list"

	"github.com/hashicorp/go-msgpack/codec"
)

type header struct {
	ID   string `codec:"id"`
	Kind byte   `codec:"kind"`
}

type snapshot[T any] struct {
	ID    string `codec:"id"`
	Kind  byte   `codec:"kind"`
	Items []T    `codec:"items"`
}

// Marshal encodes the values of l. Reference lists are rejected because the
// addresses they hold mean nothing outside this process.
func Marshal[T any](l *list.List[T]) ([]byte, error) {
	if l == nil {
		return nil, errors.NewNilArgumentError("codec.Marshal", "list")
	}
	if !l.Kind().IsValueKind() {
		return nil, errors.NewUnsupportedKindError("codec.Marshal", l.Kind())
	}

	snap := snapshot[T]{
		ID:    l.ID(),
		Kind:  byte(l.Kind()),
		Items: make([]T, 0, l.Len()),
	}
	_ = l.ForEach(func(v *T) {
		snap.Items = append(snap.Items, *v)
	})

	handle := new(codec.MsgpackHandle)
	var encoded []byte
	enc := codec.NewEncoderBytes(&encoded, handle)
	if err := enc.Encode(&snap); err != nil {
		return nil, errors.NewStackTraceError(err.Error(), errors.EncodeErrorCode)
	}
	helper.Log.Tracef("encoded list %s: %d items, %d bytes", snap.ID, len(snap.Items), len(encoded))
	return encoded, nil
}

// Unmarshal rebuilds a list from a Marshal snapshot. The new list gets its own
// id. T must match the kind recorded in the snapshot.
func Unmarshal[T any](data []byte) (*list.List[T], error) {
	handle := new(codec.MsgpackHandle)

	var h header
	if err := codec.NewDecoderBytes(data, handle).Decode(&h); err != nil {
		return nil, errors.NewStackTraceError(err.Error(), errors.DecodeErrorCode)
	}
	kind := datatype.Kind(h.Kind)
	if !kind.IsValueKind() {
		return nil, errors.NewUnsupportedKindError("codec.Unmarshal", kind)
	}
	l, err := list.New[T](kind)
	if err != nil {
		return nil, err
	}

	var snap snapshot[T]
	if err := codec.NewDecoderBytes(data, handle).Decode(&snap); err != nil {
		return nil, errors.NewStackTraceError(err.Error(), errors.DecodeErrorCode)
	}
	for i := range snap.Items {
		if err := l.Push(&snap.Items[i]); err != nil {
			return nil, err
		}
	}
	helper.Log.Tracef("decoded list %s from snapshot of %s", l.ID(), h.ID)
	return l, nil
}
