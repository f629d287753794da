package list

import errors "tlist/internal/platform/error"

// Sentinels for errors.Is, re-exported so callers need not import the error package.
var (
	ErrInvalidArgument = errors.ErrInvalidArgument
	ErrIndexOutOfRange = errors.ErrIndexOutOfRange
	ErrEmptyList       = errors.ErrEmptyList
	ErrKindMismatch    = errors.ErrKindMismatch
	ErrStaleIterator   = errors.ErrStaleIterator
)
