package error

import (
	"fmt"
	"runtime"
)

type Code uint32

const (
	InvalidArgumentErrorCode Code = iota
	IndexOutOfRangeErrorCode
	EmptyListErrorCode
	AllocationFailureErrorCode
	KindMismatchErrorCode
	StaleIteratorErrorCode
	EncodeErrorCode
	DecodeErrorCode
)

func (c Code) String() string {
	switch c {
	case InvalidArgumentErrorCode:
		return "invalid argument"
	case IndexOutOfRangeErrorCode:
		return "index out of range"
	case EmptyListErrorCode:
		return "empty list"
	case AllocationFailureErrorCode:
		return "allocation failure"
	case KindMismatchErrorCode:
		return "kind mismatch"
	case StaleIteratorErrorCode:
		return "stale iterator"
	case EncodeErrorCode:
		return "encode error"
	case DecodeErrorCode:
		return "decode error"
	default:
		return fmt.Sprintf("code(%d)", uint32(c))
	}
}

// ListError is returned by list operations that reject their input. The list
// is never mutated when one of these is returned.
type ListError struct {
	Code Code
	Op   string
	Msg  string
}

func (e *ListError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Msg)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Code, e.Msg)
}

// Is matches on Code so callers can compare against the sentinels below.
// A kind mismatch is also an invalid argument.
func (e *ListError) Is(target error) bool {
	t, ok := target.(*ListError)
	if !ok {
		return false
	}
	if e.Code == t.Code {
		return true
	}
	return e.Code == KindMismatchErrorCode && t.Code == InvalidArgumentErrorCode
}

var (
	ErrInvalidArgument   = &ListError{Code: InvalidArgumentErrorCode, Msg: "invalid argument"}
	ErrIndexOutOfRange   = &ListError{Code: IndexOutOfRangeErrorCode, Msg: "index out of range"}
	ErrEmptyList         = &ListError{Code: EmptyListErrorCode, Msg: "list is empty"}
	ErrAllocationFailure = &ListError{Code: AllocationFailureErrorCode, Msg: "allocation failure"}
	ErrKindMismatch      = &ListError{Code: KindMismatchErrorCode, Msg: "kind mismatch"}
	ErrStaleIterator     = &ListError{Code: StaleIteratorErrorCode, Msg: "list modified during iteration"}
)

func NewNilArgumentError(op, what string) *ListError {
	return &ListError{Code: InvalidArgumentErrorCode, Op: op, Msg: fmt.Sprintf("%s is nil", what)}
}

func NewNegativeIndexError(op string, index int) *ListError {
	return &ListError{Code: InvalidArgumentErrorCode, Op: op, Msg: fmt.Sprintf("index %d is negative", index)}
}

func NewIndexOutOfRangeError(op string, index, length int) *ListError {
	return &ListError{
		Code: IndexOutOfRangeErrorCode,
		Op:   op,
		Msg:  fmt.Sprintf("index %d is out of bounds for list of length %d", index, length),
	}
}

func NewEmptyListError(op string) *ListError {
	return &ListError{Code: EmptyListErrorCode, Op: op, Msg: "list is empty"}
}

func NewKindMismatchError(op, want, got string) *ListError {
	return &ListError{Code: KindMismatchErrorCode, Op: op, Msg: fmt.Sprintf("%s list cannot hold %s", want, got)}
}

func NewUnsupportedKindError(op string, kind fmt.Stringer) *ListError {
	return &ListError{Code: InvalidArgumentErrorCode, Op: op, Msg: fmt.Sprintf("unsupported kind %s", kind)}
}

func NewStaleIteratorError(listID string) *ListError {
	return &ListError{Code: StaleIteratorErrorCode, Op: "Iterator.Next", Msg: fmt.Sprintf("list %s was structurally modified", listID)}
}

// StackTraceError wraps any error and captures a stack trace
type StackTraceError struct {
	Msg       string
	Stack     string
	ErrorCode Code
}

func NewStackTraceError(msg string, errorCode Code) *StackTraceError {
	buf := make([]byte, 1024*8)
	n := runtime.Stack(buf, false)
	return &StackTraceError{Msg: msg, Stack: string(buf[:n]), ErrorCode: errorCode}
}

func (e *StackTraceError) Error() string {
	return fmt.Sprintf("%s\nStack trace:\n%s", e.Msg, e.Stack)
}
