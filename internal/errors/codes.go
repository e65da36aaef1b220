package errors

// Code classifies an error for callers and for the gRPC surfaces
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded   Code = "DEADLINE_EXCEEDED"
	CodeNotFound           Code = "NOT_FOUND"
	CodeResourceExhausted  Code = "RESOURCE_EXHAUSTED"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeUnimplemented      Code = "UNIMPLEMENTED"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
)

var allCodes = []Code{
	CodeOK,
	CodeCanceled,
	CodeInvalidArgument,
	CodeDeadlineExceeded,
	CodeNotFound,
	CodeResourceExhausted,
	CodeFailedPrecondition,
	CodeUnimplemented,
	CodeInternal,
	CodeUnavailable,
}

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// Retryable reports whether an operation failing with this code may succeed
// if attempted again without changes.
func (c Code) Retryable() bool {
	switch c {
	case CodeUnavailable, CodeDeadlineExceeded, CodeResourceExhausted:
		return true
	default:
		return false
	}
}
