package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// --- Common Error Constructors ---

// InvalidInput creates an error for a missing or unusable argument.
func InvalidInput(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code: ErrCodeInvalidInput, Message: fmt.Sprintf("Invalid input: %s", reason),
		Details: details,
	}
}

// ForeignNode creates an error for a node handle that belongs to another builder.
func ForeignNode(op string, node int) *AppError {
	return &AppError{
		Code: ErrCodeForeignNode, Message: fmt.Sprintf("%s: node %d belongs to a different builder", op, node),
		Details: map[string]any{"operation": op, "node": node},
	}
}

// NotRoot creates an error for an attempt to feed a node that has a producer.
func NotRoot(node int) *AppError {
	return &AppError{
		Code: ErrCodeNotRoot, Message: fmt.Sprintf("node %d has a producer and cannot be fed directly", node),
		Details: map[string]any{"node": node},
	}
}

// FeedFinished creates an error for a feed call made after Finish.
func FeedFinished(node int, op string) *AppError {
	return &AppError{
		Code: ErrCodeFeedFinished, Message: fmt.Sprintf("%s after finish on root %d", op, node),
		Details: map[string]any{"node": node, "operation": op},
	}
}

// DispatchFailed wraps an error raised while dispatching to a node.
func DispatchFailed(node int, kind string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeDispatchFailed, Message: fmt.Sprintf("%s node %d failed", kind, node),
		Details: map[string]any{"node": node, "kind": kind}, Cause: cause,
	}
}

// Validation creates an error for configuration that failed validation.
func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeInvalidConfig, Message: message}
}

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// CodeOf returns the code of the outermost AppError in err's chain, or "".
func CodeOf(err error) ErrorCode {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return ""
}

// HasCode reports whether err is an AppError with the given code.
func HasCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}
