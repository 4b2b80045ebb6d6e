package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Wiring errors, raised while a graph is being built or opened.
const (
	// ErrCodeInvalidInput indicates a nil function, predicate, inspector or node handle.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeForeignNode indicates a node handle used with a builder or graph it does not belong to.
	ErrCodeForeignNode ErrorCode = "FOREIGN_NODE"
	// ErrCodeNotRoot indicates an attempt to feed a node that has a producer.
	ErrCodeNotRoot ErrorCode = "NOT_ROOT"
)

// Feed errors, raised while items flow through a graph.
const (
	// ErrCodeFeedFinished indicates an item or finish signal sent after Finish.
	ErrCodeFeedFinished ErrorCode = "FEED_FINISHED"
	// ErrCodeDispatchFailed wraps an error returned by a transform or an inspector.
	ErrCodeDispatchFailed ErrorCode = "DISPATCH_FAILED"
)

// Configuration errors.
const (
	// ErrCodeInvalidConfig indicates configuration that failed validation.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
	// ErrCodeInternal indicates an unexpected failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)
