package model

import (
	"fmt"
	"log/slog"
)

// ErrorDetail is the structured error body the hub returns on a
// non-success response
type ErrorDetail struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// String returns a short human readable form
func (e *ErrorDetail) String() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("id: %s, message: %s", e.ID, e.Message)
}

// Result is the outcome of a single hub API call. Failures are encoded
// here rather than returned as Go errors; the reconciler uses the
// fields for control flow and the caller decides what to log. Success
// implies Data may be set and Error is nil; a transport level failure
// is reported as an internal error with no HTTP response behind it.
type Result[T any] struct {
	StatusCode int
	Success    bool
	Data       *T
	Error      *ErrorDetail
}

// LogValue returns structured log value
func (r Result[T]) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("statusCode", r.StatusCode),
		slog.Bool("success", r.Success),
	}
	if r.Error != nil {
		attrs = append(attrs,
			slog.String("errorID", r.Error.ID),
			slog.String("errorMessage", r.Error.Message),
		)
	}
	return slog.GroupValue(attrs...)
}
