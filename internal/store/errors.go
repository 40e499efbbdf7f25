package store

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
)

// Common store error types
var (
	ErrUnavailable   = errors.New("store unavailable")
	ErrUnknownDriver = errors.New("unknown store driver")
)

// Error represents a failed store call with additional context
type Error struct {
	Op    string // Operation that failed (e.g., "select", "insert")
	Table string // Collection involved in the operation
	Code  string // Backend error code: PostgREST code, SQLSTATE or HTTP status
	Err   error  // Underlying error
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("store %s on %s failed (%s): %v", e.Op, e.Table, e.Code, e.Err)
	}
	return fmt.Sprintf("store %s on %s failed: %v", e.Op, e.Table, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a new Error
func NewError(op, table, code string, err error) *Error {
	return &Error{
		Op:    op,
		Table: table,
		Code:  code,
		Err:   err,
	}
}

// Detail returns the backend's own message for err, without the store
// prefix, so it can be forwarded to the caller
func Detail(err error) string {
	var storeErr *Error
	if errors.As(err, &storeErr) && storeErr.Err != nil {
		return storeErr.Err.Error()
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

// Code returns the backend error code carried by err, if any
func Code(err error) string {
	var storeErr *Error
	if errors.As(err, &storeErr) {
		return storeErr.Code
	}
	return ""
}

// IsConflict returns true if err reports a uniqueness or check violation
func IsConflict(err error) bool {
	switch Code(err) {
	case "23505", "23514", strconv.Itoa(http.StatusConflict):
		return true
	}
	return false
}
