package handlers

import (
	"fmt"
	"net/http"

	"github.com/rogelioGuerrero/apisupabase/internal/store"
)

// Kind classifies a handler failure
type Kind int

const (
	KindParse Kind = iota + 1
	KindValidation
	KindMissingID
	KindStore
	KindMethod
)

func (k Kind) String() string {
	switch k {
	case KindParse:
		return "parse"
	case KindValidation:
		return "validation"
	case KindMissingID:
		return "missing_id"
	case KindStore:
		return "store"
	case KindMethod:
		return "method"
	}
	return "unknown"
}

// Operation identifies the producto operation that failed
type Operation string

const (
	OpList   Operation = "list"
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// summary is the caller-facing message of each operation
func (op Operation) summary() string {
	switch op {
	case OpList:
		return "Error al obtener productos"
	case OpCreate:
		return "Error al crear producto"
	case OpUpdate:
		return "Error al actualizar producto"
	case OpDelete:
		return "Error al eliminar producto"
	}
	return "Error"
}

// Fixed messages
const (
	MsgMethodNotAllowed = "Método no permitido"
	MsgIDRequired       = "ID de producto es requerido"
)

// Error is a typed handler failure
type Error struct {
	Kind Kind
	Op   Operation
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s failed", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s %s failed: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// StatusCode maps the failure kind to an HTTP status. Store failures are
// server-attributable only for list; mutation failures count as client errors.
func (e *Error) StatusCode() int {
	switch e.Kind {
	case KindMethod:
		return http.StatusMethodNotAllowed
	case KindStore:
		if e.Op == OpList {
			return http.StatusInternalServerError
		}
		return http.StatusBadRequest
	default:
		return http.StatusBadRequest
	}
}

// ErrorResponse is the error envelope sent to the caller
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// Body builds the error envelope for the failure
func (e *Error) Body() ErrorResponse {
	switch e.Kind {
	case KindMethod:
		return ErrorResponse{Message: MsgMethodNotAllowed}
	case KindMissingID:
		return ErrorResponse{Message: MsgIDRequired}
	case KindParse:
		return ErrorResponse{Message: e.Op.summary(), Error: "JSON inválido: " + e.detail()}
	default:
		return ErrorResponse{Message: e.Op.summary(), Error: e.detail()}
	}
}

func (e *Error) detail() string {
	if e.Err == nil {
		return ""
	}
	if e.Kind == KindStore {
		return store.Detail(e.Err)
	}
	return e.Err.Error()
}

func parseError(op Operation, err error) *Error {
	return &Error{Kind: KindParse, Op: op, Err: err}
}

func validationError(op Operation, err error) *Error {
	return &Error{Kind: KindValidation, Op: op, Err: err}
}

func missingIDError(op Operation) *Error {
	return &Error{Kind: KindMissingID, Op: op}
}

func storeError(op Operation, err error) *Error {
	return &Error{Kind: KindStore, Op: op, Err: err}
}

func methodError(method string) *Error {
	return &Error{Kind: KindMethod, Err: fmt.Errorf("method %s not allowed", method)}
}
