// Package failure carries errors whose message is safe to show to the client,
// classified by Kind. Anything else reaching a response is a 500.
package failure

import (
	"errors"
	"net/http"
)

// Kind classifies a Failure independently of its HTTP code.
type Kind string

const (
	KindUnknown           Kind = ""
	KindValidation        Kind = "validation"
	KindNotFound          Kind = "not_found"
	KindInvalidTransition Kind = "invalid_transition"
	KindInvalidState      Kind = "invalid_state"
	KindConflict          Kind = "conflict"
	KindUnauthorized      Kind = "unauthorized"
	KindForbidden         Kind = "forbidden"
	KindInternal          Kind = "internal"
)

var statusByKind = map[Kind]int{
	KindValidation:        http.StatusBadRequest,
	KindInvalidTransition: http.StatusBadRequest,
	KindInvalidState:      http.StatusBadRequest,
	KindNotFound:          http.StatusNotFound,
	KindConflict:          http.StatusConflict,
	KindUnauthorized:      http.StatusUnauthorized,
	KindForbidden:         http.StatusForbidden,
}

type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Kind    Kind   `json:"-"`
}

var ForbiddenError = New(KindForbidden, "No tienes permisos para acceder a este recurso")

// New builds a Failure answered with the status of kind.
func New(kind Kind, msg string) *Failure {
	code, ok := statusByKind[kind]
	if !ok {
		code = http.StatusInternalServerError
	}

	return &Failure{Code: code, Message: msg, Kind: kind}
}

func (e *Failure) Error() string {
	return e.Message
}

// BadRequest exposes err's message as a validation failure.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return New(KindValidation, err.Error())
}

func BadRequestFromString(msg string) error {
	return New(KindValidation, msg)
}

// InvalidTransition is returned when a lifecycle event is not allowed from the current status.
func InvalidTransition(msg string) error {
	return New(KindInvalidTransition, msg)
}

// InvalidState is returned when an operation requires the target in a state it is not in.
func InvalidState(msg string) error {
	return New(KindInvalidState, msg)
}

func Unauthorized(msg string) error {
	return New(KindUnauthorized, msg)
}

func Forbidden(msg string) error {
	return New(KindForbidden, msg)
}

func NotFound(msg string) error {
	return New(KindNotFound, msg)
}

func Conflict(msg string) error {
	return New(KindConflict, msg)
}

func InternalError(err error) error {
	if err == nil {
		return nil
	}

	return New(KindInternal, err.Error())
}

func as(err error) (*Failure, bool) {
	var fail *Failure
	ok := errors.As(err, &fail)

	return fail, ok
}

// GetCode returns the HTTP status for err, 500 when err is not a Failure.
func GetCode(err error) int {
	if fail, ok := as(err); ok {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// KindOf reports the Kind of err, KindUnknown when err is not a Failure.
func KindOf(err error) Kind {
	if fail, ok := as(err); ok {
		return fail.Kind
	}

	return KindUnknown
}

// Is reports whether err is a Failure of the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// IsFailure reports whether err carries a Failure anywhere in its chain.
func IsFailure(err error) bool {
	_, ok := as(err)

	return ok
}
