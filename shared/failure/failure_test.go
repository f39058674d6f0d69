package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"conectapro/shared/failure"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		kind failure.Kind
	}{
		{name: "bad request", err: failure.BadRequestFromString("campo requerido"), code: http.StatusBadRequest, kind: failure.KindValidation},
		{name: "invalid transition", err: failure.InvalidTransition("estado inválido"), code: http.StatusBadRequest, kind: failure.KindInvalidTransition},
		{name: "invalid state", err: failure.InvalidState("no completado"), code: http.StatusBadRequest, kind: failure.KindInvalidState},
		{name: "not found", err: failure.NotFound("no encontrado"), code: http.StatusNotFound, kind: failure.KindNotFound},
		{name: "conflict", err: failure.Conflict("duplicado"), code: http.StatusConflict, kind: failure.KindConflict},
		{name: "unauthorized", err: failure.Unauthorized("token"), code: http.StatusUnauthorized, kind: failure.KindUnauthorized},
		{name: "forbidden", err: failure.Forbidden("rol"), code: http.StatusForbidden, kind: failure.KindForbidden},
		{name: "internal", err: failure.InternalError(errors.New("db down")), code: http.StatusInternalServerError, kind: failure.KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, failure.GetCode(tt.err))
			assert.Equal(t, tt.kind, failure.KindOf(tt.err))
			assert.True(t, failure.Is(tt.err, tt.kind))
		})
	}
}

func TestNilInputs(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
	assert.False(t, failure.Is(nil, failure.KindUnknown))
}

func TestWrappedFailure(t *testing.T) {
	err := fmt.Errorf("failed to accept request: %w", failure.NotFound("solicitud no encontrada"))

	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	assert.Equal(t, failure.KindNotFound, failure.KindOf(err))
	assert.Equal(t, "failed to accept request: solicitud no encontrada", err.Error())
}

func TestPlainError(t *testing.T) {
	err := errors.New("regular error")

	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	assert.Equal(t, failure.KindUnknown, failure.KindOf(err))
}

func TestNewUnknownKind(t *testing.T) {
	fail := failure.New(failure.Kind("teapot"), "sin clasificar")

	assert.Equal(t, http.StatusInternalServerError, fail.Code)
	assert.Equal(t, "sin clasificar", fail.Error())
}
