package response_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"conectapro/shared/constant"
	"conectapro/shared/failure"
	"conectapro/transport/http/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestWithData(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithData(rec, http.StatusCreated, "Ubicación creada", map[string]string{"id": "loc-1"})

	body := decode(t, rec)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, constant.ContentTypeJSON, rec.Header().Get(constant.RequestHeaderContentType))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Ubicación creada", body["message"])
	assert.Equal(t, map[string]any{"id": "loc-1"}, body["data"])
	assert.Equal(t, []any{}, body["errors"])
}

func TestWithErrorFailureKinds(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		code   int
		errors bool
	}{
		{"validation", failure.BadRequestFromString("reason is required"), http.StatusBadRequest, true},
		{"invalid transition", failure.InvalidTransition("La solicitud no puede ser aceptada en su estado actual"), http.StatusBadRequest, false},
		{"not found", fmt.Errorf("wrapped: %w", failure.NotFound("Solicitud de servicio no encontrada")), http.StatusNotFound, false},
		{"conflict", failure.Conflict("Ya existe una reseña"), http.StatusConflict, false},
		{"forbidden", failure.ForbiddenError, http.StatusForbidden, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			body := decode(t, rec)
			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, false, body["success"])

			var fail *failure.Failure
			require.ErrorAs(t, tt.err, &fail)
			assert.Equal(t, fail.Message, body["message"])
			assert.Equal(t, tt.errors, len(body["errors"].([]any)) > 0)
		})
	}
}

func TestWithErrorHidesUnexpectedErrors(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithError(rec, errors.New("pq: connection refused"))

	body := decode(t, rec)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, constant.ResponseErrorGeneric, body["message"])
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestWithRequestLimitExceeded(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithRequestLimitExceeded(rec)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, constant.ResponseErrorRequestLimitExceeded, decode(t, rec)["message"])
}

func TestEnvelopeAlwaysCarriesEveryKey(t *testing.T) {
	tests := []struct {
		name  string
		write func(w http.ResponseWriter)
		data  any
	}{
		{"message", func(w http.ResponseWriter) { response.WithMessage(w, http.StatusOK, "ok") }, nil},
		{"json", func(w http.ResponseWriter) { response.WithJSON(w, http.StatusOK, map[string]int{"a": 1}) }, map[string]any{"a": float64(1)}},
		{"not found", func(w http.ResponseWriter) {
			response.WithError(w, failure.NotFound("Solicitud de servicio no encontrada"))
		}, nil},
		{"unexpected", func(w http.ResponseWriter) { response.WithError(w, errors.New("boom")) }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.write(rec)

			body := decode(t, rec)
			for _, key := range []string{"success", "message", "data", "errors"} {
				assert.Contains(t, body, key)
			}

			assert.Equal(t, tt.data, body["data"])
			assert.NotNil(t, body["errors"])
		})
	}
}
