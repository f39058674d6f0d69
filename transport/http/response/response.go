package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"conectapro/shared/constant"
	"conectapro/shared/failure"
	"conectapro/shared/logger"
)

// Envelope is the body of every response. All four keys are always present:
// data is null when there is nothing to return and errors is never null.
type Envelope struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    any      `json:"data"`
	Errors  []string `json:"errors"`
}

// Error documents a failed response.
type Error struct {
	Success bool     `json:"success" example:"false"`
	Message string   `json:"message" example:"Solicitud de servicio no encontrada"`
	Data    any      `json:"data"`
	Errors  []string `json:"errors"`
}

// Message documents a successful response without data.
type Message struct {
	Success bool     `json:"success" example:"true"`
	Message string   `json:"message" example:"Operación realizada correctamente"`
	Data    any      `json:"data"`
	Errors  []string `json:"errors"`
}

// Data documents a successful response carrying T.
type Data[T any] struct {
	Success bool     `json:"success" example:"true"`
	Message string   `json:"message"`
	Data    T        `json:"data"`
	Errors  []string `json:"errors"`
}

// WithMessage sends a successful response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Envelope{Success: true, Message: message})
}

// WithJSON sends a successful response containing a JSON object
func WithJSON(writer http.ResponseWriter, code int, jsonPayload any) {
	response(writer, code, Envelope{Success: true, Data: jsonPayload})
}

// WithData sends a successful response containing a message and a JSON object
func WithData(writer http.ResponseWriter, code int, message string, jsonPayload any) {
	response(writer, code, Envelope{Success: true, Message: message, Data: jsonPayload})
}

// WithError sends a failed response. Only Failure messages reach the client;
// anything else is logged and answered with a generic message.
func WithError(writer http.ResponseWriter, err error) {
	var fail *failure.Failure
	if !errors.As(err, &fail) {
		logger.ErrorWithStack(err)

		response(writer, http.StatusInternalServerError, Envelope{Message: constant.ResponseErrorGeneric})

		return
	}

	envelope := Envelope{Message: fail.Message}
	if fail.Kind == failure.KindValidation {
		envelope.Errors = []string{fail.Message}
	}

	response(writer, fail.Code, envelope)
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	response(writer, http.StatusTooManyRequests, Envelope{Message: constant.ResponseErrorRequestLimitExceeded})
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	response(writer, http.StatusServiceUnavailable, Envelope{Message: constant.ResponseErrorPrepareShutdown})
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	response(writer, http.StatusServiceUnavailable, Envelope{Message: constant.ResponseErrorUnhealthy})
}

func response(writer http.ResponseWriter, code int, payload Envelope) {
	if payload.Errors == nil {
		payload.Errors = []string{}
	}

	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
