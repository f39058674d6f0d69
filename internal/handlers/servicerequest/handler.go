package servicerequest

import (
	"context"
	"net/http"

	"conectapro/infras/otel"
	"conectapro/internal/domains/servicerequest/model/dto"
	"conectapro/internal/domains/servicerequest/service"
	"conectapro/shared/constant"
	gDto "conectapro/shared/dto"
	"conectapro/shared/validator"
	"conectapro/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

var requestIDPath = "{" + constant.RequestParamRequestID + "}"

type Handler struct {
	service service.ServiceRequest
	otel    otel.Otel
}

func New(service service.ServiceRequest, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Post("/clients/service-request", handler.Create)
	r.Get("/clients/service-requests", handler.GetClientRequests)
	r.Post("/clients/service-request/"+requestIDPath+"/cancel", handler.CancelByClient)

	r.Get("/providers/service-requests", handler.GetProviderRequests)
	r.Get("/providers/service-request/"+requestIDPath, handler.GetProviderRequest)
	r.Post("/providers/service-requests/"+requestIDPath+"/accept", handler.Accept)
	r.Post("/providers/service-requests/"+requestIDPath+"/reject", handler.Reject)
	r.Post("/providers/service-requests/"+requestIDPath+"/start", handler.Start)
	r.Post("/providers/service-request/"+requestIDPath+"/cancel", handler.CancelByProvider)
}

// Create books a service for the authenticated client.
// @Summary Create a service request
// @Description Creates a request in PENDING_PROVIDER_CONFIRMATION with a simulated, already settled payment.
// @Tags Client
// @Accept json
// @Produce json
// @Param request body dto.CreateServiceRequestRequest true "Service request"
// @Success 200 {object} response.Data[dto.ServiceRequestResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/clients/service-request [post]
// @Security BearerAuth
func (handler *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateServiceRequest")
	defer scope.End()

	req := dto.CreateServiceRequestRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create service request")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Service request created")

	response.WithData(w, http.StatusOK, "Solicitud de servicio creada exitosamente", res)
}

// GetClientRequests lists the client's requests, newest first.
// @Summary List my service requests
// @Tags Client
// @Produce json
// @Param status query string false "UPCOMING, ALL or a status"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} response.Data[dto.ClientRequestsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/clients/service-requests [get]
// @Security BearerAuth
func (handler *Handler) GetClientRequests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetClientRequests")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res, err := handler.service.GetClientRequests(ctx, r.URL.Query().Get(constant.RequestParamStatus), queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get client service requests")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CancelByClient cancels a pending or accepted request.
// @Summary Cancel my service request
// @Tags Client
// @Accept json
// @Produce json
// @Param requestId path string true "Request ID"
// @Param request body dto.ReasonRequest true "Reason"
// @Success 200 {object} response.Data[dto.TransitionResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/clients/service-request/{requestId}/cancel [post]
// @Security BearerAuth
func (handler *Handler) CancelByClient(w http.ResponseWriter, r *http.Request) {
	handler.withReason(w, r, "CancelByClient", "Solicitud cancelada exitosamente", handler.service.CancelByClient)
}

// GetProviderRequests lists the requests addressed to the provider, newest first.
// @Summary List received service requests
// @Tags Provider
// @Produce json
// @Param status query string false "UPCOMING, ALL or a status"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} response.Data[dto.ProviderRequestsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/providers/service-requests [get]
// @Security BearerAuth
func (handler *Handler) GetProviderRequests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProviderRequests")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res, err := handler.service.GetProviderRequests(ctx, r.URL.Query().Get(constant.RequestParamStatus), queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get provider service requests")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetProviderRequest returns one request addressed to the provider.
// @Summary Get a received service request
// @Tags Provider
// @Produce json
// @Param requestId path string true "Request ID"
// @Success 200 {object} response.Data[dto.ServiceRequestResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/providers/service-request/{requestId} [get]
// @Security BearerAuth
func (handler *Handler) GetProviderRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProviderRequest")
	defer scope.End()

	res, err := handler.service.GetProviderRequest(ctx, chi.URLParam(r, constant.RequestParamRequestID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get provider service request")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Accept confirms a pending request. Notes are appended, never replacing earlier ones.
// @Summary Accept a service request
// @Tags Provider
// @Accept json
// @Produce json
// @Param requestId path string true "Request ID"
// @Param request body dto.AcceptRequest false "Notes"
// @Success 200 {object} response.Data[dto.TransitionResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/providers/service-requests/{requestId}/accept [post]
// @Security BearerAuth
func (handler *Handler) Accept(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Accept")
	defer scope.End()

	req := dto.AcceptRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Accept(ctx, chi.URLParam(r, constant.RequestParamRequestID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to accept service request")

		response.WithError(w, err)

		return
	}

	response.WithData(w, http.StatusOK, "Solicitud aceptada exitosamente", res)
}

// Reject declines a pending request.
// @Summary Reject a service request
// @Tags Provider
// @Accept json
// @Produce json
// @Param requestId path string true "Request ID"
// @Param request body dto.ReasonRequest true "Reason"
// @Success 200 {object} response.Data[dto.TransitionResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/providers/service-requests/{requestId}/reject [post]
// @Security BearerAuth
func (handler *Handler) Reject(w http.ResponseWriter, r *http.Request) {
	handler.withReason(w, r, "Reject", "Solicitud rechazada exitosamente", handler.service.Reject)
}

// Start moves an accepted request in progress.
// @Summary Start a service request
// @Tags Provider
// @Produce json
// @Param requestId path string true "Request ID"
// @Success 200 {object} response.Data[dto.TransitionResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/providers/service-requests/{requestId}/start [post]
// @Security BearerAuth
func (handler *Handler) Start(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Start")
	defer scope.End()

	res, err := handler.service.Start(ctx, chi.URLParam(r, constant.RequestParamRequestID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to start service request")

		response.WithError(w, err)

		return
	}

	response.WithData(w, http.StatusOK, "Servicio iniciado", res)
}

// CancelByProvider cancels any non-terminal request addressed to the provider.
// @Summary Cancel a received service request
// @Tags Provider
// @Accept json
// @Produce json
// @Param requestId path string true "Request ID"
// @Param request body dto.ReasonRequest true "Reason"
// @Success 200 {object} response.Data[dto.TransitionResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/providers/service-request/{requestId}/cancel [post]
// @Security BearerAuth
func (handler *Handler) CancelByProvider(w http.ResponseWriter, r *http.Request) {
	handler.withReason(w, r, "CancelByProvider", "Solicitud cancelada exitosamente", handler.service.CancelByProvider)
}

type reasonTransition func(ctx context.Context, id string, req dto.ReasonRequest) (dto.TransitionResponse, error)

func (handler *Handler) withReason(w http.ResponseWriter, r *http.Request, name, message string, transition reasonTransition) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+name)
	defer scope.End()

	req := dto.ReasonRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := transition(ctx, chi.URLParam(r, constant.RequestParamRequestID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("action", name).Msg("failed to transition service request")

		response.WithError(w, err)

		return
	}

	response.WithData(w, http.StatusOK, message, res)
}
