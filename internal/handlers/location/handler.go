package location

import (
	"net/http"

	"conectapro/infras/otel"
	"conectapro/internal/domains/location/model/dto"
	"conectapro/internal/domains/location/service"
	"conectapro/shared/constant"
	"conectapro/shared/validator"
	"conectapro/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Location
	otel    otel.Otel
}

func New(service service.Location, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Get("/clients/locations", handler.GetLocations)
	r.Post("/clients/locations", handler.CreateLocation)
	r.Patch("/clients/locations/{"+constant.RequestParamLocationID+"}/default", handler.SetDefault)
}

// GetLocations lists the client's locations, default first.
// @Summary List my locations
// @Tags Client
// @Produce json
// @Success 200 {object} response.Data[[]dto.LocationResponse]
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/clients/locations [get]
// @Security BearerAuth
func (handler *Handler) GetLocations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLocations")
	defer scope.End()

	res, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get locations")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateLocation adds a location; is_default demotes the previous default.
// @Summary Create a location
// @Tags Client
// @Accept json
// @Produce json
// @Param request body dto.CreateLocationRequest true "Location"
// @Success 201 {object} response.Data[dto.LocationResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/clients/locations [post]
// @Security BearerAuth
func (handler *Handler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateLocation")
	defer scope.End()

	req := dto.CreateLocationRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create location")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Location created")

	response.WithData(w, http.StatusCreated, "Ubicación creada exitosamente", res)
}

// SetDefault makes a location the client's only default.
// @Summary Set default location
// @Tags Client
// @Produce json
// @Param locationId path string true "Location ID"
// @Success 200 {object} response.Data[dto.LocationResponse]
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/clients/locations/{locationId}/default [patch]
// @Security BearerAuth
func (handler *Handler) SetDefault(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetDefaultLocation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamLocationID)

	res, err := handler.service.SetDefault(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set default location")

		response.WithError(w, err)

		return
	}

	response.WithData(w, http.StatusOK, "Ubicación predeterminada actualizada", res)
}
