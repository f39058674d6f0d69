// Package system serves the endpoints reserved to trusted callers holding the API key.
package system

import (
	"net/http"

	"conectapro/infras/otel"
	catalogDto "conectapro/internal/domains/catalog/model/dto"
	catalogService "conectapro/internal/domains/catalog/service"
	srService "conectapro/internal/domains/servicerequest/service"
	"conectapro/shared/constant"
	"conectapro/shared/validator"
	"conectapro/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	catalog  catalogService.Catalog
	requests srService.ServiceRequest
	otel     otel.Otel
}

func New(catalog catalogService.Catalog, requests srService.ServiceRequest, otel otel.Otel) Handler {
	return Handler{
		catalog:  catalog,
		requests: requests,
		otel:     otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/internal", func(r chi.Router) {
		r.Post("/categories", handler.CreateCategory)
		r.Post("/service-requests/{"+constant.RequestParamRequestID+"}/complete", handler.CompleteServiceRequest)
	})
}

// CreateCategory adds a catalog category. Names are unique.
// @Summary Create a category
// @Tags Internal
// @Accept json
// @Produce json
// @Param request body catalogDto.CreateCategoryRequest true "Category"
// @Success 201 {object} response.Data[catalogDto.CategoryResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/internal/categories [post]
// @Security ApiKeyAuth
func (handler *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCategory")
	defer scope.End()

	req := catalogDto.CreateCategoryRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.catalog.CreateCategory(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create category")

		response.WithError(w, err)

		return
	}

	response.WithData(w, http.StatusCreated, "Categoría creada exitosamente", res)
}

// CompleteServiceRequest marks an accepted or in-progress request as completed.
// @Summary Complete a service request
// @Tags Internal
// @Produce json
// @Param requestId path string true "Request ID"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/internal/service-requests/{requestId}/complete [post]
// @Security ApiKeyAuth
func (handler *Handler) CompleteServiceRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CompleteServiceRequest")
	defer scope.End()

	res, err := handler.requests.MarkCompleted(ctx, chi.URLParam(r, constant.RequestParamRequestID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to complete service request")

		response.WithError(w, err)

		return
	}

	response.WithData(w, http.StatusOK, "Solicitud completada", res)
}
