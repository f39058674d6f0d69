package catalog

import (
	"net/http"

	"conectapro/infras/otel"
	"conectapro/internal/domains/catalog/service"
	"conectapro/shared"
	"conectapro/shared/constant"
	gDto "conectapro/shared/dto"
	"conectapro/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Catalog
	otel    otel.Otel
}

func New(service service.Catalog, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Get("/categories", handler.GetCategories)
	r.Get("/categories/{"+constant.RequestParamCategoryID+"}/services", handler.GetServicesByCategory)

	r.Get("/services/top", handler.GetTopServices)
	r.Get("/services/search", handler.SearchServices)
	r.Get("/services/{"+constant.RequestParamServiceID+"}", handler.GetServiceDetails)
}

// GetCategories lists every category.
// @Summary List categories
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Data[[]dto.CategoryResponse]
// @Failure 500 {object} response.Error
// @Router /v1/categories [get]
// @Security BearerAuth
func (handler *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCategories")
	defer scope.End()

	res, err := handler.service.GetCategories(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get categories")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetServicesByCategory lists the services of one category.
// @Summary List services of a category
// @Tags Catalog
// @Produce json
// @Param categoryId path string true "Category ID"
// @Param q query string false "Search term"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} response.Data[dto.ServicesResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/categories/{categoryId}/services [get]
// @Security BearerAuth
func (handler *Handler) GetServicesByCategory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServicesByCategory")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	categoryID := chi.URLParam(r, constant.RequestParamCategoryID)

	res, err := handler.service.GetServicesByCategory(ctx, categoryID, r.URL.Query().Get(constant.RequestParamSearch), queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("category_id", categoryID).Msg("failed to get services by category")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetTopServices lists the best rated services.
// @Summary Top services
// @Tags Catalog
// @Produce json
// @Param limit query int false "How many, 10 by default"
// @Success 200 {object} response.Data[[]dto.ServiceItem]
// @Failure 500 {object} response.Error
// @Router /v1/services/top [get]
// @Security BearerAuth
func (handler *Handler) GetTopServices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTopServices")
	defer scope.End()

	limit := constant.DefaultValueLimit
	if value := shared.ConvertStringToInt(r.URL.Query().Get(constant.RequestParamLimit)); value != nil {
		limit = *value
	}

	res, err := handler.service.GetTopServices(ctx, limit)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get top services")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// SearchServices matches title and description.
// @Summary Search services
// @Tags Catalog
// @Produce json
// @Param q query string true "Search term"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} response.Data[dto.ServicesResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/services/search [get]
// @Security BearerAuth
func (handler *Handler) SearchServices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchServices")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res, err := handler.service.SearchServices(ctx, r.URL.Query().Get(constant.RequestParamSearch), queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search services")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetServiceDetails returns a service with its category, provider and latest reviews.
// @Summary Service details
// @Tags Catalog
// @Produce json
// @Param serviceId path string true "Service ID"
// @Success 200 {object} response.Data[dto.ServiceDetailResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/services/{serviceId} [get]
// @Security BearerAuth
func (handler *Handler) GetServiceDetails(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServiceDetails")
	defer scope.End()

	res, err := handler.service.GetServiceDetails(ctx, chi.URLParam(r, constant.RequestParamServiceID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get service details")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
