package provider

import (
	"net/http"

	"conectapro/infras/otel"
	"conectapro/internal/domains/catalog/model/dto"
	"conectapro/internal/domains/catalog/service"
	"conectapro/shared/constant"
	gDto "conectapro/shared/dto"
	"conectapro/shared/failure"
	"conectapro/shared/validator"
	"conectapro/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const msgInvalidForm = "Formulario inválido"

type Handler struct {
	service service.Provider
	otel    otel.Otel
}

func New(service service.Provider, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	servicePath := "/providers/services/{" + constant.RequestParamServiceID + "}"

	r.Get("/providers/services", handler.GetServices)
	r.Post("/providers/services", handler.CreateService)
	r.Get(servicePath, handler.GetService)
	r.Patch(servicePath, handler.UpdateService)
	r.Post(servicePath+"/image", handler.UploadImage)
}

// GetServices lists the provider's own services.
// @Summary List my services
// @Tags Provider
// @Produce json
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} response.Data[dto.ServicesResponse]
// @Failure 500 {object} response.Error
// @Router /v1/providers/services [get]
// @Security BearerAuth
func (handler *Handler) GetServices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProviderServices")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res, err := handler.service.GetServices(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get provider services")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateService publishes a new service.
// @Summary Create a service
// @Tags Provider
// @Accept json
// @Produce json
// @Param request body dto.CreateServiceRequest true "Service"
// @Success 201 {object} response.Data[dto.ServiceDetailResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/providers/services [post]
// @Security BearerAuth
func (handler *Handler) CreateService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateService")
	defer scope.End()

	req := dto.CreateServiceRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.CreateService(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create service")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Service created")

	response.WithData(w, http.StatusCreated, "Servicio creado exitosamente", res)
}

// GetService returns one of the provider's services.
// @Summary Get my service
// @Tags Provider
// @Produce json
// @Param serviceId path string true "Service ID"
// @Success 200 {object} response.Data[dto.ServiceDetailResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/providers/services/{serviceId} [get]
// @Security BearerAuth
func (handler *Handler) GetService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProviderService")
	defer scope.End()

	res, err := handler.service.GetService(ctx, chi.URLParam(r, constant.RequestParamServiceID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get provider service")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateService changes the given fields of one of the provider's services.
// @Summary Update my service
// @Tags Provider
// @Accept json
// @Produce json
// @Param serviceId path string true "Service ID"
// @Param request body dto.UpdateServiceRequest true "Fields to update"
// @Success 200 {object} response.Data[dto.ServiceDetailResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/providers/services/{serviceId} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateService")
	defer scope.End()

	req := dto.UpdateServiceRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UpdateService(ctx, chi.URLParam(r, constant.RequestParamServiceID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update service")

		response.WithError(w, err)

		return
	}

	response.WithData(w, http.StatusOK, "Servicio actualizado exitosamente", res)
}

// UploadImage stores the service image in object storage.
// @Summary Upload service image
// @Tags Provider
// @Accept multipart/form-data
// @Produce json
// @Param serviceId path string true "Service ID"
// @Param file formData file true "PNG, JPEG or WEBP, up to 5 MB"
// @Success 200 {object} response.Data[dto.ImageResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/providers/services/{serviceId}/image [post]
// @Security BearerAuth
func (handler *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadServiceImage")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, failure.BadRequestFromString(msgInvalidForm))

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, failure.BadRequestFromString(msgInvalidForm))

		return
	}
	defer file.Close()

	req := dto.UploadImageRequest{Image: fileHeader}
	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UploadImage(ctx, chi.URLParam(r, constant.RequestParamServiceID), file, fileHeader)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload service image")

		response.WithError(w, err)

		return
	}

	response.WithData(w, http.StatusOK, "Imagen actualizada exitosamente", res)
}
