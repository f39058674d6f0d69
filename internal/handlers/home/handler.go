package home

import (
	"net/http"

	"conectapro/infras/otel"
	"conectapro/internal/domains/home/service"
	"conectapro/shared/constant"
	"conectapro/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Home
	otel    otel.Otel
}

func New(service service.Home, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Get("/clients/home", handler.GetHome)
}

// GetHome returns the client landing screen.
// @Summary Client home
// @Description User summary, delivery address, categories, top services and featured workers.
// @Tags Client
// @Produce json
// @Success 200 {object} response.Data[dto.HomeResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/clients/home [get]
// @Security BearerAuth
func (handler *Handler) GetHome(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHome")
	defer scope.End()

	res, err := handler.service.GetHome(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get client home")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
