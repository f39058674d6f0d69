package review

import (
	"net/http"

	"conectapro/infras/otel"
	"conectapro/internal/domains/review/model/dto"
	"conectapro/internal/domains/review/service"
	"conectapro/shared"
	"conectapro/shared/constant"
	"conectapro/shared/validator"
	"conectapro/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Review
	otel    otel.Otel
}

func New(service service.Review, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Post("/clients/service-request/{"+constant.RequestParamRequestID+"}/review", handler.CreateReview)
	r.Get("/providers/reviews", handler.GetProviderReviews)
}

// CreateReview rates a completed request. Each request accepts one review.
// @Summary Review a completed service request
// @Tags Client
// @Accept json
// @Produce json
// @Param requestId path string true "Request ID"
// @Param request body dto.CreateReviewRequest true "Review"
// @Success 200 {object} response.Data[dto.ReviewResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/clients/service-request/{requestId}/review [post]
// @Security BearerAuth
func (handler *Handler) CreateReview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReview")
	defer scope.End()

	req := dto.CreateReviewRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, chi.URLParam(r, constant.RequestParamRequestID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create review")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Review created")

	response.WithData(w, http.StatusOK, "Reseña enviada exitosamente", res)
}

// GetProviderReviews lists the reviews received by the provider.
// @Summary List my reviews
// @Tags Provider
// @Produce json
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Param rating_filter query int false "Service rating, 1 to 5"
// @Param sort query string false "newest, oldest, highest or lowest"
// @Success 200 {object} response.Data[dto.ProviderReviewsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/providers/reviews [get]
// @Security BearerAuth
func (handler *Handler) GetProviderReviews(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProviderReviews")
	defer scope.End()

	query := r.URL.Query()

	req := dto.ListRequest{Sort: query.Get(constant.RequestParamSort)}
	req.QueryParams.FromRequest(r, true)

	if raw := query.Get(constant.RequestParamRating); raw != constant.Empty {
		rating := shared.ConvertStringToInt(raw)
		if rating == nil {
			req.RatingFilter = -1
		} else {
			req.RatingFilter = *rating
		}
	}

	res, err := handler.service.GetProviderReviews(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get provider reviews")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
