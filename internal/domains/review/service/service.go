package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Review=MockReviewService

import (
	"context"
	"errors"
	"fmt"

	"conectapro/infras/otel"
	catalogModel "conectapro/internal/domains/catalog/model"
	"conectapro/internal/domains/review/model"
	"conectapro/internal/domains/review/model/dto"
	"conectapro/internal/domains/review/repository"
	"conectapro/shared"
	"conectapro/shared/cache"
	"conectapro/shared/constant"
	gDto "conectapro/shared/dto"
	"conectapro/shared/event"
	"conectapro/shared/failure"
	"conectapro/shared/metrics"

	"github.com/rs/zerolog/log"
)

const (
	msgRequestNotFound  = "Solicitud de servicio no encontrada"
	msgRequestNotClosed = "Solo se pueden calificar servicios completados"
	msgReviewExists     = "Ya existe una reseña para esta solicitud"
	msgInvalidFilter    = "Filtro de reseñas inválido"
)

type ordering struct {
	by  string
	dir string
}

var sorts = map[string]ordering{
	model.SortNewest:  {by: model.TableName + "." + constant.FieldCreatedAt, dir: gDto.SortDirDesc},
	model.SortOldest:  {by: model.TableName + "." + constant.FieldCreatedAt, dir: gDto.SortDirAsc},
	model.SortHighest: {by: model.TableName + "." + model.FieldServiceRating + " DESC, " + model.TableName + "." + constant.FieldCreatedAt, dir: gDto.SortDirDesc},
	model.SortLowest:  {by: model.TableName + "." + model.FieldServiceRating + " ASC, " + model.TableName + "." + constant.FieldCreatedAt, dir: gDto.SortDirDesc},
}

type Review interface {
	Create(ctx context.Context, requestID string, req dto.CreateReviewRequest) (dto.ReviewResponse, error)
	GetProviderReviews(ctx context.Context, req dto.ListRequest) (dto.ProviderReviewsResponse, error)
}

type serviceImpl struct {
	repo      repository.Review
	cache     cache.RedisCache
	publisher event.Publisher
	metrics   *metrics.Metrics
	otel      otel.Otel
}

func New(repo repository.Review, cache cache.RedisCache, publisher event.Publisher, metrics *metrics.Metrics, otel otel.Otel) Review {
	return &serviceImpl{
		repo:      repo,
		cache:     cache,
		publisher: publisher,
		metrics:   metrics,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, requestID string, req dto.CreateReviewRequest) (res dto.ReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()
	defer func() { s.metrics.IncReview(metrics.Result(err, failure.IsFailure)) }()

	client := shared.UserFromContext(ctx)

	review, err := s.repo.Create(ctx, req.ToModel(requestID, client), client)

	switch {
	case errors.Is(err, repository.ErrRequestNotFound):
		return res, failure.NotFound(msgRequestNotFound) // nolint:wrapcheck
	case errors.Is(err, repository.ErrRequestNotCompleted):
		return res, failure.InvalidState(msgRequestNotClosed) // nolint:wrapcheck
	case errors.Is(err, repository.ErrReviewExists):
		return res, failure.Conflict(msgReviewExists) // nolint:wrapcheck
	case err != nil:
		log.Error().Err(err).Msg("failed to create review")

		return res, fmt.Errorf("failed to create review: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, catalogModel.CacheServices)

		evt := event.New(model.EventCreated, review.ServiceRequestID, client, review.CreatedAt, model.CreatedPayload{
			ServiceRequestID: review.ServiceRequestID,
			ServiceID:        review.ServiceID,
			ProviderID:       review.ProviderID,
			ServiceRating:    review.ServiceRating,
			ProviderRating:   review.ProviderRating,
		})

		if err := s.publisher.Publish(c, event.TopicReviewCreated, evt); err != nil {
			log.Error().Err(err).Str("review", review.ID).Msg("failed to publish review event")
		}
	}()

	res.FromModel(review)

	return res, nil
}

func (s *serviceImpl) GetProviderReviews(ctx context.Context, req dto.ListRequest) (res dto.ProviderReviewsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetProviderReviews")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	sort := req.Sort
	if sort == constant.Empty {
		sort = model.SortNewest
	}

	order, ok := sorts[sort]
	if !ok || req.RatingFilter < 0 || req.RatingFilter > 5 {
		return res, failure.BadRequestFromString(msgInvalidFilter) // nolint:wrapcheck
	}

	params := req.QueryParams
	params.SortBy = order.by
	params.SortDir = order.dir

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldProviderID, Value: shared.UserFromContext(ctx), Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}

	if req.RatingFilter > 0 {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldServiceRating,
			Value:    req.RatingFilter,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	views, err := s.repo.GetViews(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reviews")

		return res, fmt.Errorf("failed to get reviews: %w", err)
	}

	total, err := s.repo.CountViews(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reviews")

		return res, fmt.Errorf("failed to count reviews: %w", err)
	}

	res.FromModels(views, params, total)

	return res, nil
}
