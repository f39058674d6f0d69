package service

//go:generate go run go.uber.org/mock/mockgen -source=./catalog.go -destination=../mocks/catalog_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"conectapro/config"
	"conectapro/infras/otel"
	"conectapro/internal/domains/catalog/model"
	"conectapro/internal/domains/catalog/model/dto"
	"conectapro/internal/domains/catalog/repository"
	reviewModel "conectapro/internal/domains/review/model"
	reviewRepo "conectapro/internal/domains/review/repository"
	"conectapro/shared"
	"conectapro/shared/cache"
	"conectapro/shared/constant"
	gDto "conectapro/shared/dto"
	"conectapro/shared/failure"
	"conectapro/shared/timezone"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	msgCategoryNotFound = "Categoría no encontrada"
	msgCategoryExists   = "Ya existe una categoría con ese nombre"
	msgServiceNotFound  = "Servicio no encontrado"
	msgSearchRequired   = "El parámetro q es obligatorio"

	latestComments = 5
)

type Catalog interface {
	GetCategories(ctx context.Context) ([]dto.CategoryResponse, error)
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (dto.CategoryResponse, error)
	GetServicesByCategory(ctx context.Context, categoryID, q string, params gDto.QueryParams) (dto.ServicesResponse, error)
	GetTopServices(ctx context.Context, limit int) ([]dto.ServiceItem, error)
	SearchServices(ctx context.Context, q string, params gDto.QueryParams) (dto.ServicesResponse, error)
	GetServiceDetails(ctx context.Context, id string) (dto.ServiceDetailResponse, error)
}

type catalogImpl struct {
	categories repository.Category
	services   repository.Service
	reviews    reviewRepo.Review
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func NewCatalog(
	categories repository.Category,
	services repository.Service,
	reviews reviewRepo.Review,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Catalog {
	return &catalogImpl{
		categories: categories,
		services:   services,
		reviews:    reviews,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

// remember serves key from the cache, loading and saving it in the background on a miss.
func remember[T any](ctx context.Context, s *catalogImpl, key string, load func() (T, error)) (T, error) {
	var res T

	if err := s.cache.Get(ctx, key, &res); err == nil {
		log.Debug().Str("cacheKey", key).Msg("cache hit")

		return res, nil
	}

	res, err := load()
	if err != nil {
		return res, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, key, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", key).Msg("failed to save cache")
		}
	}()

	return res, nil
}

func (s *catalogImpl) GetCategories(ctx context.Context) (res []dto.CategoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetCategories")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return remember(ctx, s, shared.BuildCacheKey(model.CacheCategories, "all"), func() ([]dto.CategoryResponse, error) {
		params := gDto.QueryParams{SortBy: model.FieldCategoryName, SortDir: gDto.SortDirAsc}

		categories, err := s.categories.GetAll(ctx, params, gDto.FilterGroup{})
		if err != nil {
			log.Error().Err(err).Msg("failed to get categories")

			return nil, fmt.Errorf("failed to get categories: %w", err)
		}

		return dto.CategoriesFromModels(categories), nil
	})
}

func (s *catalogImpl) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (res dto.CategoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateCategory")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	category := req.ToModel(constant.ContextSystem)

	exist, err := s.categories.Exist(ctx, shared.FilterByID(category.Name, model.FieldCategoryName, model.CategoryTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check category")

		return res, fmt.Errorf("failed to check category: %w", err)
	}

	if exist {
		return res, failure.Conflict(msgCategoryExists) // nolint:wrapcheck
	}

	if err = s.categories.Insert(ctx, category); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == constant.PqErrorCodeUniqueViolation {
			return res, failure.Conflict(msgCategoryExists) // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create category")

		return res, fmt.Errorf("failed to create category: %w", err)
	}

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, model.CacheCategories)
	}()

	res.FromModel(category)

	return res, nil
}

func (s *catalogImpl) GetServicesByCategory(ctx context.Context, categoryID, q string, params gDto.QueryParams) (res dto.ServicesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetServicesByCategory")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	category, err := s.categories.Get(ctx, shared.FilterByID(categoryID, model.FieldCategoryID, model.CategoryTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get category")

		return res, fmt.Errorf("failed to get category: %w", err)
	}

	if category.ID == constant.Empty {
		return res, failure.NotFound(msgCategoryNotFound) // nolint:wrapcheck
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldCategory, Value: categoryID, Operator: gDto.FilterOperatorEq, Table: model.ServiceTableName},
		},
	}

	q = strings.TrimSpace(q)
	if q != constant.Empty {
		filter.Filters = append(filter.Filters, repository.SearchFilter(q))
	}

	res, err = s.listServices(ctx, params, filter)
	if err != nil {
		return res, err
	}

	res.Category = &dto.CategoryRef{ID: category.ID, Name: category.Name}
	res.Query = q

	return res, nil
}

func (s *catalogImpl) SearchServices(ctx context.Context, q string, params gDto.QueryParams) (res dto.ServicesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SearchServices")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	q = strings.TrimSpace(q)
	if q == constant.Empty {
		return res, failure.BadRequestFromString(msgSearchRequired) // nolint:wrapcheck
	}

	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd, Filters: []any{repository.SearchFilter(q)}}

	res, err = s.listServices(ctx, params, filter)
	if err != nil {
		return res, err
	}

	res.Query = q

	return res, nil
}

func (s *catalogImpl) listServices(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.ServicesResponse, error) {
	params.RestrictSort(constant.DefaultValueSortBy, model.FieldRating, model.FieldPrice, model.FieldTitle, constant.FieldCreatedAt)

	return remember(ctx, s, shared.BuildCacheKeyWithQuery(model.CacheServices, params, filter), func() (dto.ServicesResponse, error) {
		var res dto.ServicesResponse

		views, err := s.services.GetViews(ctx, params, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to get services")

			return res, fmt.Errorf("failed to get services: %w", err)
		}

		total, err := s.services.CountViews(ctx, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to count services")

			return res, fmt.Errorf("failed to count services: %w", err)
		}

		res.FromModels(views, params, total)

		return res, nil
	})
}

func (s *catalogImpl) GetTopServices(ctx context.Context, limit int) (res []dto.ServiceItem, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetTopServices")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if limit <= 0 || limit > constant.MaxValueLimit {
		limit = constant.DefaultValueLimit
	}

	return remember(ctx, s, shared.BuildCacheKey(model.CacheServices, "top", strconv.Itoa(limit)), func() ([]dto.ServiceItem, error) {
		params := gDto.QueryParams{Page: 1, Limit: limit, SortBy: model.OrderTop, SortDir: gDto.SortDirDesc}

		views, err := s.services.GetViews(ctx, params, gDto.FilterGroup{})
		if err != nil {
			log.Error().Err(err).Msg("failed to get top services")

			return nil, fmt.Errorf("failed to get top services: %w", err)
		}

		return dto.ItemsFromModels(views), nil
	})
}

func (s *catalogImpl) GetServiceDetails(ctx context.Context, id string) (res dto.ServiceDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetServiceDetails")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return remember(ctx, s, shared.BuildCacheKey(model.CacheServices, "detail", id), func() (dto.ServiceDetailResponse, error) {
		var res dto.ServiceDetailResponse

		view, err := s.services.GetView(ctx, shared.FilterByID(id, model.FieldID, model.ServiceTableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get service")

			return res, fmt.Errorf("failed to get service: %w", err)
		}

		if view.ID == constant.Empty {
			return res, failure.NotFound(msgServiceNotFound) // nolint:wrapcheck
		}

		res.FromModel(view)

		params := gDto.QueryParams{
			Page:    1,
			Limit:   latestComments,
			SortBy:  reviewModel.TableName + "." + constant.FieldCreatedAt,
			SortDir: gDto.SortDirDesc,
		}

		reviews, err := s.reviews.GetViews(ctx, params, shared.FilterByID(id, reviewModel.FieldServiceID, reviewModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get service reviews")

			return res, fmt.Errorf("failed to get service reviews: %w", err)
		}

		for _, review := range reviews {
			res.Comments = append(res.Comments, dto.Comment{
				ID:         review.ID,
				AuthorName: review.AuthorName,
				Rating:     review.ServiceRating,
				Comment:    review.Comment,
				CreatedAt:  timezone.Format(review.CreatedAt, constant.DateFormat),
			})
		}

		return res, nil
	})
}
