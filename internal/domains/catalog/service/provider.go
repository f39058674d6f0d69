package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"

	"conectapro/infras/otel"
	"conectapro/infras/s3"
	"conectapro/internal/domains/catalog/model"
	"conectapro/internal/domains/catalog/model/dto"
	"conectapro/internal/domains/catalog/repository"
	"conectapro/shared"
	"conectapro/shared/cache"
	"conectapro/shared/constant"
	gDto "conectapro/shared/dto"
	"conectapro/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	msgNothingToUpdate = "No hay campos para actualizar"

	imageDirectory = "services"
)

// Provider manages the services a provider offers. Reads are never cached.
type Provider interface {
	GetServices(ctx context.Context, params gDto.QueryParams) (dto.ServicesResponse, error)
	CreateService(ctx context.Context, req dto.CreateServiceRequest) (dto.ServiceDetailResponse, error)
	UpdateService(ctx context.Context, id string, req dto.UpdateServiceRequest) (dto.ServiceDetailResponse, error)
	GetService(ctx context.Context, id string) (dto.ServiceDetailResponse, error)
	UploadImage(ctx context.Context, id string, file multipart.File, header *multipart.FileHeader) (dto.ImageResponse, error)
}

type providerImpl struct {
	categories repository.Category
	services   repository.Service
	storage    s3.S3
	cache      cache.RedisCache
	otel       otel.Otel
}

func NewProvider(categories repository.Category, services repository.Service, storage s3.S3, cache cache.RedisCache, otel otel.Otel) Provider {
	return &providerImpl{
		categories: categories,
		services:   services,
		storage:    storage,
		cache:      cache,
		otel:       otel,
	}
}

func ownerFilter(id, provider string) gDto.FilterGroup {
	return shared.FilterByOwner(id, model.FieldID, provider, model.FieldProvider, model.ServiceTableName)
}

func (s *providerImpl) invalidate(ctx context.Context) {
	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, model.CacheServices)
	}()
}

func (s *providerImpl) GetServices(ctx context.Context, params gDto.QueryParams) (res dto.ServicesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetServices")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params.RestrictSort(constant.DefaultValueSortBy, model.FieldRating, model.FieldPrice, model.FieldTitle)
	filter := shared.FilterByID(shared.UserFromContext(ctx), model.FieldProvider, model.ServiceTableName)

	views, err := s.services.GetViews(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get provider services")

		return res, fmt.Errorf("failed to get provider services: %w", err)
	}

	total, err := s.services.CountViews(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count provider services")

		return res, fmt.Errorf("failed to count provider services: %w", err)
	}

	res.FromModels(views, params, total)

	return res, nil
}

func (s *providerImpl) checkCategory(ctx context.Context, id string) error {
	exist, err := s.categories.Exist(ctx, shared.FilterByID(id, model.FieldCategoryID, model.CategoryTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check category")

		return fmt.Errorf("failed to check category: %w", err)
	}

	if !exist {
		return failure.NotFound(msgCategoryNotFound) // nolint:wrapcheck
	}

	return nil
}

func (s *providerImpl) CreateService(ctx context.Context, req dto.CreateServiceRequest) (res dto.ServiceDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateService")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	provider := shared.UserFromContext(ctx)

	if err = s.checkCategory(ctx, req.CategoryID); err != nil {
		return res, err
	}

	service := req.ToModel(provider)

	if err = s.services.Insert(ctx, service); err != nil {
		log.Error().Err(err).Msg("failed to create service")

		return res, fmt.Errorf("failed to create service: %w", err)
	}

	s.invalidate(ctx)

	return s.detail(ctx, service.ID, provider)
}

func (s *providerImpl) UpdateService(ctx context.Context, id string, req dto.UpdateServiceRequest) (res dto.ServiceDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateService")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return res, failure.BadRequestFromString(msgNothingToUpdate) // nolint:wrapcheck
	}

	provider := shared.UserFromContext(ctx)
	filter := ownerFilter(id, provider)

	exist, err := s.services.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check service")

		return res, fmt.Errorf("failed to check service: %w", err)
	}

	if !exist {
		return res, failure.NotFound(msgServiceNotFound) // nolint:wrapcheck
	}

	if req.CategoryID != nil {
		if err = s.checkCategory(ctx, *req.CategoryID); err != nil {
			return res, err
		}
	}

	if err = s.services.Update(ctx, shared.TransformFields(req, provider), filter); err != nil {
		log.Error().Err(err).Msg("failed to update service")

		return res, fmt.Errorf("failed to update service: %w", err)
	}

	s.invalidate(ctx)

	return s.detail(ctx, id, provider)
}

func (s *providerImpl) GetService(ctx context.Context, id string) (res dto.ServiceDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetService")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.detail(ctx, id, shared.UserFromContext(ctx))
}

func (s *providerImpl) detail(ctx context.Context, id, provider string) (res dto.ServiceDetailResponse, err error) {
	view, err := s.services.GetView(ctx, ownerFilter(id, provider))
	if err != nil {
		log.Error().Err(err).Msg("failed to get service")

		return res, fmt.Errorf("failed to get service: %w", err)
	}

	if view.ID == constant.Empty {
		return res, failure.NotFound(msgServiceNotFound) // nolint:wrapcheck
	}

	res.FromModel(view)

	return res, nil
}

// UploadImage stores the file and points the service at it. The previous image is removed afterwards.
func (s *providerImpl) UploadImage(ctx context.Context, id string, file multipart.File, header *multipart.FileHeader) (res dto.ImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadImage")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	provider := shared.UserFromContext(ctx)
	filter := ownerFilter(id, provider)

	service, err := s.services.Get(ctx, filter, model.FieldID, model.FieldImageURL)
	if err != nil {
		log.Error().Err(err).Msg("failed to get service")

		return res, fmt.Errorf("failed to get service: %w", err)
	}

	if service.ID == constant.Empty {
		return res, failure.NotFound(msgServiceNotFound) // nolint:wrapcheck
	}

	fileName := uuid.NewString() + path.Ext(header.Filename)

	url, err := s.storage.UploadFile(ctx, path.Join(imageDirectory, id), fileName, file, header)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload service image")

		return res, fmt.Errorf("failed to upload service image: %w", err)
	}

	if err = s.services.Update(ctx, shared.TransformFields(dto.UpdateServiceRequest{ImageURL: &url}, provider), filter); err != nil {
		log.Error().Err(err).Msg("failed to update service image")

		return res, fmt.Errorf("failed to update service image: %w", err)
	}

	s.invalidate(ctx)

	if service.ImageURL != constant.Empty {
		go func() {
			if err := s.storage.DeleteByURL(context.WithoutCancel(ctx), service.ImageURL); err != nil {
				log.Warn().Err(err).Str("url", service.ImageURL).Msg("failed to delete previous service image")
			}
		}()
	}

	return dto.ImageResponse{ServiceID: id, ImageURL: url}, nil
}
