package service

import (
	"context"
	"fmt"

	"conectapro/config"
	"conectapro/infras/otel"
	"conectapro/internal/domains/user/model"
	"conectapro/internal/domains/user/model/dto"
	"conectapro/internal/domains/user/repository"
	"conectapro/shared"
	"conectapro/shared/cache"
	"conectapro/shared/constant"
	gDto "conectapro/shared/dto"
	"conectapro/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetUser = "user:get"

	msgUserNotFound = "Usuario no encontrado"
)

type User interface {
	GetMe(ctx context.Context) (dto.UserResponse, error)
	UpdatePersonalInfo(ctx context.Context, req dto.UpdatePersonalInfoRequest) (dto.PersonalInfoResponse, error)
}

type serviceImpl struct {
	repo  repository.User
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.User, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) User {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func cacheKey(id string) string {
	return shared.BuildCacheKey(cacheGetUser, id)
}

// find returns NotFound for an id without an account.
func (s *serviceImpl) find(ctx context.Context, filter gDto.FilterGroup) (model.User, error) {
	user, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return user, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return user, failure.NotFound(msgUserNotFound) // nolint:wrapcheck
	}

	return user, nil
}

// GetMe serves the caller's profile from the cache, refilling it in the background on a miss.
func (s *serviceImpl) GetMe(ctx context.Context) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMe")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	id := shared.UserFromContext(ctx)
	key := cacheKey(id)

	if s.cache.Get(ctx, key, &res) == nil {
		log.Debug().Str("cacheKey", key).Msg("cache hit for user")

		return res, nil
	}

	user, err := s.find(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return res, err
	}

	res.FromModel(user)

	go func(c context.Context) {
		if err := s.cache.Save(c, key, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", key).Msg("failed to save user to cache")
		}
	}(context.WithoutCancel(ctx))

	return res, nil
}

// UpdatePersonalInfo completes the profile. The cached profile is dropped before
// answering so the next GetMe sees the change.
func (s *serviceImpl) UpdatePersonalInfo(ctx context.Context, req dto.UpdatePersonalInfoRequest) (res dto.PersonalInfoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdatePersonalInfo")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	id := shared.UserFromContext(ctx)

	fields, err := req.ToFields(id)
	if err != nil {
		return res, failure.BadRequestFromString("birth_date must be a date formatted as YYYY-MM-DD") // nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return res, fmt.Errorf("failed to check if user exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound(msgUserNotFound) // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update personal info")

		return res, fmt.Errorf("failed to update personal info: %w", err)
	}

	if err := s.cache.Delete(ctx, cacheKey(id)); err != nil {
		log.Warn().Err(err).Str("user_id", id).Msg("failed to drop cached user")
	}

	user, err := s.find(ctx, filter)
	if err != nil {
		return res, err
	}

	res.FromModel(user)

	return res, nil
}
