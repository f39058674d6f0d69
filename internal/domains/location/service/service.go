package service

import (
	"context"
	"fmt"

	"conectapro/infras/otel"
	"conectapro/internal/domains/location/model"
	"conectapro/internal/domains/location/model/dto"
	"conectapro/internal/domains/location/repository"
	"conectapro/shared"
	"conectapro/shared/constant"
	gDto "conectapro/shared/dto"
	"conectapro/shared/failure"

	"github.com/rs/zerolog/log"
)

const msgLocationNotFound = "Ubicación no encontrada"

type Location interface {
	GetAll(ctx context.Context) ([]dto.LocationResponse, error)
	Create(ctx context.Context, req dto.CreateLocationRequest) (dto.LocationResponse, error)
	SetDefault(ctx context.Context, id string) (dto.LocationResponse, error)
}

type serviceImpl struct {
	repo repository.Location
	otel otel.Otel
}

func New(repo repository.Location, otel otel.Otel) Location {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.LocationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user := shared.UserFromContext(ctx)
	params := gDto.QueryParams{SortBy: model.OrderDefaultFirst, SortDir: gDto.SortDirDesc}

	models, err := s.repo.GetAll(ctx, params, shared.FilterByID(user, model.FieldUserID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get locations")

		return nil, fmt.Errorf("failed to get locations: %w", err)
	}

	return dto.FromModels(models), nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateLocationRequest) (res dto.LocationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user := shared.UserFromContext(ctx)
	location := req.ToModel(user)

	if err = s.repo.InsertWithDefault(ctx, location, repository.Scope(user), location.IsDefault); err != nil {
		log.Error().Err(err).Msg("failed to create location")

		return res, fmt.Errorf("failed to create location: %w", err)
	}

	res.FromModel(location)

	return res, nil
}

func (s *serviceImpl) SetDefault(ctx context.Context, id string) (res dto.LocationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetDefault")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user := shared.UserFromContext(ctx)

	found, err := s.repo.SetDefault(ctx, id, repository.Scope(user))
	if err != nil {
		log.Error().Err(err).Msg("failed to set default location")

		return res, fmt.Errorf("failed to set default location: %w", err)
	}

	if !found {
		return res, failure.NotFound(msgLocationNotFound) // nolint:wrapcheck
	}

	location, err := s.repo.Get(ctx, shared.FilterByOwner(id, model.FieldID, user, model.FieldUserID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get location")

		return res, fmt.Errorf("failed to get location: %w", err)
	}

	res.FromModel(location)

	return res, nil
}
