package service

import (
	"context"
	"fmt"

	"conectapro/infras/otel"
	catalogService "conectapro/internal/domains/catalog/service"
	"conectapro/internal/domains/home/model/dto"
	locationModel "conectapro/internal/domains/location/model"
	locationDto "conectapro/internal/domains/location/model/dto"
	locationRepo "conectapro/internal/domains/location/repository"
	userModel "conectapro/internal/domains/user/model"
	userDto "conectapro/internal/domains/user/model/dto"
	userRepo "conectapro/internal/domains/user/repository"
	"conectapro/shared"
	"conectapro/shared/constant"
	gDto "conectapro/shared/dto"
	"conectapro/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	msgUserNotFound = "Usuario no encontrado"

	topServices     = 5
	featuredWorkers = 2
)

type Home interface {
	GetHome(ctx context.Context) (dto.HomeResponse, error)
}

type serviceImpl struct {
	users     userRepo.User
	locations locationRepo.Location
	catalog   catalogService.Catalog
	otel      otel.Otel
}

func New(users userRepo.User, locations locationRepo.Location, catalog catalogService.Catalog, otel otel.Otel) Home {
	return &serviceImpl{
		users:     users,
		locations: locations,
		catalog:   catalog,
		otel:      otel,
	}
}

func (s *serviceImpl) GetHome(ctx context.Context) (res dto.HomeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetHome")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	id := shared.UserFromContext(ctx)

	user, err := s.users.Get(ctx, shared.FilterByID(id, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return res, failure.NotFound(msgUserNotFound) // nolint:wrapcheck
	}

	res.User.FromModel(user)

	// default first, then newest, so the first row is the fallback too
	params := gDto.QueryParams{Page: 1, Limit: 1, SortBy: locationModel.OrderDefaultFirst, SortDir: gDto.SortDirDesc}

	locations, err := s.locations.GetAll(ctx, params, shared.FilterByID(id, locationModel.FieldUserID, locationModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get delivery address")

		return res, fmt.Errorf("failed to get delivery address: %w", err)
	}

	if len(locations) > 0 {
		var address locationDto.LocationResponse

		address.FromModel(locations[0])
		res.DeliveryAddress = &address
	}

	if res.Categories, err = s.catalog.GetCategories(ctx); err != nil {
		return res, err //nolint:wrapcheck
	}

	if res.TopServices, err = s.catalog.GetTopServices(ctx, topServices); err != nil {
		return res, err //nolint:wrapcheck
	}

	workers, err := s.users.GetAll(ctx, gDto.QueryParams{
		Page:    1,
		Limit:   featuredWorkers,
		SortBy:  userModel.TableName + "." + userModel.FieldRating + " DESC, " + userModel.TableName + "." + userModel.FieldReviewsCount,
		SortDir: gDto.SortDirDesc,
	}, featuredFilter())
	if err != nil {
		log.Error().Err(err).Msg("failed to get featured workers")

		return res, fmt.Errorf("failed to get featured workers: %w", err)
	}

	res.FeaturedWorkers = userDto.WorkersFromModels(workers)

	return res, nil
}

func featuredFilter() gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: userModel.FieldAccountType, Value: constant.RoleProvider, Operator: gDto.FilterOperatorEq, Table: userModel.TableName},
			gDto.Filter{Field: userModel.FieldStatus, Value: userModel.StatusSuspended, Operator: gDto.FilterOperatorNotEq, Table: userModel.TableName},
		},
	}
}
