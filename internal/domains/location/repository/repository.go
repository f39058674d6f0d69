package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"conectapro/infras/otel"
	"conectapro/infras/postgres"
	"conectapro/internal/domains/location/model"
	gDto "conectapro/shared/dto"
	gRepo "conectapro/shared/repository"
)

type Location interface {
	InsertWithDefault(ctx context.Context, model model.Location, scope gRepo.DefaultScope, makeDefault bool) error
	SetDefault(ctx context.Context, id string, scope gRepo.DefaultScope) (bool, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Location, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Location, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Location]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Location {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Location](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Scope is the default partition of one user's locations.
func Scope(user string) gRepo.DefaultScope {
	return gRepo.DefaultScope{
		OwnerColumn: model.FieldUserID,
		OwnerID:     user,
		FlagColumn:  model.FieldIsDefault,
		IDColumn:    model.FieldID,
		Actor:       user,
	}
}
