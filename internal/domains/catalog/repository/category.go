package repository

//go:generate go run go.uber.org/mock/mockgen -source=./category.go -destination=../mocks/category_mock.go -package=mocks

import (
	"context"

	"conectapro/infras/otel"
	"conectapro/infras/postgres"
	"conectapro/internal/domains/catalog/model"
	gDto "conectapro/shared/dto"
	gRepo "conectapro/shared/repository"
)

type Category interface {
	Insert(ctx context.Context, model model.Category) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Category, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Category, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type categoryRepository struct {
	gRepo.Repository[model.Category]
	db   *postgres.Connection
	otel otel.Otel
}

func NewCategory(db *postgres.Connection, otel otel.Otel) Category {
	return &categoryRepository{
		Repository: gRepo.NewRepository[model.Category](model.CategoryEntityName, model.CategoryTableName, model.FieldCategoryID, db, otel),
		db:         db,
		otel:       otel,
	}
}
