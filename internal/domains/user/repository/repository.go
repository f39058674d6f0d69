package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"conectapro/infras/otel"
	"conectapro/infras/postgres"
	"conectapro/internal/domains/user/model"
	gDto "conectapro/shared/dto"
	gRepo "conectapro/shared/repository"
)

type User interface {
	Insert(ctx context.Context, model model.User) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.User, error)
	GetByPhone(ctx context.Context, phone string, columns ...string) (model.User, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.User, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	PhoneTaken(ctx context.Context, phone string) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.User]
}

func New(db *postgres.Connection, otel otel.Otel) User {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.User](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

// Phone numbers are unique across accounts, whatever their status.
func byPhone(phone string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Table: model.TableName, Field: model.FieldPhoneNumber, Value: phone, Operator: gDto.FilterOperatorEq},
		},
	}
}

// GetByPhone returns the zero User when no account uses phone.
func (r *repositoryImpl) GetByPhone(ctx context.Context, phone string, columns ...string) (model.User, error) {
	return r.Get(ctx, byPhone(phone), columns...)
}

func (r *repositoryImpl) PhoneTaken(ctx context.Context, phone string) (bool, error) {
	return r.Exist(ctx, byPhone(phone))
}
