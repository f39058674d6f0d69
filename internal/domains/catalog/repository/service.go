package repository

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"

	"conectapro/infras/otel"
	"conectapro/infras/postgres"
	"conectapro/internal/domains/catalog/model"
	gDto "conectapro/shared/dto"
	gRepo "conectapro/shared/repository"
)

type Service interface {
	Insert(ctx context.Context, model model.Service) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Service, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	GetView(ctx context.Context, filter gDto.FilterGroup) (model.ServiceView, error)
	GetViews(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.ServiceView, error)
	CountViews(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type serviceRepository struct {
	gRepo.Repository[model.Service]
	views gRepo.Repository[model.ServiceView]
	db    *postgres.Connection
	otel  otel.Otel
}

func NewService(db *postgres.Connection, otel otel.Otel) Service {
	return &serviceRepository{
		Repository: gRepo.NewRepository[model.Service](model.ServiceEntityName, model.ServiceTableName, model.FieldID, db, otel),
		views:      gRepo.NewRepository[model.ServiceView](model.ServiceEntityName, model.ServiceTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *serviceRepository) GetView(ctx context.Context, filter gDto.FilterGroup) (model.ServiceView, error) {
	return repo.views.Get(ctx, filter) //nolint:wrapcheck
}

func (repo *serviceRepository) GetViews(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.ServiceView, error) {
	return repo.views.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (repo *serviceRepository) CountViews(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return repo.views.Count(ctx, filter) //nolint:wrapcheck
}

// SearchFilter matches q against title or description, case insensitive.
func SearchFilter(q string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorOr,
		Filters: []any{
			gDto.Filter{ArgName: "q_title", Field: model.FieldTitle, Value: q, Operator: gDto.FilterOperatorLike, Table: model.ServiceTableName},
			gDto.Filter{ArgName: "q_description", Field: model.FieldDescription, Value: q, Operator: gDto.FilterOperatorLike, Table: model.ServiceTableName},
		},
	}
}
