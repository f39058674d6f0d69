package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"strings"

	"conectapro/infras/otel"
	"conectapro/infras/postgres"
	"conectapro/internal/domains/servicerequest/model"
	"conectapro/shared/constant"
	gDto "conectapro/shared/dto"
	"conectapro/shared/logger"
	gRepo "conectapro/shared/repository"
)

var ErrUnknownEvent = errors.New("unknown lifecycle event")

type ServiceRequest interface {
	Insert(ctx context.Context, model model.ServiceRequest) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.ServiceRequest, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ServiceRequest, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Transition(ctx context.Context, change model.Change) (bool, error)
	GetDetail(ctx context.Context, filter gDto.FilterGroup) (model.Detail, error)
	GetDetails(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Detail, error)
	CountDetails(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.ServiceRequest]
	details gRepo.Repository[model.Detail]
	db      *postgres.Connection
	otel    otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) ServiceRequest {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.ServiceRequest](model.EntityName, model.TableName, model.FieldID, db, otel),
		details:    gRepo.NewRepository[model.Detail](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Transition applies change in a single conditional UPDATE guarded by id, owner and the
// statuses the event may leave from. It reports whether a row moved.
func (repo *repositoryImpl) Transition(ctx context.Context, change model.Change) (moved bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".service_request.Transition")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	transition, ok := model.TransitionFor(change.Event)
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownEvent, change.Event)
	}

	sets := []string{
		model.FieldStatus + " = :next_status",
		constant.FieldModifiedAt + " = :now",
		constant.FieldModifiedBy + " = :actor",
	}
	args := map[string]any{
		"next_status": transition.To,
		"now":         change.At,
		"actor":       change.Actor,
	}

	if change.Reason != "" {
		sets = append(sets, model.FieldRejectionReason+" = :reason")
		args["reason"] = change.Reason
	}

	if change.Note != "" {
		sets = append(sets, model.FieldNotes+` = CONCAT_WS(E'\n', NULLIF(`+model.FieldNotes+`, ''), :note)`)
		args["note"] = change.Note
	}

	where, whereArgs := repo.BuildWhereClause(ctx, guard(change, transition))
	maps.Copy(args, whereArgs)

	query := fmt.Sprintf("UPDATE %s SET %s %s", model.TableName, strings.Join(sets, ", "), where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	res, err := repo.db.Write.NamedExecContext(ctx, query, args)
	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to transition service request: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected == 1, nil
}

func guard(change model.Change, transition model.Transition) gDto.FilterGroup {
	from := make([]string, len(transition.From))
	for i, status := range transition.From {
		from[i] = status.String()
	}

	filters := []any{
		gDto.Filter{Field: model.FieldID, Value: change.ID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		gDto.Filter{Field: model.FieldStatus, Value: from, Operator: gDto.FilterOperatorIn, Table: model.TableName},
	}

	if change.OwnerColumn != "" {
		filters = append(filters, gDto.Filter{
			ArgName:  "owner",
			Field:    change.OwnerColumn,
			Value:    change.OwnerID,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	return gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd, Filters: filters}
}

func (repo *repositoryImpl) GetDetail(ctx context.Context, filter gDto.FilterGroup) (model.Detail, error) {
	return repo.details.Get(ctx, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetDetails(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Detail, error) {
	return repo.details.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) CountDetails(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return repo.details.Count(ctx, filter) //nolint:wrapcheck
}
