package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"conectapro/infras/otel"
	"conectapro/infras/postgres"
	"conectapro/internal/domains/review/model"
	"conectapro/shared/constant"
	gDto "conectapro/shared/dto"
	"conectapro/shared/logger"
	gRepo "conectapro/shared/repository"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var (
	ErrRequestNotFound     = errors.New("service request not found")
	ErrRequestNotCompleted = errors.New("service request not completed")
	ErrReviewExists        = errors.New("review already exists")
)

const statusCompleted = "COMPLETED"

const (
	lockRequestQuery = `SELECT status, service_id, provider_id FROM service_requests WHERE id = $1 AND client_id = $2 FOR UPDATE`
	existsQuery      = `SELECT EXISTS (SELECT 1 FROM reviews WHERE service_request_id = $1)`

	// the exact sum is kept next to the rounded average, and both move in one statement
	// so concurrent reviews of one service never lose an update
	rateServiceQuery = `UPDATE services SET rating_sum = rating_sum + $1, reviews_count = reviews_count + 1, ` +
		`rating = ROUND((rating_sum + $1)::numeric / (reviews_count + 1), 2), modified_at = $2, modified_by = $3 WHERE id = $4`
	rateProviderQuery = `UPDATE users SET rating_sum = rating_sum + $1, reviews_count = reviews_count + 1, ` +
		`rating = ROUND((rating_sum + $1)::numeric / (reviews_count + 1), 2), modified_at = $2, modified_by = $3 WHERE id = $4`
)

type Review interface {
	Create(ctx context.Context, review model.Review, clientID string) (model.Review, error)
	GetViews(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.View, error)
	CountViews(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Review]
	views gRepo.Repository[model.View]
	db    *postgres.Connection
	otel  otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Review {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Review](model.EntityName, model.TableName, model.FieldID, db, otel),
		views:      gRepo.NewRepository[model.View](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type lockedRequest struct {
	Status     string `db:"status"`
	ServiceID  string `db:"service_id"`
	ProviderID string `db:"provider_id"`
}

// Create stores review for a completed request of clientID and folds its ratings into the
// service and provider aggregates, all in one transaction holding the request row lock.
func (repo *repositoryImpl) Create(ctx context.Context, review model.Review, clientID string) (res model.Review, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".review.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = repo.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		var request lockedRequest

		if err := tx.GetContext(ctx, &request, lockRequestQuery, review.ServiceRequestID, clientID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrRequestNotFound
			}

			logger.ErrorWithStack(err)

			return fmt.Errorf("failed to lock service request: %w", err)
		}

		if request.Status != statusCompleted {
			return ErrRequestNotCompleted
		}

		var exists bool
		if err := tx.GetContext(ctx, &exists, existsQuery, review.ServiceRequestID); err != nil {
			logger.ErrorWithStack(err)

			return fmt.Errorf("failed to check review: %w", err)
		}

		if exists {
			return ErrReviewExists
		}

		review.ServiceID = request.ServiceID
		review.ProviderID = request.ProviderID

		if err := repo.InsertTx(ctx, tx, review); err != nil {
			return err //nolint:wrapcheck
		}

		if err := rate(ctx, tx, rateServiceQuery, review.ServiceRating, review.ServiceID, review); err != nil {
			return err
		}

		return rate(ctx, tx, rateProviderQuery, review.ProviderRating, review.ProviderID, review)
	})
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == constant.PqErrorCodeUniqueViolation {
			return res, ErrReviewExists
		}

		return res, err //nolint:wrapcheck
	}

	return review, nil
}

func rate(ctx context.Context, tx *sqlx.Tx, query string, rating int, id string, review model.Review) error {
	res, err := tx.ExecContext(ctx, query, rating, review.CreatedAt, review.AuthorID, id)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to update rating: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}

	if affected != 1 {
		return fmt.Errorf("failed to update rating of %s: %w", id, sql.ErrNoRows)
	}

	return nil
}

func (repo *repositoryImpl) GetViews(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.View, error) {
	return repo.views.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) CountViews(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return repo.views.Count(ctx, filter) //nolint:wrapcheck
}
