package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"conectapro/infras/otel/mocks"
	"conectapro/infras/postgres"
	"conectapro/internal/domains/servicerequest/model"
	"conectapro/internal/domains/servicerequest/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) (repository.ServiceRequest, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return repository.New(postgres.NewFromDB(sqlx.NewDb(db, "postgres")), mocks.NewOtel()), mock
}

func TestTransition(t *testing.T) {
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("accept guards owner and pending status and appends the note", func(t *testing.T) {
		repo, mock := newRepo(t)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE service_requests SET status = $1, modified_at = $2, modified_by = $3, notes = CONCAT_WS(E'\\n', NULLIF(notes, ''), $4)")).
			WithArgs(model.StatusAccepted, at, "prov-1", "Provider Note: llego temprano", "req-1", "PENDING_PROVIDER_CONFIRMATION", "prov-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		moved, err := repo.Transition(context.Background(), model.Change{
			ID:          "req-1",
			Event:       model.EventAccept,
			OwnerColumn: model.FieldProviderID,
			OwnerID:     "prov-1",
			Note:        "Provider Note: llego temprano",
			Actor:       "prov-1",
			At:          at,
		})

		require.NoError(t, err)
		assert.True(t, moved)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reject stores the reason", func(t *testing.T) {
		repo, mock := newRepo(t)

		mock.ExpectExec(regexp.QuoteMeta("rejection_reason = $4")).
			WillReturnResult(sqlmock.NewResult(0, 1))

		moved, err := repo.Transition(context.Background(), model.Change{
			ID:          "req-1",
			Event:       model.EventReject,
			OwnerColumn: model.FieldProviderID,
			OwnerID:     "prov-1",
			Reason:      "sin disponibilidad",
			Actor:       "prov-1",
			At:          at,
		})

		require.NoError(t, err)
		assert.True(t, moved)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("complete has no owner guard", func(t *testing.T) {
		repo, mock := newRepo(t)

		mock.ExpectExec(regexp.QuoteMeta("WHERE (service_requests.id = $4 AND service_requests.status IN ($5, $6))")).
			WillReturnResult(sqlmock.NewResult(0, 0))

		moved, err := repo.Transition(context.Background(), model.Change{
			ID:    "req-1",
			Event: model.EventComplete,
			Actor: "system",
			At:    at,
		})

		require.NoError(t, err)
		assert.False(t, moved)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown event", func(t *testing.T) {
		repo, _ := newRepo(t)

		_, err := repo.Transition(context.Background(), model.Change{ID: "req-1", Event: "teleport"})

		assert.ErrorIs(t, err, repository.ErrUnknownEvent)
	})

	t.Run("database error", func(t *testing.T) {
		repo, mock := newRepo(t)

		mock.ExpectExec("UPDATE service_requests").WillReturnError(errors.New("connection reset"))

		_, err := repo.Transition(context.Background(), model.Change{ID: "req-1", Event: model.EventStart, At: at})

		assert.Error(t, err)
	})
}
