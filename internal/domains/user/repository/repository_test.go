package repository_test

import (
	"context"
	"regexp"
	"testing"

	"conectapro/infras/otel/mocks"
	"conectapro/infras/postgres"
	"conectapro/internal/domains/user/model"
	"conectapro/internal/domains/user/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const phone = "+51987654321"

func newRepo(t *testing.T) (repository.User, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return repository.New(postgres.NewFromDB(sqlx.NewDb(db, "postgres")), mocks.NewOtel()), mock
}

func TestGetByPhone(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectPrepare(regexp.QuoteMeta("SELECT users.id, users.status FROM users")).
		ExpectQuery().
		WithArgs(phone).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).AddRow("user-1", model.StatusActive))

	user, err := repo.GetByPhone(context.Background(), phone, model.FieldID, model.FieldStatus)

	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, model.StatusActive, user.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByPhoneUnknown(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectPrepare("users.phone_number = \\$1").
		ExpectQuery().
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	user, err := repo.GetByPhone(context.Background(), phone, model.FieldID)

	require.NoError(t, err)
	assert.Empty(t, user.ID)
}

func TestPhoneTaken(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectPrepare(regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM users")).
		ExpectQuery().
		WithArgs(phone).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	taken, err := repo.PhoneTaken(context.Background(), phone)

	require.NoError(t, err)
	assert.True(t, taken)
	assert.NoError(t, mock.ExpectationsWereMet())
}
