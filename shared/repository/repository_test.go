package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"conectapro/infras/otel/mocks"
	"conectapro/infras/postgres"
	"conectapro/shared"
	"conectapro/shared/dto"
	"conectapro/shared/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type address struct {
	ID        string `db:"id"`
	UserID    string `db:"user_id"`
	Label     string `db:"label"`
	IsDefault bool   `db:"is_default"`
}

type addressView struct {
	address
	OwnerName string `db:"owner_name" table:"owners" column:"full_name"`
}

func (addressView) GetJoinQuery() string {
	return "JOIN users AS owners ON owners.id = addresses.user_id"
}

func newRepo[T any](t *testing.T) (repository.Repository[T], sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	conn := postgres.NewFromDB(sqlx.NewDb(db, "postgres"))

	return repository.NewRepository[T]("address", "addresses", "id", conn, mocks.NewOtel()), mock
}

func scope(owner string) repository.DefaultScope {
	return repository.DefaultScope{
		OwnerColumn: "user_id",
		OwnerID:     owner,
		FlagColumn:  "is_default",
		IDColumn:    "id",
		Actor:       owner,
	}
}

func TestInsertColumnsSkipJoinedFields(t *testing.T) {
	repo, _ := newRepo[addressView](t)

	assert.Equal(t, []string{"id", "user_id", "label", "is_default"}, repo.InsertColumns)
}

func TestGetAllQualifiesOrdering(t *testing.T) {
	repo, mock := newRepo[addressView](t)

	mock.ExpectPrepare(regexp.QuoteMeta("JOIN users AS owners ON owners.id = addresses.user_id")).
		ExpectQuery().
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "label", "is_default", "owner_name"}).
			AddRow("addr-1", "user-1", "Casa", true, "Ana"))

	params := dto.QueryParams{Page: 1, Limit: 5, SortBy: "created_at", SortDir: dto.SortDirDesc}

	rows, err := repo.GetAll(context.Background(), params, shared.FilterByID("user-1", "user_id", "addresses"))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Ana", rows[0].OwnerName)
	assert.True(t, rows[0].IsDefault)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetReturnsZeroOnNoRows(t *testing.T) {
	repo, mock := newRepo[address](t)

	mock.ExpectPrepare("SELECT (.+) FROM addresses").
		ExpectQuery().
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "label", "is_default"}))

	row, err := repo.Get(context.Background(), shared.FilterByID("missing", "id", "addresses"))
	require.NoError(t, err)
	assert.Empty(t, row.ID)
}

func TestInsertWithDefaultDemotesSiblings(t *testing.T) {
	repo, mock := newRepo[address](t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("SELECT pg_advisory_xact_lock(hashtext($1))")).
		WithArgs("addresses/user-1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE addresses SET is_default = FALSE")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO addresses (id, user_id, label, is_default)")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.InsertWithDefault(context.Background(), address{ID: "addr-2", UserID: "user-1", Label: "Oficina", IsDefault: true}, scope("user-1"), true)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertWithoutDefaultLeavesSiblings(t *testing.T) {
	repo, mock := newRepo[address](t)

	mock.ExpectBegin()
	mock.ExpectExec("pg_advisory_xact_lock").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO addresses").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.InsertWithDefault(context.Background(), address{ID: "addr-3", UserID: "user-1", Label: "Playa"}, scope("user-1"), false)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertWithDefaultRollsBackOnFailure(t *testing.T) {
	repo, mock := newRepo[address](t)

	mock.ExpectBegin()
	mock.ExpectExec("pg_advisory_xact_lock").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("UPDATE addresses SET is_default = FALSE").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO addresses").WillReturnError(errors.New("insert failed"))
	mock.ExpectRollback()

	err := repo.InsertWithDefault(context.Background(), address{ID: "addr-4", UserID: "user-1", Label: "X", IsDefault: true}, scope("user-1"), true)

	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetDefault(t *testing.T) {
	t.Run("owned", func(t *testing.T) {
		repo, mock := newRepo[address](t)

		mock.ExpectBegin()
		mock.ExpectExec("pg_advisory_xact_lock").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(regexp.QuoteMeta("UPDATE addresses SET is_default = FALSE")).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta("UPDATE addresses SET is_default = TRUE")).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		found, err := repo.SetDefault(context.Background(), "addr-1", scope("user-1"))

		require.NoError(t, err)
		assert.True(t, found)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not owned rolls back the demotion", func(t *testing.T) {
		repo, mock := newRepo[address](t)

		mock.ExpectBegin()
		mock.ExpectExec("pg_advisory_xact_lock").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(regexp.QuoteMeta("UPDATE addresses SET is_default = FALSE")).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta("UPDATE addresses SET is_default = TRUE")).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		found, err := repo.SetDefault(context.Background(), "addr-of-other-user", scope("user-1"))

		require.NoError(t, err)
		assert.False(t, found)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
