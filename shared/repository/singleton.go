package repository

import (
	"context"
	"errors"
	"fmt"

	"conectapro/shared/constant"
	"conectapro/shared/logger"
	"conectapro/shared/timezone"

	"github.com/jmoiron/sqlx"
)

var errNotOwned = errors.New("resource not owned")

// DefaultScope names the partition inside which at most one row may carry the default flag.
type DefaultScope struct {
	OwnerColumn string
	OwnerID     string
	FlagColumn  string
	IDColumn    string
	Actor       string
}

func (d DefaultScope) lockKey(table string) string {
	return table + "/" + d.OwnerID
}

// InsertWithDefault inserts model and, when makeDefault is set, demotes every sibling
// in the same transaction. Writers of one partition are serialized by an advisory lock.
func (repo *Repository[T]) InsertWithDefault(ctx context.Context, model T, scope DefaultScope, makeDefault bool) (err error) {
	ctx, otelScope := repo.newScope(ctx, "InsertWithDefault")
	defer otelScope.End()
	defer func() { otelScope.TraceIfError(err) }()

	return repo.db.WithTransaction(ctx, func(tx *sqlx.Tx) error { //nolint:wrapcheck
		if err := repo.lockPartition(ctx, tx, scope); err != nil {
			return err
		}

		if makeDefault {
			if _, err := repo.demoteSiblings(ctx, tx, scope, ""); err != nil {
				return err
			}
		}

		return repo.insert(ctx, tx, model)
	})
}

// SetDefault makes id the only default row of its partition. It reports false when
// id does not exist inside the partition, leaving the partition untouched.
func (repo *Repository[T]) SetDefault(ctx context.Context, id string, scope DefaultScope) (found bool, err error) {
	ctx, otelScope := repo.newScope(ctx, "SetDefault")
	defer otelScope.End()
	defer func() { otelScope.TraceIfError(err) }()

	err = repo.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := repo.lockPartition(ctx, tx, scope); err != nil {
			return err
		}

		if _, err := repo.demoteSiblings(ctx, tx, scope, id); err != nil {
			return err
		}

		query := fmt.Sprintf(
			"UPDATE %s SET %s = TRUE, %s = :now, %s = :actor WHERE %s = :id AND %s = :owner",
			repo.table, scope.FlagColumn, constant.FieldModifiedAt, constant.FieldModifiedBy, scope.IDColumn, scope.OwnerColumn,
		)
		otelScope.SetAttribute(constant.OtelQueryAttributeKey, query)

		res, err := tx.NamedExecContext(ctx, query, map[string]any{
			"now":   timezone.Now(),
			"actor": scope.Actor,
			"id":    id,
			"owner": scope.OwnerID,
		})
		if err != nil {
			logger.ErrorWithStack(err)

			return fmt.Errorf("failed to promote default (%s): %w", repo.entitas, err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read affected rows (%s): %w", repo.entitas, err)
		}

		if affected == 0 {
			return errNotOwned
		}

		return nil
	})

	if errors.Is(err, errNotOwned) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	return true, nil
}

func (repo *Repository[T]) lockPartition(ctx context.Context, tx *sqlx.Tx, scope DefaultScope) error {
	if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", scope.lockKey(repo.table)); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to lock default partition (%s): %w", repo.entitas, err)
	}

	return nil
}

// demoteSiblings clears the flag on every row of the partition except keep.
func (repo *Repository[T]) demoteSiblings(ctx context.Context, tx *sqlx.Tx, scope DefaultScope, keep string) (int64, error) {
	query := fmt.Sprintf(
		"UPDATE %s SET %s = FALSE, %s = :now, %s = :actor WHERE %s = :owner AND %s AND %s <> :keep",
		repo.table, scope.FlagColumn, constant.FieldModifiedAt, constant.FieldModifiedBy, scope.OwnerColumn, scope.FlagColumn, scope.IDColumn,
	)

	res, err := tx.NamedExecContext(ctx, query, map[string]any{
		"now":   timezone.Now(),
		"actor": scope.Actor,
		"owner": scope.OwnerID,
		"keep":  keep,
	})
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to demote defaults (%s): %w", repo.entitas, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows (%s): %w", repo.entitas, err)
	}

	return affected, nil
}
