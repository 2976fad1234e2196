package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgconn"

	"adboard/internal/core/apperror"
	"adboard/internal/domain"
)

// repoBase provides the helpers shared by all repositories.
type repoBase struct {
	txm       *TxManager
	tableName string
}

// Builder returns a new squirrel builder with PostgreSQL placeholder format.
func (r repoBase) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Querier returns the active transaction or the pool.
func (r repoBase) Querier(ctx context.Context) Querier {
	return r.txm.GetQuerier(ctx)
}

// countRows counts the rows the given SELECT would return, pre-pagination.
func (r repoBase) countRows(ctx context.Context, q squirrel.SelectBuilder) (int64, error) {
	countQ := r.Builder().
		Select("COUNT(*)").
		FromSelect(q, "sub")

	sql, args, err := countQ.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var total int64
	if err := r.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count %s: %w", r.tableName, err)
	}
	return total, nil
}

// listPage runs the shared paginated-list query flow: count the filtered
// set, resolve the requested page against it (clamping past-the-end pages
// to the last one), then select the page in the given order.
func listPage[T any](ctx context.Context, r repoBase, q squirrel.SelectBuilder, orderBy string, lq domain.ListQuery) (domain.PageResult[T], error) {
	result := domain.PageResult[T]{Items: []T{}}

	total, err := r.countRows(ctx, q)
	if err != nil {
		return result, err
	}

	offset, numPages := domain.ResolvePage(total, lq.Page, lq.PageSize)
	result.Total = total
	result.NumPages = numPages

	if total == 0 {
		return result, nil
	}

	q = q.OrderBy(orderBy).
		Limit(uint64(lq.PageSize)).
		Offset(offset)

	sql, args, err := q.ToSql()
	if err != nil {
		return result, fmt.Errorf("build list query: %w", err)
	}

	if err := pgxscan.Select(ctx, r.Querier(ctx), &result.Items, sql, args...); err != nil {
		return result, fmt.Errorf("list %s: %w", r.tableName, err)
	}

	return result, nil
}

// Constraint names assigned by the schema, used to translate low-level
// integrity errors into field-level ones.
var constraintFields = map[string]string{
	"ads_author_id_fkey":   "author_id",
	"ads_category_id_fkey": "category_id",
	"users_username_key":   "username",
	"locations_name_key":   "name",
}

// mapPgError translates PostgreSQL integrity violations into structured
// errors; anything unrecognized passes through untouched.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	field, known := constraintFields[pgErr.ConstraintName]
	if !known {
		return err
	}

	switch pgErr.Code {
	case "23503": // foreign_key_violation
		return apperror.NewReferential(field).WithCause(err)
	case "23505": // unique_violation
		return apperror.NewDuplicate(field).WithCause(err)
	}
	return err
}
