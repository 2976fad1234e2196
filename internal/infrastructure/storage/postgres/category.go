package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"adboard/internal/core/apperror"
	"adboard/internal/domain"
	"adboard/internal/domain/category"
)

// Compile-time check.
var _ category.Repository = (*CategoryRepo)(nil)

// CategoryRepo persists categories.
type CategoryRepo struct {
	repoBase
}

// NewCategoryRepo creates a new category repository.
func NewCategoryRepo(txm *TxManager) *CategoryRepo {
	return &CategoryRepo{repoBase{txm: txm, tableName: "categories"}}
}

// listQuery builds the filtered SELECT for the list endpoint.
// The name filter is exact-match equality, not a substring search.
func (r *CategoryRepo) listQuery(name string) squirrel.SelectBuilder {
	q := r.Builder().
		Select("id", "name").
		From(r.tableName)
	if name != "" {
		q = q.Where(squirrel.Eq{"name": name})
	}
	return q
}

// List retrieves one page of categories ordered by name.
func (r *CategoryRepo) List(ctx context.Context, lq domain.ListQuery) (domain.PageResult[*category.Category], error) {
	return listPage[*category.Category](ctx, r.repoBase, r.listQuery(lq.Name), "name ASC", lq)
}

// GetByID retrieves a category by ID.
func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*category.Category, error) {
	q := r.Builder().
		Select("id", "name").
		From(r.tableName).
		Where(squirrel.Eq{"id": id}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var c category.Category
	if err := pgxscan.Get(ctx, r.Querier(ctx), &c, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound(r.tableName, id)
		}
		return nil, fmt.Errorf("get category by id: %w", err)
	}
	return &c, nil
}

// Create inserts a category and returns it with the generated ID.
func (r *CategoryRepo) Create(ctx context.Context, c *category.Category) (*category.Category, error) {
	q := r.Builder().
		Insert(r.tableName).
		Columns("name").
		Values(c.Name).
		Suffix("RETURNING id")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	if err := r.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&c.ID); err != nil {
		return nil, mapPgError(fmt.Errorf("insert category: %w", err))
	}
	return c, nil
}

// Update persists all category fields.
func (r *CategoryRepo) Update(ctx context.Context, c *category.Category) (*category.Category, error) {
	q := r.Builder().
		Update(r.tableName).
		Set("name", c.Name).
		Where(squirrel.Eq{"id": c.ID})

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	result, err := r.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return nil, mapPgError(fmt.Errorf("update category: %w", err))
	}
	if result.RowsAffected() == 0 {
		return nil, apperror.NewNotFound(r.tableName, c.ID)
	}
	return c, nil
}

// Delete removes a category.
func (r *CategoryRepo) Delete(ctx context.Context, id int64) error {
	q := r.Builder().
		Delete(r.tableName).
		Where(squirrel.Eq{"id": id})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return mapPgError(fmt.Errorf("delete category: %w", err))
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound(r.tableName, id)
	}
	return nil
}
