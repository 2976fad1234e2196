package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"adboard/internal/core/apperror"
	"adboard/internal/domain"
	"adboard/internal/domain/ad"
)

var _ ad.Repository = (*AdRepo)(nil)

var adCols = []string{"id", "name", "author_id", "price", "description", "category_id", "is_published", "image"}

// AdRepo is the PostgreSQL repository for ads.
type AdRepo struct {
	repoBase
}

// NewAdRepo creates a new ad repository.
func NewAdRepo(txm *TxManager) *AdRepo {
	return &AdRepo{repoBase: repoBase{txm: txm, tableName: "ads"}}
}

func (r *AdRepo) listQuery(name string) squirrel.SelectBuilder {
	q := r.Builder().
		Select(adCols...).
		From(r.tableName)
	if name != "" {
		q = q.Where(squirrel.Eq{"name": name})
	}
	return q
}

// List retrieves one page of ads, most expensive first. A non-empty
// name in the query narrows the result to exact matches.
func (r *AdRepo) List(ctx context.Context, lq domain.ListQuery) (domain.PageResult[*ad.Ad], error) {
	return listPage[*ad.Ad](ctx, r.repoBase, r.listQuery(lq.Name), "price DESC, id ASC", lq)
}

// GetByID retrieves an ad by ID.
func (r *AdRepo) GetByID(ctx context.Context, id int64) (*ad.Ad, error) {
	q := r.Builder().
		Select(adCols...).
		From(r.tableName).
		Where(squirrel.Eq{"id": id}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var a ad.Ad
	if err := pgxscan.Get(ctx, r.Querier(ctx), &a, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound(r.tableName, id)
		}
		return nil, fmt.Errorf("get ad by id: %w", err)
	}
	return &a, nil
}

// Create inserts an ad and fills in its generated ID.
func (r *AdRepo) Create(ctx context.Context, a *ad.Ad) (*ad.Ad, error) {
	q := r.Builder().
		Insert(r.tableName).
		Columns("name", "author_id", "price", "description", "category_id", "is_published", "image").
		Values(a.Name, a.AuthorID, a.Price, a.Description, a.CategoryID, a.IsPublished, a.Image).
		Suffix("RETURNING id")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	if err := r.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&a.ID); err != nil {
		return nil, mapPgError(fmt.Errorf("insert ad: %w", err))
	}
	return a, nil
}

// Update persists all ad fields.
func (r *AdRepo) Update(ctx context.Context, a *ad.Ad) (*ad.Ad, error) {
	q := r.Builder().
		Update(r.tableName).
		Set("name", a.Name).
		Set("author_id", a.AuthorID).
		Set("price", a.Price).
		Set("description", a.Description).
		Set("category_id", a.CategoryID).
		Set("is_published", a.IsPublished).
		Set("image", a.Image).
		Where(squirrel.Eq{"id": a.ID})

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	result, err := r.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return nil, mapPgError(fmt.Errorf("update ad: %w", err))
	}
	if result.RowsAffected() == 0 {
		return nil, apperror.NewNotFound(r.tableName, a.ID)
	}
	return a, nil
}

// Delete removes an ad by ID.
func (r *AdRepo) Delete(ctx context.Context, id int64) error {
	q := r.Builder().
		Delete(r.tableName).
		Where(squirrel.Eq{"id": id})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete ad: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound(r.tableName, id)
	}
	return nil
}
