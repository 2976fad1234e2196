package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"adboard/internal/domain/location"
)

// Compile-time check.
var _ location.Repository = (*LocationRepo)(nil)

// LocationRepo persists locations.
type LocationRepo struct {
	repoBase
}

// NewLocationRepo creates a new location repository.
func NewLocationRepo(txm *TxManager) *LocationRepo {
	return &LocationRepo{repoBase{txm: txm, tableName: "locations"}}
}

// GetOrCreate looks a location up by name, inserting it if absent.
// The upsert leans on the UNIQUE(name) constraint, so two concurrent
// calls with the same name converge on a single row.
func (r *LocationRepo) GetOrCreate(ctx context.Context, name string) (*location.Location, error) {
	// The do-nothing arm returns no row, so fall back to a plain select.
	const insertSQL = `
		INSERT INTO locations (name) VALUES ($1)
		ON CONFLICT (name) DO NOTHING
		RETURNING id`

	loc := &location.Location{Name: name}
	err := r.Querier(ctx).QueryRow(ctx, insertSQL, name).Scan(&loc.ID)
	if err == nil {
		return loc, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("insert location %q: %w", name, err)
	}

	const selectSQL = `SELECT id FROM locations WHERE name = $1`
	if err := r.Querier(ctx).QueryRow(ctx, selectSQL, name).Scan(&loc.ID); err != nil {
		return nil, fmt.Errorf("get location %q: %w", name, err)
	}
	return loc, nil
}
