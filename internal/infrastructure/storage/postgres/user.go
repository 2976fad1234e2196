package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"adboard/internal/core/apperror"
	"adboard/internal/domain"
	"adboard/internal/domain/location"
	"adboard/internal/domain/user"
)

// Compile-time check.
var _ user.Repository = (*UserRepo)(nil)

var userCols = []string{"id", "username", "first_name", "last_name", "role", "age", "password_hash"}

// UserRepo persists users together with their location links.
// Reads load location names and the published-ad count in batched
// queries (one per relation per page, never one per row).
type UserRepo struct {
	repoBase
	locations location.Repository
}

// NewUserRepo creates a new user repository.
func NewUserRepo(txm *TxManager, locations location.Repository) *UserRepo {
	return &UserRepo{
		repoBase:  repoBase{txm: txm, tableName: "users"},
		locations: locations,
	}
}

// List retrieves one page of users ordered by username.
func (r *UserRepo) List(ctx context.Context, lq domain.ListQuery) (domain.PageResult[*user.User], error) {
	q := r.Builder().
		Select(userCols...).
		From(r.tableName)

	result, err := listPage[*user.User](ctx, r.repoBase, q, "username ASC", lq)
	if err != nil {
		return result, err
	}

	if err := r.loadRelations(ctx, result.Items); err != nil {
		return result, err
	}
	return result, nil
}

// GetByID retrieves a user by ID with locations and published-ad count.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*user.User, error) {
	q := r.Builder().
		Select(userCols...).
		From(r.tableName).
		Where(squirrel.Eq{"id": id}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var u user.User
	if err := pgxscan.Get(ctx, r.Querier(ctx), &u, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound(r.tableName, id)
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}

	if err := r.loadRelations(ctx, []*user.User{&u}); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a user and links its locations.
func (r *UserRepo) Create(ctx context.Context, u *user.User) (*user.User, error) {
	q := r.Builder().
		Insert(r.tableName).
		Columns("username", "first_name", "last_name", "role", "age", "password_hash").
		Values(u.Username, u.FirstName, u.LastName, u.Role, u.Age, u.PasswordHash).
		Suffix("RETURNING id")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	if err := r.Querier(ctx).QueryRow(ctx, sql, args...).Scan(&u.ID); err != nil {
		return nil, mapPgError(fmt.Errorf("insert user: %w", err))
	}

	if err := r.linkLocations(ctx, u); err != nil {
		return nil, err
	}

	if err := r.loadRelations(ctx, []*user.User{u}); err != nil {
		return nil, err
	}
	return u, nil
}

// Update persists all user fields and unions new location links.
// Existing location memberships are never removed.
func (r *UserRepo) Update(ctx context.Context, u *user.User) (*user.User, error) {
	q := r.Builder().
		Update(r.tableName).
		Set("username", u.Username).
		Set("first_name", u.FirstName).
		Set("last_name", u.LastName).
		Set("role", u.Role).
		Set("age", u.Age).
		Set("password_hash", u.PasswordHash).
		Where(squirrel.Eq{"id": u.ID})

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	result, err := r.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return nil, mapPgError(fmt.Errorf("update user: %w", err))
	}
	if result.RowsAffected() == 0 {
		return nil, apperror.NewNotFound(r.tableName, u.ID)
	}

	if err := r.linkLocations(ctx, u); err != nil {
		return nil, err
	}

	if err := r.loadRelations(ctx, []*user.User{u}); err != nil {
		return nil, err
	}
	return u, nil
}

// Delete removes a user; location links go with it (ON DELETE CASCADE).
func (r *UserRepo) Delete(ctx context.Context, id int64) error {
	q := r.Builder().
		Delete(r.tableName).
		Where(squirrel.Eq{"id": id})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.Querier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound(r.tableName, id)
	}
	return nil
}

// linkLocations get-or-creates every location name on the user and adds
// the membership links. Links are additive; conflicts mean the link
// already exists and are ignored.
func (r *UserRepo) linkLocations(ctx context.Context, u *user.User) error {
	for _, name := range u.Locations {
		loc, err := r.locations.GetOrCreate(ctx, name)
		if err != nil {
			return err
		}

		const linkSQL = `
			INSERT INTO user_locations (user_id, location_id) VALUES ($1, $2)
			ON CONFLICT DO NOTHING`
		if _, err := r.Querier(ctx).Exec(ctx, linkSQL, u.ID, loc.ID); err != nil {
			return fmt.Errorf("link location %q to user %d: %w", name, u.ID, err)
		}
	}
	return nil
}

// loadRelations attaches location names and published-ad counts to a
// page of users using one query per relation.
func (r *UserRepo) loadRelations(ctx context.Context, users []*user.User) error {
	if len(users) == 0 {
		return nil
	}

	byID := make(map[int64]*user.User, len(users))
	ids := make([]int64, 0, len(users))
	for _, u := range users {
		u.Locations = []string{}
		u.TotalAds = 0
		byID[u.ID] = u
		ids = append(ids, u.ID)
	}

	const locationsSQL = `
		SELECT ul.user_id, l.name
		FROM user_locations ul
		JOIN locations l ON l.id = ul.location_id
		WHERE ul.user_id = ANY($1)
		ORDER BY l.name`

	rows, err := r.Querier(ctx).Query(ctx, locationsSQL, ids)
	if err != nil {
		return fmt.Errorf("load user locations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var userID int64
		var name string
		if err := rows.Scan(&userID, &name); err != nil {
			return fmt.Errorf("scan user location: %w", err)
		}
		if u, ok := byID[userID]; ok {
			u.Locations = append(u.Locations, name)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate user locations: %w", err)
	}

	const countsSQL = `
		SELECT author_id, COUNT(*)
		FROM ads
		WHERE is_published AND author_id = ANY($1)
		GROUP BY author_id`

	countRows, err := r.Querier(ctx).Query(ctx, countsSQL, ids)
	if err != nil {
		return fmt.Errorf("load published ad counts: %w", err)
	}
	defer countRows.Close()

	for countRows.Next() {
		var authorID, count int64
		if err := countRows.Scan(&authorID, &count); err != nil {
			return fmt.Errorf("scan published ad count: %w", err)
		}
		if u, ok := byID[authorID]; ok {
			u.TotalAds = count
		}
	}
	if err := countRows.Err(); err != nil {
		return fmt.Errorf("iterate published ad counts: %w", err)
	}

	return nil
}
