package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adboard/internal/core/apperror"
)

func TestCategoryListQuery(t *testing.T) {
	repo := NewCategoryRepo(nil)

	t.Run("no filter", func(t *testing.T) {
		sql, args, err := repo.listQuery("").ToSql()
		require.NoError(t, err)
		assert.Equal(t, "SELECT id, name FROM categories", sql)
		assert.Empty(t, args)
	})

	t.Run("exact name filter", func(t *testing.T) {
		sql, args, err := repo.listQuery("transport").ToSql()
		require.NoError(t, err)
		assert.Equal(t, "SELECT id, name FROM categories WHERE name = $1", sql)
		assert.Equal(t, []interface{}{"transport"}, args)
	})
}

func TestAdListQuery(t *testing.T) {
	repo := NewAdRepo(nil)

	t.Run("no filter", func(t *testing.T) {
		sql, args, err := repo.listQuery("").ToSql()
		require.NoError(t, err)
		assert.Equal(t,
			"SELECT id, name, author_id, price, description, category_id, is_published, image FROM ads",
			sql)
		assert.Empty(t, args)
	})

	t.Run("exact name filter", func(t *testing.T) {
		sql, args, err := repo.listQuery("bike").ToSql()
		require.NoError(t, err)
		assert.Equal(t,
			"SELECT id, name, author_id, price, description, category_id, is_published, image FROM ads WHERE name = $1",
			sql)
		assert.Equal(t, []interface{}{"bike"}, args)
	})
}

func TestMapPgError(t *testing.T) {
	wrap := func(pgErr *pgconn.PgError) error {
		return fmt.Errorf("insert: %w", pgErr)
	}

	t.Run("foreign key violation", func(t *testing.T) {
		err := mapPgError(wrap(&pgconn.PgError{Code: "23503", ConstraintName: "ads_author_id_fkey"}))

		appErr, ok := apperror.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeReferential, appErr.Code)
		assert.Contains(t, appErr.Fields, "author_id")
	})

	t.Run("unique violation", func(t *testing.T) {
		err := mapPgError(wrap(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}))

		appErr, ok := apperror.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeDuplicate, appErr.Code)
		assert.Contains(t, appErr.Fields, "username")
	})

	t.Run("unknown constraint passes through", func(t *testing.T) {
		orig := wrap(&pgconn.PgError{Code: "23505", ConstraintName: "something_else"})
		err := mapPgError(orig)
		assert.Equal(t, orig, err)
		assert.False(t, apperror.IsAppError(err))
	})

	t.Run("non-pg error passes through", func(t *testing.T) {
		orig := errors.New("connection reset")
		assert.Equal(t, orig, mapPgError(orig))
	})
}
