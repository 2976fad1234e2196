package dto

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adboard/internal/domain/ad"
	"adboard/internal/domain/category"
	"adboard/internal/domain/user"
)

func storedAd() *ad.Ad {
	a := ad.New("bike", 7, decimal.NewFromInt(150), "city bike", 3, true)
	a.ID = 1
	return a
}

func TestPatchAdApplyTo(t *testing.T) {
	t.Run("present fields overwrite", func(t *testing.T) {
		var req PatchAdRequest
		require.NoError(t, json.Unmarshal([]byte(`{"name":"road bike","price":"200"}`), &req))

		a := storedAd()
		req.ApplyTo(a)

		assert.Equal(t, "road bike", a.Name)
		assert.True(t, a.Price.Equal(decimal.NewFromInt(200)))
		assert.Equal(t, "city bike", a.Description)
		assert.True(t, a.IsPublished)
	})

	t.Run("absent fields are kept", func(t *testing.T) {
		var req PatchAdRequest
		require.NoError(t, json.Unmarshal([]byte(`{}`), &req))

		a := storedAd()
		req.ApplyTo(a)

		assert.Equal(t, "bike", a.Name)
		assert.True(t, a.Price.Equal(decimal.NewFromInt(150)))
	})

	t.Run("falsy values are kept", func(t *testing.T) {
		var req PatchAdRequest
		body := `{"name":"","price":0,"description":"","is_published":false,"author_id":0,"category_id":null}`
		require.NoError(t, json.Unmarshal([]byte(body), &req))

		a := storedAd()
		req.ApplyTo(a)

		assert.Equal(t, "bike", a.Name)
		assert.True(t, a.Price.Equal(decimal.NewFromInt(150)))
		assert.Equal(t, "city bike", a.Description)
		assert.True(t, a.IsPublished)
		assert.Equal(t, int64(7), a.AuthorID)
		assert.Equal(t, int64(3), a.CategoryID)
	})
}

func TestPatchUserApplyTo(t *testing.T) {
	stored := func() *user.User {
		u := user.New("alice", "")
		u.ID = 1
		u.PasswordHash = "$stored-hash$"
		u.Age = 30
		u.Locations = []string{"Moscow"}
		return u
	}

	t.Run("locations union", func(t *testing.T) {
		var req PatchUserRequest
		require.NoError(t, json.Unmarshal([]byte(`{"locations":["Kazan","Moscow"]}`), &req))

		u := stored()
		req.ApplyTo(u)

		assert.Equal(t, []string{"Moscow", "Kazan"}, u.Locations)
	})

	t.Run("falsy values are kept", func(t *testing.T) {
		var req PatchUserRequest
		body := `{"username":"","password":"","age":0,"role":""}`
		require.NoError(t, json.Unmarshal([]byte(body), &req))

		u := stored()
		req.ApplyTo(u)

		assert.Equal(t, "alice", u.Username)
		assert.Empty(t, u.Password)
		assert.Equal(t, 30, u.Age)
		assert.Equal(t, user.RoleMember, u.Role)
	})

	t.Run("new password is staged for hashing", func(t *testing.T) {
		var req PatchUserRequest
		require.NoError(t, json.Unmarshal([]byte(`{"password":"new-pass"}`), &req))

		u := stored()
		req.ApplyTo(u)

		assert.Equal(t, "new-pass", u.Password)
		assert.Equal(t, "$stored-hash$", u.PasswordHash)
	})
}

func TestPatchCategoryApplyTo(t *testing.T) {
	c := category.New("transport")
	c.ID = 1

	var req PatchCategoryRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name":""}`), &req))
	req.ApplyTo(c)
	assert.Equal(t, "transport", c.Name)

	require.NoError(t, json.Unmarshal([]byte(`{"name":"electronics"}`), &req))
	req.ApplyTo(c)
	assert.Equal(t, "electronics", c.Name)
}
