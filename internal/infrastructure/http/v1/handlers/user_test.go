package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adboard/internal/core/apperror"
	"adboard/internal/domain"
	"adboard/internal/domain/user"
	"adboard/internal/infrastructure/http/v1/middleware"
)

type fakeUserRepo struct {
	users  map[int64]*user.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*user.User{}, nextID: 1}
}

func copyUser(u *user.User) *user.User {
	copied := *u
	copied.Locations = append([]string{}, u.Locations...)
	return &copied
}

func (r *fakeUserRepo) List(ctx context.Context, q domain.ListQuery) (domain.PageResult[*user.User], error) {
	items := []*user.User{}
	for _, u := range r.users {
		items = append(items, copyUser(u))
	}
	total := int64(len(items))
	return domain.PageResult[*user.User]{Items: items, Total: total, NumPages: domain.NumPages(total, q.PageSize)}, nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id int64) (*user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, apperror.NewNotFound("users", id)
	}
	return copyUser(u), nil
}

func (r *fakeUserRepo) Create(ctx context.Context, u *user.User) (*user.User, error) {
	u.ID = r.nextID
	r.nextID++
	r.users[u.ID] = copyUser(u)
	return u, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, u *user.User) (*user.User, error) {
	if _, ok := r.users[u.ID]; !ok {
		return nil, apperror.NewNotFound("users", u.ID)
	}
	r.users[u.ID] = copyUser(u)
	return u, nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return apperror.NewNotFound("users", id)
	}
	delete(r.users, id)
	return nil
}

func newUserEngine(repo *fakeUserRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)

	service := user.NewService(repo, noopTx{})
	handler := NewUserHandler(service, 10)

	engine := gin.New()
	engine.Use(middleware.ErrorRenderer())

	group := engine.Group("/user")
	group.GET("/", handler.List)
	group.POST("/create/", handler.Create)
	group.GET("/:id/", handler.Get)
	group.POST("/:id/update/", handler.Update)
	group.PATCH("/:id/update/", handler.Update)
	group.DELETE("/:id/delete/", handler.Delete)

	return engine
}

func TestUserCreate(t *testing.T) {
	t.Run("hashes the password and never echoes it", func(t *testing.T) {
		repo := newFakeUserRepo()
		engine := newUserEngine(repo)

		body := `{"username":"alice","password":"s3cret","age":30,"locations":["Moscow"]}`
		w := doRequest(t, engine, http.MethodPost, "/user/create/", body)
		require.Equal(t, http.StatusCreated, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "alice", resp["username"])
		assert.Equal(t, "member", resp["role"])
		assert.Equal(t, []any{"Moscow"}, resp["locations"])
		assert.Equal(t, float64(0), resp["total_ads"])
		assert.NotContains(t, resp, "password")
		assert.NotContains(t, resp, "password_hash")

		stored := repo.users[1]
		assert.Empty(t, stored.Password)
		assert.True(t, stored.CheckPassword("s3cret"))
	})

	t.Run("missing password is malformed input", func(t *testing.T) {
		engine := newUserEngine(newFakeUserRepo())

		w := doRequest(t, engine, http.MethodPost, "/user/create/", `{"username":"alice"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Contains(t, body["error"], "password")
	})
}

func TestUserUpdate(t *testing.T) {
	seed := func(t *testing.T, engine *gin.Engine) {
		t.Helper()
		w := doRequest(t, engine, http.MethodPost, "/user/create/",
			`{"username":"alice","password":"s3cret","age":30}`)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	t.Run("invalid role rejects and leaves the record unchanged", func(t *testing.T) {
		repo := newFakeUserRepo()
		engine := newUserEngine(repo)
		seed(t, engine)

		w := doRequest(t, engine, http.MethodPatch, "/user/1/update/", `{"role":"owner"}`)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)

		var fields map[string][]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fields))
		assert.Contains(t, fields, "role")
		assert.Equal(t, user.RoleMember, repo.users[1].Role)
	})

	t.Run("new password is re-hashed", func(t *testing.T) {
		repo := newFakeUserRepo()
		engine := newUserEngine(repo)
		seed(t, engine)

		w := doRequest(t, engine, http.MethodPatch, "/user/1/update/", `{"password":"changed"}`)
		require.Equal(t, http.StatusAccepted, w.Code)

		stored := repo.users[1]
		assert.True(t, stored.CheckPassword("changed"))
		assert.False(t, stored.CheckPassword("s3cret"))
	})

	t.Run("locations are additive", func(t *testing.T) {
		repo := newFakeUserRepo()
		engine := newUserEngine(repo)
		seed(t, engine)

		w := doRequest(t, engine, http.MethodPatch, "/user/1/update/", `{"locations":["Moscow"]}`)
		require.Equal(t, http.StatusAccepted, w.Code)
		w = doRequest(t, engine, http.MethodPatch, "/user/1/update/", `{"locations":["Kazan"]}`)
		require.Equal(t, http.StatusAccepted, w.Code)

		assert.Equal(t, []string{"Moscow", "Kazan"}, repo.users[1].Locations)
	})
}
