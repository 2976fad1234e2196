package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adboard/internal/core/apperror"
	"adboard/internal/domain"
	"adboard/internal/domain/ad"
	"adboard/internal/infrastructure/http/v1/middleware"
)

type fakeAdRepo struct {
	ads    map[int64]*ad.Ad
	nextID int64
}

func newFakeAdRepo(seed ...*ad.Ad) *fakeAdRepo {
	r := &fakeAdRepo{ads: map[int64]*ad.Ad{}, nextID: 1}
	for _, a := range seed {
		a.ID = r.nextID
		r.ads[a.ID] = a
		r.nextID++
	}
	return r
}

func (r *fakeAdRepo) List(ctx context.Context, q domain.ListQuery) (domain.PageResult[*ad.Ad], error) {
	items := []*ad.Ad{}
	for _, a := range r.ads {
		if q.Name != "" && a.Name != q.Name {
			continue
		}
		items = append(items, a)
	}
	total := int64(len(items))
	return domain.PageResult[*ad.Ad]{Items: items, Total: total, NumPages: domain.NumPages(total, q.PageSize)}, nil
}

func (r *fakeAdRepo) GetByID(ctx context.Context, id int64) (*ad.Ad, error) {
	a, ok := r.ads[id]
	if !ok {
		return nil, apperror.NewNotFound("ads", id)
	}
	copied := *a
	return &copied, nil
}

func (r *fakeAdRepo) Create(ctx context.Context, a *ad.Ad) (*ad.Ad, error) {
	a.ID = r.nextID
	r.nextID++
	r.ads[a.ID] = a
	return a, nil
}

func (r *fakeAdRepo) Update(ctx context.Context, a *ad.Ad) (*ad.Ad, error) {
	if _, ok := r.ads[a.ID]; !ok {
		return nil, apperror.NewNotFound("ads", a.ID)
	}
	r.ads[a.ID] = a
	return a, nil
}

func (r *fakeAdRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.ads[id]; !ok {
		return apperror.NewNotFound("ads", id)
	}
	delete(r.ads, id)
	return nil
}

// fakeImageStore records saves and removals without touching disk.
type fakeImageStore struct {
	saved   []string
	removed []string
}

func (s *fakeImageStore) Save(ctx context.Context, file *multipart.FileHeader) (string, error) {
	name := "stored-" + file.Filename
	s.saved = append(s.saved, name)
	return name, nil
}

func (s *fakeImageStore) Remove(ctx context.Context, path string) error {
	s.removed = append(s.removed, path)
	return nil
}

func newAdEngine(repo *fakeAdRepo, images *fakeImageStore) *gin.Engine {
	gin.SetMode(gin.TestMode)

	service := ad.NewService(repo, noopTx{}, images)
	handler := NewAdHandler(service, 10, func(path string) string { return "/media/" + path })

	engine := gin.New()
	engine.Use(middleware.ErrorRenderer())

	group := engine.Group("/ad")
	group.GET("/", handler.List)
	group.POST("/create/", handler.Create)
	group.GET("/:id/", handler.Get)
	group.POST("/:id/update/", handler.Update)
	group.PATCH("/:id/update/", handler.Update)
	group.DELETE("/:id/delete/", handler.Delete)
	group.POST("/:id/upload_image/", handler.UploadImage)
	group.PATCH("/:id/upload_image/", handler.UploadImage)

	return engine
}

func seedAd() *ad.Ad {
	return ad.New("bike", 7, decimal.NewFromInt(150), "city bike", 3, true)
}

func TestAdCreate(t *testing.T) {
	engine := newAdEngine(newFakeAdRepo(), &fakeImageStore{})

	body := `{"name":"bike","author_id":7,"price":150,"description":"city bike","category_id":3,"is_published":true}`
	w := doRequest(t, engine, http.MethodPost, "/ad/create/", body)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(1), resp["id"])
	assert.Nil(t, resp["image"])
}

func TestAdPartialUpdateKeepsFalsyFields(t *testing.T) {
	repo := newFakeAdRepo(seedAd())
	engine := newAdEngine(repo, &fakeImageStore{})

	body := `{"price":0,"is_published":false,"description":""}`
	w := doRequest(t, engine, http.MethodPatch, "/ad/1/update/", body)
	require.Equal(t, http.StatusAccepted, w.Code)

	stored := repo.ads[1]
	assert.True(t, stored.Price.Equal(decimal.NewFromInt(150)))
	assert.True(t, stored.IsPublished)
	assert.Equal(t, "city bike", stored.Description)
}

func uploadRequest(t *testing.T, path, field, filename string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestAdUploadImage(t *testing.T) {
	t.Run("stores the file and updates the reference", func(t *testing.T) {
		repo := newFakeAdRepo(seedAd())
		images := &fakeImageStore{}
		engine := newAdEngine(repo, images)

		req := uploadRequest(t, "/ad/1/upload_image/", "image", "bike.jpg", []byte("img-bytes"))
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusAccepted, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "/media/stored-bike.jpg", resp["image"])

		stored := repo.ads[1]
		require.NotNil(t, stored.Image)
		assert.Equal(t, "stored-bike.jpg", *stored.Image)
	})

	t.Run("replacing an image removes the old file", func(t *testing.T) {
		seeded := seedAd()
		seeded.SetImage("old.jpg")
		images := &fakeImageStore{}
		engine := newAdEngine(newFakeAdRepo(seeded), images)

		req := uploadRequest(t, "/ad/1/upload_image/", "image", "new.jpg", []byte("img-bytes"))
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusAccepted, w.Code)
		assert.Equal(t, []string{"old.jpg"}, images.removed)
	})

	t.Run("no file leaves the stored image untouched", func(t *testing.T) {
		seeded := seedAd()
		seeded.SetImage("old.jpg")
		repo := newFakeAdRepo(seeded)
		images := &fakeImageStore{}
		engine := newAdEngine(repo, images)

		w := doRequest(t, engine, http.MethodPost, "/ad/1/upload_image/", "")
		require.Equal(t, http.StatusAccepted, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "/media/old.jpg", resp["image"])
		assert.Empty(t, images.saved)
	})

	t.Run("missing ad", func(t *testing.T) {
		engine := newAdEngine(newFakeAdRepo(), &fakeImageStore{})

		req := uploadRequest(t, "/ad/42/upload_image/", "image", "bike.jpg", []byte("img-bytes"))
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Not found"}`, w.Body.String())
	})
}

func TestAdDeleteRemovesImageFile(t *testing.T) {
	seeded := seedAd()
	seeded.SetImage("old.jpg")
	images := &fakeImageStore{}
	engine := newAdEngine(newFakeAdRepo(seeded), images)

	w := doRequest(t, engine, http.MethodDelete, "/ad/1/delete/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"old.jpg"}, images.removed)
}
