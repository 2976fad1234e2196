// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"adboard/internal/domain/ad"
	"adboard/internal/domain/category"
	"adboard/internal/domain/user"
	"adboard/internal/infrastructure/http/v1/handlers"
	"adboard/internal/infrastructure/http/v1/middleware"
	"adboard/internal/infrastructure/storage/filestore"
	"adboard/internal/infrastructure/storage/postgres"
)

// RouterConfig carries everything the HTTP layer needs.
type RouterConfig struct {
	TxManager *postgres.TxManager
	Pool      *postgres.Pool
	Images    *filestore.Local
	PageSize  int
	MediaURL  string
	Env       string
}

// NewRouter wires repositories, services and handlers and returns the
// configured engine.
func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		middleware.Recovery(),
		middleware.Trace(),
		middleware.Logger(),
		middleware.ErrorRenderer(),
	)

	locationRepo := postgres.NewLocationRepo(cfg.TxManager)
	categoryRepo := postgres.NewCategoryRepo(cfg.TxManager)
	userRepo := postgres.NewUserRepo(cfg.TxManager, locationRepo)
	adRepo := postgres.NewAdRepo(cfg.TxManager)

	categoryService := category.NewService(categoryRepo, cfg.TxManager)
	userService := user.NewService(userRepo, cfg.TxManager)
	adService := ad.NewService(adRepo, cfg.TxManager, cfg.Images)

	categoryHandler := handlers.NewCategoryHandler(categoryService, cfg.PageSize)
	userHandler := handlers.NewUserHandler(userService, cfg.PageSize)
	adHandler := handlers.NewAdHandler(adService, cfg.PageSize, cfg.Images.URL)
	healthHandler := handlers.NewHealthHandler(cfg.Pool)

	router.GET("/", healthHandler.Index)
	router.GET("/health/live", healthHandler.Live)
	router.GET("/health/ready", healthHandler.Ready)

	registerResourceRoutes(router.Group("/cat"), categoryHandler)
	registerResourceRoutes(router.Group("/user"), userHandler)

	adGroup := router.Group("/ad")
	registerResourceRoutes(adGroup, adHandler)
	adGroup.POST("/:id/upload_image/", adHandler.UploadImage)
	adGroup.PATCH("/:id/upload_image/", adHandler.UploadImage)

	router.Static(cfg.MediaURL, cfg.Images.Dir())

	return router
}
