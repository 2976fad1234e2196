// Package v1 provides HTTP API version 1.
package v1

import "github.com/gin-gonic/gin"

// ResourceRouteHandler defines the interface for resource handlers.
// All resource handlers must implement these methods.
type ResourceRouteHandler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

// registerResourceRoutes mounts the shared CRUD route shape onto a
// resource group. Updates accept both POST and PATCH.
func registerResourceRoutes(group *gin.RouterGroup, h ResourceRouteHandler) {
	group.GET("/", h.List)
	group.POST("/create/", h.Create)
	group.GET("/:id/", h.Get)
	group.POST("/:id/update/", h.Update)
	group.PATCH("/:id/update/", h.Update)
	group.DELETE("/:id/delete/", h.Delete)
}
