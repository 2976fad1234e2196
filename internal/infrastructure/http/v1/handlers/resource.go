package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"adboard/internal/core/apperror"
	"adboard/internal/domain"
	"adboard/internal/infrastructure/http/v1/dto"
)

// CreateRequest maps a request body to a new entity. MissingKeys
// reports required keys absent from the body, which render as
// malformed input rather than validation failures.
type CreateRequest[T any] interface {
	MissingKeys() []string
	ToEntity() T
}

// PatchRequest merges a partial update into an existing entity.
type PatchRequest[T any] interface {
	ApplyTo(T)
}

// ResourceHandler serves the uniform CRUD surface of one resource.
type ResourceHandler[T any, CreateDTO CreateRequest[T], PatchDTO PatchRequest[T], Response any] struct {
	service    domain.Resource[T]
	toDTO      func(T) Response
	entityName string
	pageSize   int
}

// ResourceHandlerConfig carries the dependencies for a ResourceHandler.
type ResourceHandlerConfig[T any, Response any] struct {
	Service    domain.Resource[T]
	ToDTO      func(T) Response
	EntityName string
	PageSize   int
}

// NewResourceHandler creates a handler for one resource.
func NewResourceHandler[T any, CreateDTO CreateRequest[T], PatchDTO PatchRequest[T], Response any](
	cfg ResourceHandlerConfig[T, Response],
) *ResourceHandler[T, CreateDTO, PatchDTO, Response] {
	return &ResourceHandler[T, CreateDTO, PatchDTO, Response]{
		service:    cfg.Service,
		toDTO:      cfg.ToDTO,
		entityName: cfg.EntityName,
		pageSize:   cfg.PageSize,
	}
}

// List handles GET / with optional ?page= and ?name= parameters.
func (h *ResourceHandler[T, CreateDTO, PatchDTO, Response]) List(c *gin.Context) {
	result, err := h.service.List(c.Request.Context(), domain.ListQuery{
		Name:     c.Query("name"),
		Page:     pageQuery(c),
		PageSize: h.pageSize,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}

	items := make([]Response, 0, len(result.Items))
	for _, entity := range result.Items {
		items = append(items, h.toDTO(entity))
	}

	c.JSON(http.StatusOK, dto.ListResponse[Response]{
		Total:    result.Total,
		Items:    items,
		NumPages: result.NumPages,
	})
}

// Get handles GET /:id/.
func (h *ResourceHandler[T, CreateDTO, PatchDTO, Response]) Get(c *gin.Context) {
	id, err := idParam(c, h.entityName)
	if err != nil {
		abortWithError(c, err)
		return
	}

	entity, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toDTO(entity))
}

// Create handles POST /create/.
func (h *ResourceHandler[T, CreateDTO, PatchDTO, Response]) Create(c *gin.Context) {
	var req CreateDTO
	if err := bindJSON(c, &req); err != nil {
		abortWithError(c, err)
		return
	}
	if missing := req.MissingKeys(); len(missing) > 0 {
		abortWithError(c, apperror.NewMalformed(
			"missing required keys: "+strings.Join(missing, ", ")))
		return
	}

	created, err := h.service.Create(c.Request.Context(), req.ToEntity())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.toDTO(created))
}

// Update handles POST and PATCH /:id/update/. Fields absent from the
// body, or carrying a falsy value, keep their stored value.
func (h *ResourceHandler[T, CreateDTO, PatchDTO, Response]) Update(c *gin.Context) {
	id, err := idParam(c, h.entityName)
	if err != nil {
		abortWithError(c, err)
		return
	}

	var req PatchDTO
	if err := bindJSON(c, &req); err != nil {
		abortWithError(c, err)
		return
	}

	entity, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	req.ApplyTo(entity)

	updated, err := h.service.Update(c.Request.Context(), entity)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, h.toDTO(updated))
}

// Delete handles DELETE /:id/delete/.
func (h *ResourceHandler[T, CreateDTO, PatchDTO, Response]) Delete(c *gin.Context) {
	id, err := idParam(c, h.entityName)
	if err != nil {
		abortWithError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.StatusOK)
}
