package handlers

import (
	"adboard/internal/domain/category"
	"adboard/internal/infrastructure/http/v1/dto"
)

// CategoryHandler serves the /cat resource.
type CategoryHandler struct {
	*ResourceHandler[*category.Category, dto.CreateCategoryRequest, dto.PatchCategoryRequest, dto.CategoryResponse]
}

// NewCategoryHandler creates the category handler.
func NewCategoryHandler(service *category.Service, pageSize int) *CategoryHandler {
	return &CategoryHandler{
		ResourceHandler: NewResourceHandler[*category.Category, dto.CreateCategoryRequest, dto.PatchCategoryRequest](
			ResourceHandlerConfig[*category.Category, dto.CategoryResponse]{
				Service:    service,
				ToDTO:      dto.FromCategory,
				EntityName: "category",
				PageSize:   pageSize,
			},
		),
	}
}
