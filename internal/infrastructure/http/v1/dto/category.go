package dto

import "adboard/internal/domain/category"

// CreateCategoryRequest is the payload for creating a category.
// Required keys are pointers so a missing key is distinguishable from
// an empty value.
type CreateCategoryRequest struct {
	Name *string `json:"name"`
}

func (r CreateCategoryRequest) MissingKeys() []string {
	if r.Name == nil {
		return []string{"name"}
	}
	return nil
}

func (r CreateCategoryRequest) ToEntity() *category.Category {
	return category.New(*r.Name)
}

// PatchCategoryRequest is the payload for a partial category update.
// Absent and empty values leave the stored field untouched.
type PatchCategoryRequest struct {
	Name *string `json:"name"`
}

func (r PatchCategoryRequest) ApplyTo(c *category.Category) {
	if r.Name != nil && *r.Name != "" {
		c.Name = *r.Name
	}
}

// CategoryResponse is the category projection returned by the API.
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func FromCategory(c *category.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name}
}
