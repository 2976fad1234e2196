// Package category provides the Category resource: the classifier
// ads are filed under.
package category

import (
	"context"

	"adboard/internal/core/apperror"
)

// Category is a named rubric ads belong to.
type Category struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// New creates a Category with required fields.
func New(name string) *Category {
	return &Category{Name: name}
}

// Validate implements domain.Validatable.
func (c *Category) Validate(ctx context.Context) error {
	if c.Name == "" {
		return apperror.NewValidation("name", "name is required")
	}
	return nil
}
