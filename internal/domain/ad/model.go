// Package ad provides the Ad resource: the listings themselves.
package ad

import (
	"context"

	"github.com/shopspring/decimal"

	"adboard/internal/core/apperror"
)

// Ad represents a single classified listing.
type Ad struct {
	ID          int64           `db:"id" json:"id"`
	Name        string          `db:"name" json:"name"`
	AuthorID    int64           `db:"author_id" json:"author_id"`
	Price       decimal.Decimal `db:"price" json:"price"`
	Description string          `db:"description" json:"description"`
	CategoryID  int64           `db:"category_id" json:"category_id"`
	IsPublished bool            `db:"is_published" json:"is_published"`

	// Image is the stored file path relative to the media root,
	// nil when no image has been uploaded.
	Image *string `db:"image" json:"image"`
}

// New creates an Ad with the fields mandatory at creation time.
func New(name string, authorID int64, price decimal.Decimal, description string, categoryID int64, published bool) *Ad {
	return &Ad{
		Name:        name,
		AuthorID:    authorID,
		Price:       price,
		Description: description,
		CategoryID:  categoryID,
		IsPublished: published,
	}
}

// Validate implements domain.Validatable.
func (a *Ad) Validate(ctx context.Context) error {
	fields := map[string][]string{}

	if a.Name == "" {
		fields["name"] = append(fields["name"], "name is required")
	}
	if a.AuthorID <= 0 {
		fields["author_id"] = append(fields["author_id"], "author_id is required")
	}
	if a.CategoryID <= 0 {
		fields["category_id"] = append(fields["category_id"], "category_id is required")
	}
	if a.Price.IsNegative() {
		fields["price"] = append(fields["price"], "price must not be negative")
	}

	if len(fields) > 0 {
		return apperror.NewFieldErrors(fields)
	}
	return nil
}

// SetImage replaces the stored image reference.
func (a *Ad) SetImage(path string) {
	a.Image = &path
}
