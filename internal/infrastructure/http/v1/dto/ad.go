package dto

import (
	"github.com/shopspring/decimal"

	"adboard/internal/domain/ad"
)

// CreateAdRequest is the payload for publishing an ad. Every field is
// mandatory at creation time; pointers make a missing key
// distinguishable from a zero value.
type CreateAdRequest struct {
	Name        *string          `json:"name"`
	AuthorID    *int64           `json:"author_id"`
	Price       *decimal.Decimal `json:"price"`
	Description *string          `json:"description"`
	CategoryID  *int64           `json:"category_id"`
	IsPublished *bool            `json:"is_published"`
}

func (r CreateAdRequest) MissingKeys() []string {
	var missing []string
	if r.Name == nil {
		missing = append(missing, "name")
	}
	if r.AuthorID == nil {
		missing = append(missing, "author_id")
	}
	if r.Price == nil {
		missing = append(missing, "price")
	}
	if r.Description == nil {
		missing = append(missing, "description")
	}
	if r.CategoryID == nil {
		missing = append(missing, "category_id")
	}
	if r.IsPublished == nil {
		missing = append(missing, "is_published")
	}
	return missing
}

func (r CreateAdRequest) ToEntity() *ad.Ad {
	return ad.New(*r.Name, *r.AuthorID, *r.Price, *r.Description, *r.CategoryID, *r.IsPublished)
}

// PatchAdRequest is the payload for a partial ad update. Absent and
// falsy values leave the stored field untouched, including a zero price
// and a false is_published.
type PatchAdRequest struct {
	Name        *string          `json:"name"`
	AuthorID    *int64           `json:"author_id"`
	Price       *decimal.Decimal `json:"price"`
	Description *string          `json:"description"`
	CategoryID  *int64           `json:"category_id"`
	IsPublished *bool            `json:"is_published"`
}

func (r PatchAdRequest) ApplyTo(a *ad.Ad) {
	if r.Name != nil && *r.Name != "" {
		a.Name = *r.Name
	}
	if r.AuthorID != nil && *r.AuthorID != 0 {
		a.AuthorID = *r.AuthorID
	}
	if r.Price != nil && !r.Price.IsZero() {
		a.Price = *r.Price
	}
	if r.Description != nil && *r.Description != "" {
		a.Description = *r.Description
	}
	if r.CategoryID != nil && *r.CategoryID != 0 {
		a.CategoryID = *r.CategoryID
	}
	if r.IsPublished != nil && *r.IsPublished {
		a.IsPublished = *r.IsPublished
	}
}

// AdResponse is the ad projection returned by the API.
type AdResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	AuthorID    int64           `json:"author_id"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	CategoryID  int64           `json:"category_id"`
	IsPublished bool            `json:"is_published"`
	Image       *string         `json:"image"`
}

// FromAd maps an ad to its response projection; resolveURL turns a
// stored image path into its public URL.
func FromAd(a *ad.Ad, resolveURL func(string) string) AdResponse {
	resp := AdResponse{
		ID:          a.ID,
		Name:        a.Name,
		AuthorID:    a.AuthorID,
		Price:       a.Price,
		Description: a.Description,
		CategoryID:  a.CategoryID,
		IsPublished: a.IsPublished,
	}
	if a.Image != nil {
		url := resolveURL(*a.Image)
		resp.Image = &url
	}
	return resp
}
