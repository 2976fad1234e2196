// Package location provides the Location reference data users attach
// themselves to. Locations are created implicitly by name (get-or-create)
// and are never removed through the API.
package location

import "context"

// Location is a named place shared by many users.
type Location struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// Repository defines Location persistence. The only operation the
// system needs is get-or-create by unique name; the uniqueness
// constraint makes concurrent identical creates converge on one row.
type Repository interface {
	// GetOrCreate looks a location up by name, inserting it if absent.
	GetOrCreate(ctx context.Context, name string) (*Location, error)
}
