// Package domain provides core business logic interfaces and types.
package domain

import (
	"context"
)

// Validatable is implemented by entities that support self-validation.
// Validation checks internal invariants (without database access).
type Validatable interface {
	// Validate checks entity invariants.
	// Returns nil if valid, AppError with field details otherwise.
	Validate(ctx context.Context) error
}

// --- Filter & Pagination ---

// ListQuery contains the list-endpoint parameters shared by all resources.
type ListQuery struct {
	// Name restricts results to records whose name equals it exactly.
	// Empty means no filter. This is a deliberate exact match, not a search.
	Name string

	// Page is the 1-based page number. Values below 1 mean page 1;
	// values past the last page resolve to the last page.
	Page int

	// PageSize is the fixed per-page record count (TOTAL_ON_PAGE).
	PageSize int
}

// PageResult contains one page of results plus pagination totals.
type PageResult[T any] struct {
	Items    []T
	Total    int64
	NumPages int
}

// --- Repository Interface ---

// Repository defines CRUD operations shared by all resources.
type Repository[T Validatable] interface {
	// Create inserts a new entity and returns it with its generated ID.
	Create(ctx context.Context, entity T) (T, error)

	// GetByID retrieves entity by ID.
	GetByID(ctx context.Context, id int64) (T, error)

	// Update persists all fields of an existing entity.
	Update(ctx context.Context, entity T) (T, error)

	// Delete removes the entity. Returns not-found if no row matched.
	Delete(ctx context.Context, id int64) error

	// List retrieves one page of entities per the list contract.
	List(ctx context.Context, q ListQuery) (PageResult[T], error)
}

// --- Hooks ---

// HookEvent represents lifecycle event type.
type HookEvent string

const (
	BeforeCreate HookEvent = "before_create"
	AfterCreate  HookEvent = "after_create"
	BeforeUpdate HookEvent = "before_update"
	AfterUpdate  HookEvent = "after_update"
	BeforeDelete HookEvent = "before_delete"
	AfterDelete  HookEvent = "after_delete"
)

// Hook is a function that runs at specific lifecycle points.
type Hook[T any] func(ctx context.Context, entity T) error

// HookRegistry stores lifecycle hooks for an entity type.
type HookRegistry[T any] struct {
	hooks map[HookEvent][]Hook[T]
}

// NewHookRegistry creates an empty hook registry.
func NewHookRegistry[T any]() *HookRegistry[T] {
	return &HookRegistry[T]{
		hooks: make(map[HookEvent][]Hook[T]),
	}
}

// On registers a hook for the specified event.
func (r *HookRegistry[T]) On(event HookEvent, hook Hook[T]) {
	r.hooks[event] = append(r.hooks[event], hook)
}

// Run executes all hooks for the specified event.
func (r *HookRegistry[T]) Run(ctx context.Context, event HookEvent, entity T) error {
	for _, hook := range r.hooks[event] {
		if err := hook(ctx, entity); err != nil {
			return err
		}
	}
	return nil
}
