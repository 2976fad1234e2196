package domain

import (
	"context"
	"fmt"

	"adboard/internal/core/apperror"
	"adboard/internal/core/tx"
	"adboard/pkg/logger"
)

// Resource is the uniform surface the HTTP layer drives.
// Every entity service implements it.
type Resource[T any] interface {
	List(ctx context.Context, q ListQuery) (PageResult[T], error)
	GetByID(ctx context.Context, id int64) (T, error)
	Create(ctx context.Context, entity T) (T, error)
	Update(ctx context.Context, entity T) (T, error)
	Delete(ctx context.Context, id int64) error
}

// CRUDService provides the shared business logic for all resources:
// validate, run lifecycle hooks, persist inside a transaction.
type CRUDService[T Validatable] struct {
	repo      Repository[T]
	txManager tx.Manager
	hooks     *HookRegistry[T]

	// entityName for error messages
	entityName string
}

// CRUDServiceConfig configures the service.
type CRUDServiceConfig[T Validatable] struct {
	Repo       Repository[T]
	TxManager  tx.Manager
	EntityName string
}

// NewCRUDService creates a new generic service.
func NewCRUDService[T Validatable](cfg CRUDServiceConfig[T]) *CRUDService[T] {
	return &CRUDService[T]{
		repo:       cfg.Repo,
		txManager:  cfg.TxManager,
		hooks:      NewHookRegistry[T](),
		entityName: cfg.EntityName,
	}
}

// Hooks returns the hook registry for external registration.
func (s *CRUDService[T]) Hooks() *HookRegistry[T] {
	return s.hooks
}

func (s *CRUDService[T]) normalizeValidationErr(err error) error {
	if err == nil {
		return nil
	}
	if apperror.IsAppError(err) {
		return err
	}
	return apperror.NewFieldErrors(map[string][]string{"non_field_errors": {err.Error()}})
}

func (s *CRUDService[T]) normalizeGetErr(err error, id int64) error {
	if err == nil {
		return nil
	}
	if apperror.IsNotFound(err) {
		return apperror.NewNotFound(s.entityName, id)
	}
	if apperror.IsAppError(err) {
		return err
	}
	return apperror.NewInternal(err).WithDetail("entity", s.entityName).WithDetail("id", id)
}

// List retrieves one page of entities.
func (s *CRUDService[T]) List(ctx context.Context, q ListQuery) (PageResult[T], error) {
	return s.repo.List(ctx, q)
}

// GetByID retrieves entity by ID.
func (s *CRUDService[T]) GetByID(ctx context.Context, id int64) (T, error) {
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return entity, s.normalizeGetErr(err, id)
	}
	return entity, nil
}

// Create validates and persists a new entity.
func (s *CRUDService[T]) Create(ctx context.Context, entity T) (T, error) {
	if err := entity.Validate(ctx); err != nil {
		return entity, s.normalizeValidationErr(err)
	}

	if err := s.hooks.Run(ctx, BeforeCreate, entity); err != nil {
		return entity, err
	}

	var created T
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.repo.Create(ctx, entity)
		if err != nil {
			return fmt.Errorf("create %s: %w", s.entityName, err)
		}
		return nil
	})
	if err != nil {
		return created, err
	}

	if err := s.hooks.Run(ctx, AfterCreate, created); err != nil {
		logger.Warn(ctx, "after-create hook failed", "entity", s.entityName, "error", err)
	}

	return created, nil
}

// Update validates the merged entity and persists all its fields.
func (s *CRUDService[T]) Update(ctx context.Context, entity T) (T, error) {
	if err := entity.Validate(ctx); err != nil {
		return entity, s.normalizeValidationErr(err)
	}

	if err := s.hooks.Run(ctx, BeforeUpdate, entity); err != nil {
		return entity, err
	}

	var updated T
	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		var err error
		updated, err = s.repo.Update(ctx, entity)
		if err != nil {
			return fmt.Errorf("update %s: %w", s.entityName, err)
		}
		return nil
	})
	if err != nil {
		return updated, err
	}

	if err := s.hooks.Run(ctx, AfterUpdate, updated); err != nil {
		logger.Warn(ctx, "after-update hook failed", "entity", s.entityName, "error", err)
	}

	return updated, nil
}

// Delete removes the entity by ID. Missing IDs yield not-found.
func (s *CRUDService[T]) Delete(ctx context.Context, id int64) error {
	// Fetch first so after-delete hooks see the removed entity.
	entity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return s.normalizeGetErr(err, id)
	}

	if err := s.hooks.Run(ctx, BeforeDelete, entity); err != nil {
		return err
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete %s: %w", s.entityName, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := s.hooks.Run(ctx, AfterDelete, entity); err != nil {
		logger.Warn(ctx, "after-delete hook failed", "entity", s.entityName, "error", err)
	}

	return nil
}
