package user

import (
	"context"

	"adboard/internal/core/tx"
	"adboard/internal/domain"
)

// Repository defines the interface for User persistence.
// Implementations persist the locations union (get-or-create by name,
// link, never unlink) together with the user row, and load location
// names plus the published-ad count on every read.
type Repository interface {
	domain.Repository[*User]
}

// Service provides business logic for the User resource.
type Service struct {
	*domain.CRUDService[*User]
}

// NewService creates a new User service. Passwords are hashed in a
// before-create/before-update hook so plaintext never reaches storage.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCRUDService(domain.CRUDServiceConfig[*User]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "user",
	})

	svc := &Service{CRUDService: base}

	base.Hooks().On(domain.BeforeCreate, svc.hashPassword)
	base.Hooks().On(domain.BeforeUpdate, svc.hashPassword)

	return svc
}

func (s *Service) hashPassword(ctx context.Context, u *User) error {
	return u.HashPassword()
}
