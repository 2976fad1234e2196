package category

import (
	"adboard/internal/core/tx"
	"adboard/internal/domain"
)

// Repository defines the interface for Category persistence.
type Repository interface {
	domain.Repository[*Category]
}

// Service provides business logic for the Category resource.
type Service struct {
	*domain.CRUDService[*Category]
}

// NewService creates a new Category service.
func NewService(repo Repository, txManager tx.Manager) *Service {
	base := domain.NewCRUDService(domain.CRUDServiceConfig[*Category]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "category",
	})
	return &Service{CRUDService: base}
}
