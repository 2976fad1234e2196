package ad

import (
	"context"
	"mime/multipart"

	"adboard/internal/core/tx"
	"adboard/internal/domain"
	"adboard/pkg/logger"
)

// Repository defines the interface for Ad persistence.
type Repository interface {
	domain.Repository[*Ad]
}

// ImageStore persists uploaded ad images.
type ImageStore interface {
	// Save stores the uploaded file and returns its path relative
	// to the media root.
	Save(ctx context.Context, file *multipart.FileHeader) (string, error)

	// Remove deletes a previously stored file.
	Remove(ctx context.Context, path string) error
}

// Service provides business logic for the Ad resource.
type Service struct {
	*domain.CRUDService[*Ad]
	images ImageStore
}

// NewService creates a new Ad service. Deleting an ad also removes its
// stored image file (owned dependent data).
func NewService(repo Repository, txManager tx.Manager, images ImageStore) *Service {
	base := domain.NewCRUDService(domain.CRUDServiceConfig[*Ad]{
		Repo:       repo,
		TxManager:  txManager,
		EntityName: "ad",
	})

	svc := &Service{CRUDService: base, images: images}

	base.Hooks().On(domain.AfterDelete, svc.removeImage)

	return svc
}

// UploadImage stores the uploaded file and overwrites the ad's image
// reference. A nil file is a no-op that still returns the current ad.
func (s *Service) UploadImage(ctx context.Context, id int64, file *multipart.FileHeader) (*Ad, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if file == nil {
		return existing, nil
	}

	path, err := s.images.Save(ctx, file)
	if err != nil {
		return nil, err
	}

	old := existing.Image
	existing.SetImage(path)

	updated, err := s.Update(ctx, existing)
	if err != nil {
		// The reference was not persisted; drop the orphaned file.
		if rmErr := s.images.Remove(ctx, path); rmErr != nil {
			logger.Warn(ctx, "remove orphaned image failed", "path", path, "error", rmErr)
		}
		return nil, err
	}

	if old != nil && *old != path {
		if err := s.images.Remove(ctx, *old); err != nil {
			logger.Warn(ctx, "remove replaced image failed", "path", *old, "error", err)
		}
	}

	return updated, nil
}

func (s *Service) removeImage(ctx context.Context, a *Ad) error {
	if a.Image == nil {
		return nil
	}
	if err := s.images.Remove(ctx, *a.Image); err != nil {
		logger.Warn(ctx, "remove ad image failed", "ad_id", a.ID, "path", *a.Image, "error", err)
	}
	return nil
}
