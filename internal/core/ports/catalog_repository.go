package ports

import (
	"context"

	"github.com/styledecor/booking-api/internal/core/domain"
)

// CatalogUpdate carries the mutable fields of a catalog item. Nil fields are
// left untouched.
type CatalogUpdate struct {
	Name        *string
	Cost        *int64
	Description *string
}

// CatalogRepository defines persistence for the service catalog.
type CatalogRepository interface {
	Create(ctx context.Context, s *domain.Service) error
	FindByID(ctx context.Context, id string) (*domain.Service, error)
	List(ctx context.Context) ([]*domain.Service, error)
	Update(ctx context.Context, id string, fields CatalogUpdate) (*domain.Service, error)
	Delete(ctx context.Context, id string) error
}
