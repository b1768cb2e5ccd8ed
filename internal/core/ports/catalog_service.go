package ports

import (
	"context"

	"github.com/styledecor/booking-api/internal/core/domain"
)

// CreateServiceInput carries the fields of a new catalog item.
type CreateServiceInput struct {
	Name        string
	Cost        int64
	Description string
}

// CatalogService defines catalog use cases. Reads are public; mutations
// require the admin role.
type CatalogService interface {
	Create(ctx context.Context, actor Actor, input CreateServiceInput) (*domain.Service, error)
	Get(ctx context.Context, id string) (*domain.Service, error)
	List(ctx context.Context) ([]*domain.Service, error)
	Update(ctx context.Context, actor Actor, id string, fields CatalogUpdate) (*domain.Service, error)
	Delete(ctx context.Context, actor Actor, id string) error
}
