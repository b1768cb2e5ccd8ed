package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/styledecor/booking-api/internal/core/domain"
	"github.com/styledecor/booking-api/internal/core/ports"
)

// CatalogService implements catalog reads and admin-gated mutations.
type CatalogService struct {
	repo   ports.CatalogRepository
	logger zerolog.Logger
}

func NewCatalogService(repo ports.CatalogRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, logger: logger}
}

func (s *CatalogService) Create(ctx context.Context, actor ports.Actor, input ports.CreateServiceInput) (*domain.Service, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	svc := &domain.Service{
		Name:        input.Name,
		Cost:        input.Cost,
		Description: input.Description,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, svc); err != nil {
		s.logger.Error().Err(err).Msg("failed to create catalog service")
		return nil, err
	}

	s.logger.Info().Str("service_id", svc.ID).Str("name", svc.Name).Msg("catalog service created")
	return svc, nil
}

func (s *CatalogService) Get(ctx context.Context, id string) (*domain.Service, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CatalogService) List(ctx context.Context) ([]*domain.Service, error) {
	return s.repo.List(ctx)
}

func (s *CatalogService) Update(ctx context.Context, actor ports.Actor, id string, fields ports.CatalogUpdate) (*domain.Service, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, fields)
}

func (s *CatalogService) Delete(ctx context.Context, actor ports.Actor, id string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("service_id", id).Msg("catalog service deleted")
	return nil
}
