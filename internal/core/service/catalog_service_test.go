package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/styledecor/booking-api/internal/core/domain"
	"github.com/styledecor/booking-api/internal/core/ports"
)

type stubCatalogRepo struct {
	services map[string]*domain.Service
	seq      int
}

func newStubCatalogRepo() *stubCatalogRepo {
	return &stubCatalogRepo{services: make(map[string]*domain.Service)}
}

func (r *stubCatalogRepo) Create(_ context.Context, s *domain.Service) error {
	r.seq++
	s.ID = fmt.Sprintf("svc-%03d", r.seq)
	clone := *s
	r.services[s.ID] = &clone
	return nil
}

func (r *stubCatalogRepo) FindByID(_ context.Context, id string) (*domain.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, domain.ErrServiceNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *stubCatalogRepo) List(_ context.Context) ([]*domain.Service, error) {
	var out []*domain.Service
	for _, s := range r.services {
		clone := *s
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubCatalogRepo) Update(_ context.Context, id string, fields ports.CatalogUpdate) (*domain.Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, domain.ErrServiceNotFound
	}
	if fields.Name != nil {
		s.Name = *fields.Name
	}
	if fields.Cost != nil {
		s.Cost = *fields.Cost
	}
	if fields.Description != nil {
		s.Description = *fields.Description
	}
	clone := *s
	return &clone, nil
}

func (r *stubCatalogRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.services[id]; !ok {
		return domain.ErrServiceNotFound
	}
	delete(r.services, id)
	return nil
}

func seedService(r *stubCatalogRepo, name string, cost int64) *domain.Service {
	r.seq++
	s := &domain.Service{
		ID:        fmt.Sprintf("svc-%03d", r.seq),
		Name:      name,
		Cost:      cost,
		CreatedAt: time.Now().UTC(),
	}
	r.services[s.ID] = s
	return s
}

func TestCatalogService_MutationsRequireAdmin(t *testing.T) {
	repo := newStubCatalogRepo()
	svc := NewCatalogService(repo, discardLogger)
	existing := seedService(repo, "Balloon arch", 250000)

	input := ports.CreateServiceInput{Name: "Table setup", Cost: 120000}

	for _, actor := range []ports.Actor{anon, asClient, asDeco} {
		if _, err := svc.Create(context.Background(), actor, input); !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("create as %q: expected ErrForbidden, got %v", actor.Role, err)
		}
		if _, err := svc.Update(context.Background(), actor, existing.ID, ports.CatalogUpdate{Name: strPtr("x")}); !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("update as %q: expected ErrForbidden, got %v", actor.Role, err)
		}
		if err := svc.Delete(context.Background(), actor, existing.ID); !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("delete as %q: expected ErrForbidden, got %v", actor.Role, err)
		}
	}
}

func TestCatalogService_AdminCRUD(t *testing.T) {
	repo := newStubCatalogRepo()
	svc := NewCatalogService(repo, discardLogger)

	created, err := svc.Create(context.Background(), asAdmin, ports.CreateServiceInput{
		Name:        "Balloon arch",
		Cost:        250000,
		Description: "entrance decoration",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("id not assigned")
	}

	newCost := int64(300000)
	updated, err := svc.Update(context.Background(), asAdmin, created.ID, ports.CatalogUpdate{Cost: &newCost})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Cost != newCost {
		t.Fatalf("cost not updated: %d", updated.Cost)
	}
	if updated.Name != "Balloon arch" {
		t.Fatalf("omitted field was cleared: %q", updated.Name)
	}

	if err := svc.Delete(context.Background(), asAdmin, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), created.ID); !errors.Is(err, domain.ErrServiceNotFound) {
		t.Fatalf("expected ErrServiceNotFound after delete, got %v", err)
	}
}

func TestCatalogService_ReadsArePublic(t *testing.T) {
	repo := newStubCatalogRepo()
	svc := NewCatalogService(repo, discardLogger)
	seedService(repo, "Balloon arch", 250000)
	seedService(repo, "Table setup", 120000)

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 services, got %d", len(list))
	}
}
