package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/styledecor/booking-api/internal/core/domain"
	"github.com/styledecor/booking-api/internal/core/ports"
)

// RoleInvalidator is the hook for dropping cached role entries when a
// profile update may have changed the role.
type RoleInvalidator interface {
	Invalidate(ctx context.Context, email string) error
}

// UserService implements the identity and role directory.
type UserService struct {
	repo           ports.UserRepository
	bootstrapAdmin string
	invalidator    RoleInvalidator
	logger         zerolog.Logger
}

func NewUserService(repo ports.UserRepository, bootstrapAdmin string, invalidator RoleInvalidator, logger zerolog.Logger) *UserService {
	return &UserService{
		repo:           repo,
		bootstrapAdmin: bootstrapAdmin,
		invalidator:    invalidator,
		logger:         logger,
	}
}

// Register creates the record on first sight of an email and is a no-op on
// every later call. The bootstrap admin email receives the admin role on its
// first registration; everyone else starts as a plain user. A lost insert
// race is indistinguishable from a repeat registration: the existing record
// is fetched and returned.
func (s *UserService) Register(ctx context.Context, input ports.RegisterInput) (*ports.RegisterResult, error) {
	role := domain.RoleUser
	if input.Email == s.bootstrapAdmin {
		role = domain.RoleAdmin
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:     input.Email,
		Role:      role,
		Name:      input.Name,
		Phone:     input.Phone,
		Address:   input.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.repo.Insert(ctx, user)
	if err == nil {
		s.logger.Info().Str("email", user.Email).Str("role", role).Msg("user registered")
		return &ports.RegisterResult{Created: true, User: user}, nil
	}
	if !errors.Is(err, domain.ErrUserExists) {
		return nil, err
	}

	existing, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	return &ports.RegisterResult{Created: false, User: existing}, nil
}

// GetProfile returns the stored record for email.
func (s *UserService) GetProfile(ctx context.Context, actor ports.Actor, email string) (*domain.User, error) {
	if err := requireSelfOrAdmin(actor, email); err != nil {
		return nil, err
	}
	return s.repo.FindByEmail(ctx, email)
}

// GetRole resolves the stored role for email, degrading to the least
// privileged role when no record exists.
func (s *UserService) GetRole(ctx context.Context, actor ports.Actor, email string) (string, error) {
	if err := requireSelfOrAdmin(actor, email); err != nil {
		return "", err
	}
	user, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) {
		return domain.RoleUser, nil
	}
	if err != nil {
		return "", err
	}
	return user.Role, nil
}

// UpdateProfile merge-upserts the given fields. A role change requires the
// admin role; profile-only updates are self-or-admin. The upsert lets an
// admin pre-provision a role before the user's first registration.
func (s *UserService) UpdateProfile(ctx context.Context, actor ports.Actor, email string, fields ports.ProfileUpdate) (*domain.User, error) {
	if fields.Role != nil {
		if err := requireAdmin(actor); err != nil {
			return nil, err
		}
		if !domain.ValidRole(*fields.Role) {
			return nil, domain.ErrInvalidRole
		}
	} else if err := requireSelfOrAdmin(actor, email); err != nil {
		return nil, err
	}

	user, err := s.repo.Upsert(ctx, email, fields)
	if err != nil {
		return nil, err
	}

	if s.invalidator != nil {
		if err := s.invalidator.Invalidate(ctx, email); err != nil {
			s.logger.Warn().Err(err).Str("email", email).Msg("role cache invalidation failed")
		}
	}

	s.logger.Info().Str("email", email).Bool("role_change", fields.Role != nil).Msg("profile updated")
	return user, nil
}

// ListAll enumerates the directory for administrators.
func (s *UserService) ListAll(ctx context.Context, actor ports.Actor) ([]*domain.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	return s.repo.ListAll(ctx)
}
