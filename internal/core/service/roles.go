package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/styledecor/booking-api/internal/core/domain"
	"github.com/styledecor/booking-api/internal/core/ports"
)

// RoleCache abstracts the short-TTL role store (Redis) consulted before the
// directory on every authenticated request.
type RoleCache interface {
	Get(ctx context.Context, email string) (string, bool, error)
	Set(ctx context.Context, email, role string) error
}

// RoleResolver resolves a verified email to its role for authorization.
// Unknown emails degrade to the least privileged role rather than erroring,
// and cache failures fall through to the directory.
type RoleResolver struct {
	repo   ports.UserRepository
	cache  RoleCache
	logger zerolog.Logger
}

func NewRoleResolver(repo ports.UserRepository, cache RoleCache, logger zerolog.Logger) *RoleResolver {
	return &RoleResolver{repo: repo, cache: cache, logger: logger}
}

// Resolve returns the role stored for email, domain.RoleUser when absent.
func (r *RoleResolver) Resolve(ctx context.Context, email string) (string, error) {
	if r.cache != nil {
		role, ok, err := r.cache.Get(ctx, email)
		if err != nil {
			r.logger.Warn().Err(err).Str("email", email).Msg("role cache read failed, falling back to directory")
		} else if ok {
			return role, nil
		}
	}

	role := domain.RoleUser
	user, err := r.repo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return "", err
	}
	if err == nil {
		role = user.Role
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, email, role); err != nil {
			r.logger.Warn().Err(err).Str("email", email).Msg("role cache write failed")
		}
	}
	return role, nil
}
