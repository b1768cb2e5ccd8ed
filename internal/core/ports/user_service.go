package ports

import (
	"context"

	"github.com/styledecor/booking-api/internal/core/domain"
)

// RegisterInput carries the profile fields of a registration request.
type RegisterInput struct {
	Email   string
	Name    string
	Phone   string
	Address string
}

// RegisterResult reports the stored record and whether this call created it.
type RegisterResult struct {
	Created bool
	User    *domain.User
}

// UserService defines the identity directory use cases.
type UserService interface {
	// Register is idempotent: a second call for an existing email returns
	// the stored record with Created=false, never an error.
	Register(ctx context.Context, input RegisterInput) (*RegisterResult, error)
	GetProfile(ctx context.Context, actor Actor, email string) (*domain.User, error)
	// GetRole degrades to domain.RoleUser for unknown emails.
	GetRole(ctx context.Context, actor Actor, email string) (string, error)
	UpdateProfile(ctx context.Context, actor Actor, email string, fields ProfileUpdate) (*domain.User, error)
	ListAll(ctx context.Context, actor Actor) ([]*domain.User, error)
}
