package ports

import (
	"context"

	"github.com/styledecor/booking-api/internal/core/domain"
)

// ProfileUpdate carries the fields of a profile update. Nil fields are left
// untouched; there is no way to clear a field by omitting it.
type ProfileUpdate struct {
	Name    *string
	Phone   *string
	Address *string
	Role    *string
}

// UserRepository defines persistence for the identity directory.
type UserRepository interface {
	// Insert creates the record; domain.ErrUserExists when the email is
	// already taken (backed by a unique index, so concurrent first
	// registrations lose deterministically).
	Insert(ctx context.Context, u *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Upsert merges the given fields over the stored record, creating it
	// when absent, and returns the resulting record.
	Upsert(ctx context.Context, email string, fields ProfileUpdate) (*domain.User, error)
	ListAll(ctx context.Context) ([]*domain.User, error)
}
