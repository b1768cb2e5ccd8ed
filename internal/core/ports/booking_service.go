package ports

import (
	"context"

	"github.com/styledecor/booking-api/internal/core/domain"
)

// Actor is the verified identity a request acts as. Email comes from the
// credential, Role from the directory. The zero Actor is anonymous.
type Actor struct {
	Email string
	Role  string
}

// Anonymous reports whether no credential was presented.
func (a Actor) Anonymous() bool { return a.Email == "" }

// CreateBookingInput carries all data needed to create a booking.
type CreateBookingInput struct {
	ClientEmail string
	ServiceID   string
	Address     string
	Notes       string
}

// BookingService defines the booking lifecycle use cases. Every operation
// that targets an existing booking applies the authorization policy against
// the caller before touching state.
type BookingService interface {
	Create(ctx context.Context, actor Actor, input CreateBookingInput) (*domain.Booking, error)
	Assign(ctx context.Context, actor Actor, bookingID, decoratorEmail string) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, actor Actor, bookingID, newStatus string) (*domain.Booking, error)
	ConfirmPayment(ctx context.Context, actor Actor, bookingID, transactionID string) (*domain.Booking, error)
	ListForClient(ctx context.Context, actor Actor, email string) ([]*domain.Booking, error)
	ListForDecorator(ctx context.Context, actor Actor, email string) ([]*domain.Booking, error)
	ListAll(ctx context.Context, actor Actor) ([]*domain.Booking, error)
	Cancel(ctx context.Context, actor Actor, bookingID string) error
}
