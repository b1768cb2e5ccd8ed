package ports

import (
	"context"

	"github.com/styledecor/booking-api/internal/core/domain"
)

// BookingRepository defines persistence operations for bookings.
//
// Assign, UpdateStatus, and ConfirmPayment are conditional single-document
// updates: the precondition is part of the write's filter, so concurrent
// callers can never observe a partially applied mutation and races resolve
// inside the store. Each returns domain.ErrBookingNotFound when the filter
// matched nothing — the caller decides whether that means a missing booking
// or a failed precondition.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByClient(ctx context.Context, email string) ([]*domain.Booking, error)
	ListByDecorator(ctx context.Context, email string) ([]*domain.Booking, error)
	ListAll(ctx context.Context) ([]*domain.Booking, error)

	// Assign sets decorator_email and status=assigned in one write, allowed
	// only while the booking is in one of from.
	Assign(ctx context.Context, id, decoratorEmail string, from []domain.BookingStatus) (*domain.Booking, error)

	// UpdateStatus sets status=to in one write, allowed only from one of from.
	UpdateStatus(ctx context.Context, id string, to domain.BookingStatus, from []domain.BookingStatus) (*domain.Booking, error)

	// ConfirmPayment sets payment_status=paid and transaction_id in one
	// write, allowed only while the booking is unpaid.
	ConfirmPayment(ctx context.Context, id, transactionID string) (*domain.Booking, error)

	// Delete removes the booking; domain.ErrBookingNotFound when absent.
	Delete(ctx context.Context, id string) error
}
