package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/styledecor/booking-api/internal/core/domain"
	"github.com/styledecor/booking-api/internal/core/ports"
)

// AuditSink receives lifecycle events for asynchronous persistence. Recording
// is fire-and-forget: an audit failure never fails the request.
type AuditSink interface {
	Record(event domain.BookingEvent)
}

// assignableFrom lists the statuses an assignment may start from: the first
// assignment of a pending booking, or an admin re-assignment before work
// has started.
var assignableFrom = []domain.BookingStatus{domain.StatusPending, domain.StatusAssigned}

// BookingService implements the booking lifecycle state machine.
type BookingService struct {
	repo   ports.BookingRepository
	audit  AuditSink
	logger zerolog.Logger
}

func NewBookingService(repo ports.BookingRepository, audit AuditSink, logger zerolog.Logger) *BookingService {
	return &BookingService{repo: repo, audit: audit, logger: logger}
}

// Create initializes a booking in the pending, unpaid state with no
// decorator. An authenticated caller owns the booking regardless of the body
// email; anonymous creation takes the email as given. Service existence is
// not checked here.
func (s *BookingService) Create(ctx context.Context, actor ports.Actor, input ports.CreateBookingInput) (*domain.Booking, error) {
	clientEmail := input.ClientEmail
	if !actor.Anonymous() {
		clientEmail = actor.Email
	}

	booking := &domain.Booking{
		ClientEmail:   clientEmail,
		ServiceID:     input.ServiceID,
		Address:       input.Address,
		Notes:         input.Notes,
		Status:        domain.StatusPending,
		PaymentStatus: domain.PaymentUnpaid,
		BookedAt:      time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		s.logger.Error().Err(err).Msg("failed to create booking")
		return nil, err
	}

	s.record(booking.ID, "created", domain.StatusPending, actor.Email)
	s.logger.Info().Str("booking_id", booking.ID).Str("client_email", clientEmail).Msg("booking created")
	return booking, nil
}

// Assign sets the decorator and moves the booking to assigned in a single
// conditional write, so the two fields are never observable apart. Concurrent
// assignments resolve last-write-wins inside the store.
func (s *BookingService) Assign(ctx context.Context, actor ports.Actor, bookingID, decoratorEmail string) (*domain.Booking, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	booking, err := s.repo.Assign(ctx, bookingID, decoratorEmail, assignableFrom)
	if errors.Is(err, domain.ErrBookingNotFound) {
		return nil, s.disambiguate(ctx, bookingID)
	}
	if err != nil {
		return nil, err
	}

	s.record(bookingID, "assigned", domain.StatusAssigned, actor.Email)
	s.logger.Info().Str("booking_id", bookingID).Str("decorator_email", decoratorEmail).Msg("decorator assigned")
	return booking, nil
}

// UpdateStatus advances the booking through the closed stage set. Only the
// assigned decorator or an admin may move a booking, and only along the
// transition table. The source statuses are part of the write's filter, so a
// racing update cannot skip a stage.
func (s *BookingService) UpdateStatus(ctx context.Context, actor ports.Actor, bookingID, newStatus string) (*domain.Booking, error) {
	target, ok := domain.ParseBookingStatus(newStatus)
	if !ok {
		return nil, domain.ErrInvalidTransition
	}

	booking, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := requireAssignedDecoratorOrAdmin(actor, booking); err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateStatus(ctx, bookingID, target, domain.TransitionSources(target))
	if errors.Is(err, domain.ErrBookingNotFound) {
		return nil, s.disambiguate(ctx, bookingID)
	}
	if err != nil {
		return nil, err
	}

	s.record(bookingID, "status_updated", target, actor.Email)
	s.logger.Info().Str("booking_id", bookingID).Str("status", string(target)).Msg("booking status updated")
	return updated, nil
}

// ConfirmPayment moves the payment axis from unpaid to paid and records the
// transaction id, once. Repeating the call with the same transaction id is a
// no-op success; a different id after payment is a conflict. The transaction
// id is never overwritten.
func (s *BookingService) ConfirmPayment(ctx context.Context, actor ports.Actor, bookingID, transactionID string) (*domain.Booking, error) {
	booking, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if err := requireSelfOrAdmin(actor, booking.ClientEmail); err != nil {
		return nil, err
	}

	updated, err := s.repo.ConfirmPayment(ctx, bookingID, transactionID)
	if errors.Is(err, domain.ErrBookingNotFound) {
		current, findErr := s.repo.FindByID(ctx, bookingID)
		if findErr != nil {
			return nil, findErr
		}
		if current.PaymentStatus == domain.PaymentPaid &&
			current.TransactionID != nil && *current.TransactionID == transactionID {
			return current, nil
		}
		return nil, domain.ErrAlreadyPaid
	}
	if err != nil {
		return nil, err
	}

	s.record(bookingID, "payment_confirmed", updated.Status, actor.Email)
	s.logger.Info().Str("booking_id", bookingID).Str("transaction_id", transactionID).Msg("payment confirmed")
	return updated, nil
}

// ListForClient returns the bookings owned by email.
func (s *BookingService) ListForClient(ctx context.Context, actor ports.Actor, email string) ([]*domain.Booking, error) {
	if err := requireSelfOrAdmin(actor, email); err != nil {
		return nil, err
	}
	return s.repo.ListByClient(ctx, email)
}

// ListForDecorator returns the bookings assigned to email.
func (s *BookingService) ListForDecorator(ctx context.Context, actor ports.Actor, email string) ([]*domain.Booking, error) {
	if err := requireSelfOrAdmin(actor, email); err != nil {
		return nil, err
	}
	return s.repo.ListByDecorator(ctx, email)
}

// ListAll returns every booking, for administrators.
func (s *BookingService) ListAll(ctx context.Context, actor ports.Actor) ([]*domain.Booking, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	return s.repo.ListAll(ctx)
}

// Cancel removes the booking. Allowed for the owning client or an admin from
// any state before completion.
func (s *BookingService) Cancel(ctx context.Context, actor ports.Actor, bookingID string) error {
	booking, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if err := requireSelfOrAdmin(actor, booking.ClientEmail); err != nil {
		return err
	}
	if booking.Status == domain.StatusCompleted {
		return domain.ErrInvalidTransition
	}

	if err := s.repo.Delete(ctx, bookingID); err != nil {
		return err
	}

	s.record(bookingID, "cancelled", domain.StatusCancelled, actor.Email)
	s.logger.Info().Str("booking_id", bookingID).Msg("booking cancelled")
	return nil
}

// disambiguate resolves a failed conditional update into the error the
// caller can act on: the booking is either missing or in a state the
// operation does not permit.
func (s *BookingService) disambiguate(ctx context.Context, bookingID string) error {
	if _, err := s.repo.FindByID(ctx, bookingID); err != nil {
		return err
	}
	return domain.ErrInvalidTransition
}

func (s *BookingService) record(bookingID, action string, status domain.BookingStatus, actor string) {
	if s.audit == nil {
		return
	}
	s.audit.Record(domain.BookingEvent{
		BookingID: bookingID,
		Action:    action,
		Status:    status,
		Actor:     actor,
		Timestamp: time.Now().UTC(),
	})
}
