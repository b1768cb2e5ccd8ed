package domain

import (
	"errors"
	"time"
)

// BookingStatus represents the fulfillment state of a booking.
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusAssigned   BookingStatus = "assigned"
	StatusInProgress BookingStatus = "in_progress"
	StatusCompleted  BookingStatus = "completed"
	// StatusCancelled never appears on a stored booking; cancellation deletes
	// the document. It is recorded in the audit trail only.
	StatusCancelled BookingStatus = "cancelled"
)

// PaymentStatus tracks the payment axis independently of fulfillment.
type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
)

// validTransitions defines the allowed state machine transitions for the
// status-update operation. Assignment is a separate operation because it must
// write the decorator together with the status.
var validTransitions = map[BookingStatus][]BookingStatus{
	StatusAssigned:   {StatusInProgress},
	StatusInProgress: {StatusCompleted},
}

var ErrBookingNotFound = errors.New("booking not found")
var ErrInvalidTransition = errors.New("invalid status transition")
var ErrAlreadyPaid = errors.New("booking already paid")
var ErrForbidden = errors.New("access forbidden")

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionSources returns every status from which next is reachable via a
// status update. Used to build conditional updates that validate the
// transition and apply it in a single write.
func TransitionSources(next BookingStatus) []BookingStatus {
	var sources []BookingStatus
	for from, targets := range validTransitions {
		for _, t := range targets {
			if t == next {
				sources = append(sources, from)
			}
		}
	}
	return sources
}

// ParseBookingStatus validates a caller-supplied status string against the
// closed status set. Only statuses reachable through a status update are
// accepted; "pending" and "assigned" are set exclusively by create and assign.
func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(s) {
	case StatusInProgress, StatusCompleted:
		return BookingStatus(s), true
	}
	return "", false
}

// Booking is the core aggregate root.
type Booking struct {
	ID             string        `json:"id" bson:"_id,omitempty"`
	ClientEmail    string        `json:"client_email" bson:"client_email"`
	ServiceID      string        `json:"service_id" bson:"service_id"`
	Address        string        `json:"address,omitempty" bson:"address,omitempty"`
	Notes          string        `json:"notes,omitempty" bson:"notes,omitempty"`
	Status         BookingStatus `json:"status" bson:"status"`
	PaymentStatus  PaymentStatus `json:"payment_status" bson:"payment_status"`
	DecoratorEmail *string       `json:"decorator_email" bson:"decorator_email,omitempty"`
	TransactionID  *string       `json:"transaction_id" bson:"transaction_id,omitempty"`
	BookedAt       time.Time     `json:"booked_at" bson:"booked_at"`
}
