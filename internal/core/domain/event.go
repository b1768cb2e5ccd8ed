package domain

import "time"

// BookingEvent records one lifecycle mutation for the audit trail.
type BookingEvent struct {
	BookingID string
	Action    string // created, assigned, status_updated, payment_confirmed, cancelled
	Status    BookingStatus
	Actor     string // email of the caller, empty for anonymous creation
	Timestamp time.Time
}
