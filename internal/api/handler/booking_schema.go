package handler

import "time"

type createBookingRequest struct {
	// ClientEmail is ignored when the caller presents a credential; the
	// verified claim owns the booking.
	ClientEmail string `json:"client_email" validate:"required,email"`
	ServiceID   string `json:"service_id" validate:"required"`
	Address     string `json:"address,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

type assignBookingRequest struct {
	DecoratorEmail string `json:"decorator_email" validate:"required,email"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=in_progress completed"`
}

type confirmPaymentRequest struct {
	TransactionID string `json:"transaction_id" validate:"required"`
}

type bookingResponse struct {
	ID             string    `json:"id"`
	ClientEmail    string    `json:"client_email"`
	ServiceID      string    `json:"service_id"`
	Address        string    `json:"address,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	Status         string    `json:"status"`
	PaymentStatus  string    `json:"payment_status"`
	DecoratorEmail *string   `json:"decorator_email"`
	TransactionID  *string   `json:"transaction_id"`
	BookedAt       time.Time `json:"booked_at"`
}
