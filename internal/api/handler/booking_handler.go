package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/styledecor/booking-api/internal/api/metrics"
	"github.com/styledecor/booking-api/internal/core/domain"
	"github.com/styledecor/booking-api/internal/core/ports"
)

// BookingHandler handles booking lifecycle requests.
type BookingHandler struct {
	bookings ports.BookingService
}

func NewBookingHandler(bookings ports.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	return bookingResponse{
		ID:             b.ID,
		ClientEmail:    b.ClientEmail,
		ServiceID:      b.ServiceID,
		Address:        b.Address,
		Notes:          b.Notes,
		Status:         string(b.Status),
		PaymentStatus:  string(b.PaymentStatus),
		DecoratorEmail: b.DecoratorEmail,
		TransactionID:  b.TransactionID,
		BookedAt:       b.BookedAt,
	}
}

func toBookingList(bookings []*domain.Booking) []bookingResponse {
	out := make([]bookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, toBookingResponse(b))
	}
	return out
}

// Create handles POST /bookings. The route admits anonymous callers; an
// authenticated caller owns the booking regardless of the body email.
//
// @Summary      Create a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        body  body      createBookingRequest  true  "Booking details"
// @Success      201   {object}  bookingResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	actor := ctxActor(c)
	booking, err := h.bookings.Create(c.Request().Context(), actor, ports.CreateBookingInput{
		ClientEmail: req.ClientEmail,
		ServiceID:   req.ServiceID,
		Address:     req.Address,
		Notes:       req.Notes,
	})
	if err != nil {
		return err
	}

	authenticated := "false"
	if !actor.Anonymous() {
		authenticated = "true"
	}
	metrics.BookingsCreatedTotal.WithLabelValues(authenticated).Inc()

	return c.JSON(http.StatusCreated, toBookingResponse(booking))
}

// ListForClient handles GET /bookings?email=.
//
// @Summary      List a client's bookings
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        email  query     string  true  "Client email"
// @Success      200    {array}   bookingResponse
// @Failure      403    {object}  errorResponse
// @Router       /bookings [get]
func (h *BookingHandler) ListForClient(c echo.Context) error {
	bookings, err := h.bookings.ListForClient(c.Request().Context(), ctxActor(c), c.QueryParam("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBookingList(bookings))
}

// ListForDecorator handles GET /bookings/decorator/:email.
//
// @Summary      List bookings assigned to a decorator
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string  true  "Decorator email"
// @Success      200    {array}   bookingResponse
// @Failure      403    {object}  errorResponse
// @Router       /bookings/decorator/{email} [get]
func (h *BookingHandler) ListForDecorator(c echo.Context) error {
	bookings, err := h.bookings.ListForDecorator(c.Request().Context(), ctxActor(c), c.Param("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBookingList(bookings))
}

// ListAll handles GET /bookings/all and GET /admin/bookings.
//
// @Summary      List every booking
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   bookingResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin/bookings [get]
func (h *BookingHandler) ListAll(c echo.Context) error {
	bookings, err := h.bookings.ListAll(c.Request().Context(), ctxActor(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBookingList(bookings))
}

// Assign handles PATCH /bookings/assign/:id.
//
// @Summary      Assign a decorator to a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Booking id"
// @Param        body  body      assignBookingRequest  true  "Decorator"
// @Success      200   {object}  bookingResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /bookings/assign/{id} [patch]
func (h *BookingHandler) Assign(c echo.Context) error {
	var req assignBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.bookings.Assign(c.Request().Context(), ctxActor(c), c.Param("id"), req.DecoratorEmail)
	if err != nil {
		return err
	}

	metrics.BookingTransitionsTotal.WithLabelValues(string(domain.StatusAssigned)).Inc()
	return c.JSON(http.StatusOK, toBookingResponse(booking))
}

// UpdateStatus handles PATCH /bookings/status/:id.
//
// @Summary      Advance a booking's fulfillment status
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Booking id"
// @Param        body  body      updateStatusRequest  true  "Target status"
// @Success      200   {object}  bookingResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /bookings/status/{id} [patch]
func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.bookings.UpdateStatus(c.Request().Context(), ctxActor(c), c.Param("id"), req.Status)
	if err != nil {
		return err
	}

	metrics.BookingTransitionsTotal.WithLabelValues(req.Status).Inc()
	return c.JSON(http.StatusOK, toBookingResponse(booking))
}

// ConfirmPayment handles PATCH /bookings/payment-success/:id.
//
// @Summary      Confirm a booking's payment
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Booking id"
// @Param        body  body      confirmPaymentRequest  true  "Transaction"
// @Success      200   {object}  bookingResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /bookings/payment-success/{id} [patch]
func (h *BookingHandler) ConfirmPayment(c echo.Context) error {
	var req confirmPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.bookings.ConfirmPayment(c.Request().Context(), ctxActor(c), c.Param("id"), req.TransactionID)
	if err != nil {
		return err
	}

	metrics.PaymentsConfirmedTotal.Inc()
	return c.JSON(http.StatusOK, toBookingResponse(booking))
}

// Cancel handles DELETE /bookings/:id.
//
// @Summary      Cancel (delete) a booking
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Booking id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /bookings/{id} [delete]
func (h *BookingHandler) Cancel(c echo.Context) error {
	if err := h.bookings.Cancel(c.Request().Context(), ctxActor(c), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
