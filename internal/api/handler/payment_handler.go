package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/styledecor/booking-api/internal/core/ports"
)

// PaymentHandler exposes the payment-intent call of the provider.
type PaymentHandler struct {
	provider ports.PaymentProvider
}

func NewPaymentHandler(provider ports.PaymentProvider) *PaymentHandler {
	return &PaymentHandler{provider: provider}
}

type createIntentRequest struct {
	Amount   int64  `json:"amount" validate:"required,gt=0"`
	Currency string `json:"currency" validate:"required,len=3"`
}

type createIntentResponse struct {
	ClientSecret string `json:"client_secret"`
}

// CreateIntent handles POST /create-payment-intent.
//
// @Summary      Request a payment-provider client secret
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createIntentRequest  true  "Amount in minor units"
// @Success      200   {object}  createIntentResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /create-payment-intent [post]
func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	var req createIntentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	intent, err := h.provider.CreateIntent(c.Request().Context(), req.Amount, req.Currency)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, createIntentResponse{ClientSecret: intent.ClientSecret})
}
