package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/styledecor/booking-api/internal/core/ports"
)

// TokenHandler issues session credentials.
type TokenHandler struct {
	tokens ports.TokenService
}

func NewTokenHandler(tokens ports.TokenService) *TokenHandler {
	return &TokenHandler{tokens: tokens}
}

type issueTokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type issueTokenResponse struct {
	Token string `json:"token"`
}

// Issue handles POST /jwt.
//
// @Summary      Issue a session credential for an email identity
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      issueTokenRequest  true  "Identity claim"
// @Success      200   {object}  issueTokenResponse
// @Failure      400   {object}  errorResponse
// @Router       /jwt [post]
func (h *TokenHandler) Issue(c echo.Context) error {
	var req issueTokenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.tokens.Issue(req.Email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, issueTokenResponse{Token: token})
}
