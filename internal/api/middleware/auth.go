package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/styledecor/booking-api/internal/api/metrics"
	"github.com/styledecor/booking-api/internal/core/domain"
	"github.com/styledecor/booking-api/internal/core/ports"
)

// RoleResolver resolves a verified email to its role. The credential carries
// only the email claim; the role always comes from the directory so a role
// change takes effect without re-issuing tokens.
type RoleResolver interface {
	Resolve(ctx context.Context, email string) (string, error)
}

// Auth verifies the bearer credential and injects the verified email and
// resolved role into the request context. Requests without a valid
// credential never reach the handler.
func Auth(tokens ports.TokenService, roles RoleResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			email, err := verifyHeader(c, tokens)
			if err != nil {
				return err
			}
			return injectActor(c, next, email, roles)
		}
	}
}

// AuthOptional admits anonymous requests but still rejects requests that
// present a broken credential: a bad token is an error, not anonymity.
func AuthOptional(tokens ports.TokenService, roles RoleResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Header.Get("Authorization") == "" {
				return next(c)
			}
			email, err := verifyHeader(c, tokens)
			if err != nil {
				return err
			}
			return injectActor(c, next, email, roles)
		}
	}
}

func verifyHeader(c echo.Context, tokens ports.TokenService) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		metrics.AuthDeniedTotal.WithLabelValues("missing_token").Inc()
		return "", domain.ErrMissingToken
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		metrics.AuthDeniedTotal.WithLabelValues("invalid_token").Inc()
		return "", domain.ErrInvalidToken
	}

	email, err := tokens.Verify(parts[1])
	if err != nil {
		metrics.AuthDeniedTotal.WithLabelValues("invalid_token").Inc()
		return "", err
	}
	return email, nil
}

func injectActor(c echo.Context, next echo.HandlerFunc, email string, roles RoleResolver) error {
	role, err := roles.Resolve(c.Request().Context(), email)
	if err != nil {
		return err
	}
	c.Set("email", email)
	c.Set("role", role)
	return next(c)
}
