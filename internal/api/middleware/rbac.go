package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/styledecor/booking-api/internal/api/metrics"
	"github.com/styledecor/booking-api/internal/core/domain"
)

// RBAC enforces coarse role-based access control on a route. Resource-level
// ownership checks stay in the service layer; this gate only keeps roles
// that can never pass off the handlers entirely.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				metrics.AuthDeniedTotal.WithLabelValues("forbidden").Inc()
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
