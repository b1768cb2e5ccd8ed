package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/styledecor/booking-api/internal/core/ports"
)

// ctxActor extracts the verified identity injected by the Auth middleware.
// On routes behind AuthOptional the actor may be the zero value (anonymous);
// on routes behind Auth the middleware guarantees both values are set.
func ctxActor(c echo.Context) ports.Actor {
	email, _ := c.Get("email").(string)
	role, _ := c.Get("role").(string)
	return ports.Actor{Email: email, Role: role}
}
