package service

import (
	"github.com/styledecor/booking-api/internal/core/domain"
	"github.com/styledecor/booking-api/internal/core/ports"
)

// Authorization decisions are pure functions over the verified actor and the
// owner of the targeted resource. Every protected service operation calls one
// of these before touching state, so the checks cannot drift per route. A
// denial is always domain.ErrForbidden regardless of whether the resource
// exists.

// requireAdmin gates administrative operations.
func requireAdmin(actor ports.Actor) error {
	if actor.Role != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	return nil
}

// requireSelfOrAdmin gates self-scoped operations: the actor must be the
// resource owner, or an admin. The owner email is caller-supplied on many
// routes, so the equality check is what prevents one client reading
// another's data with a valid credential.
func requireSelfOrAdmin(actor ports.Actor, ownerEmail string) error {
	if actor.Role == domain.RoleAdmin {
		return nil
	}
	if actor.Anonymous() || actor.Email != ownerEmail {
		return domain.ErrForbidden
	}
	return nil
}

// requireAssignedDecoratorOrAdmin gates decorator-scoped operations against
// the booking's assigned decorator.
func requireAssignedDecoratorOrAdmin(actor ports.Actor, b *domain.Booking) error {
	if actor.Role == domain.RoleAdmin {
		return nil
	}
	if actor.Role != domain.RoleDecorator || b.DecoratorEmail == nil || *b.DecoratorEmail != actor.Email {
		return domain.ErrForbidden
	}
	return nil
}
