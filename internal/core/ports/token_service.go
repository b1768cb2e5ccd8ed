package ports

// TokenService mints and validates the signed credential binding an email to
// a request.
type TokenService interface {
	// Issue returns a signed token embedding email with a fixed expiry.
	Issue(email string) (string, error)
	// Verify returns the email claim of a valid token, or
	// domain.ErrInvalidToken when the signature or expiry check fails.
	Verify(token string) (string, error)
}
