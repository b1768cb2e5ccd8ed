package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/styledecor/booking-api/internal/core/domain"
)

// stubTokens accepts a single well-known token.
type stubTokens struct {
	email string
}

func (s *stubTokens) Issue(email string) (string, error) { return "tok-" + email, nil }

func (s *stubTokens) Verify(token string) (string, error) {
	if token == "tok-"+s.email {
		return s.email, nil
	}
	return "", domain.ErrInvalidToken
}

type stubRoles struct {
	role string
	err  error
}

func (s *stubRoles) Resolve(_ context.Context, _ string) (string, error) {
	return s.role, s.err
}

func newAuthContext(header string) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	return e, e.NewContext(req, rec), rec
}

func TestAuth_ValidToken(t *testing.T) {
	_, c, rec := newAuthContext("Bearer tok-alice@example.com")

	called := false
	mw := Auth(&stubTokens{email: "alice@example.com"}, &stubRoles{role: domain.RoleDecorator})
	handler := mw(func(c echo.Context) error {
		called = true
		if c.Get("email") != "alice@example.com" {
			t.Fatalf("email not injected")
		}
		if c.Get("role") != domain.RoleDecorator {
			t.Fatalf("role not injected")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	_, c, _ := newAuthContext("")

	mw := Auth(&stubTokens{email: "alice@example.com"}, &stubRoles{role: domain.RoleUser})
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
}

func TestAuth_WrongScheme(t *testing.T) {
	_, c, _ := newAuthContext("Token abc")

	mw := Auth(&stubTokens{email: "alice@example.com"}, &stubRoles{role: domain.RoleUser})
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	_, c, _ := newAuthContext("Bearer forged")

	mw := Auth(&stubTokens{email: "alice@example.com"}, &stubRoles{role: domain.RoleUser})
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthOptional_NoHeaderIsAnonymous(t *testing.T) {
	_, c, rec := newAuthContext("")

	called := false
	mw := AuthOptional(&stubTokens{email: "alice@example.com"}, &stubRoles{role: domain.RoleUser})
	handler := mw(func(c echo.Context) error {
		called = true
		if c.Get("email") != nil {
			t.Fatalf("anonymous request must not carry an email")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthOptional_BrokenCredentialRejected(t *testing.T) {
	_, c, _ := newAuthContext("Bearer forged")

	mw := AuthOptional(&stubTokens{email: "alice@example.com"}, &stubRoles{role: domain.RoleUser})
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
