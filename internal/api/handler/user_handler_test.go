package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/styledecor/booking-api/internal/core/domain"
	"github.com/styledecor/booking-api/internal/core/ports"
)

type stubUserService struct {
	registerFn func(ctx context.Context, input ports.RegisterInput) (*ports.RegisterResult, error)
	updateFn   func(ctx context.Context, actor ports.Actor, email string, fields ports.ProfileUpdate) (*domain.User, error)
	roleFn     func(ctx context.Context, actor ports.Actor, email string) (string, error)
}

func (s *stubUserService) Register(ctx context.Context, input ports.RegisterInput) (*ports.RegisterResult, error) {
	return s.registerFn(ctx, input)
}

func (s *stubUserService) GetProfile(_ context.Context, _ ports.Actor, email string) (*domain.User, error) {
	return &domain.User{Email: email, Role: domain.RoleUser}, nil
}

func (s *stubUserService) GetRole(ctx context.Context, actor ports.Actor, email string) (string, error) {
	return s.roleFn(ctx, actor, email)
}

func (s *stubUserService) UpdateProfile(ctx context.Context, actor ports.Actor, email string, fields ports.ProfileUpdate) (*domain.User, error) {
	return s.updateFn(ctx, actor, email, fields)
}

func (s *stubUserService) ListAll(_ context.Context, _ ports.Actor) ([]*domain.User, error) {
	return nil, nil
}

func newTestContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestUserHandler_Register_Created(t *testing.T) {
	stub := &stubUserService{
		registerFn: func(_ context.Context, input ports.RegisterInput) (*ports.RegisterResult, error) {
			if input.Email != "alice@example.com" || input.Name != "Alice" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &ports.RegisterResult{
				Created: true,
				User:    &domain.User{Email: input.Email, Role: domain.RoleUser, Name: input.Name},
			}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/users", `{"email":"alice@example.com","name":"Alice"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["created"] != true {
		t.Fatalf("expected created=true, got %v", resp["created"])
	}
}

func TestUserHandler_Register_Existing(t *testing.T) {
	stub := &stubUserService{
		registerFn: func(_ context.Context, input ports.RegisterInput) (*ports.RegisterResult, error) {
			return &ports.RegisterResult{
				Created: false,
				User:    &domain.User{Email: input.Email, Role: domain.RoleUser},
			}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/users", `{"email":"alice@example.com"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("repeat registration must return 200, got %d", rec.Code)
	}
}

func TestUserHandler_Register_InvalidEmail(t *testing.T) {
	stub := &stubUserService{
		registerFn: func(_ context.Context, _ ports.RegisterInput) (*ports.RegisterResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewUserHandler(stub)

	c, _ := newTestContext(http.MethodPost, "/users", `{"email":"not-an-email"}`)
	err := h.Register(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestUserHandler_Update_PassesActorAndFields(t *testing.T) {
	stub := &stubUserService{
		updateFn: func(_ context.Context, actor ports.Actor, email string, fields ports.ProfileUpdate) (*domain.User, error) {
			if actor.Email != "admin@example.com" || actor.Role != domain.RoleAdmin {
				t.Fatalf("actor not propagated: %+v", actor)
			}
			if email != "alice@example.com" {
				t.Fatalf("unexpected email: %s", email)
			}
			if fields.Role == nil || *fields.Role != domain.RoleDecorator {
				t.Fatalf("role field not propagated")
			}
			if fields.Name != nil {
				t.Fatalf("omitted field must stay nil")
			}
			return &domain.User{Email: email, Role: *fields.Role}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(http.MethodPut, "/users/alice@example.com", `{"role":"decorator"}`)
	c.SetParamNames("email")
	c.SetParamValues("alice@example.com")
	c.Set("email", "admin@example.com")
	c.Set("role", domain.RoleAdmin)

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_GetRole(t *testing.T) {
	stub := &stubUserService{
		roleFn: func(_ context.Context, _ ports.Actor, email string) (string, error) {
			return domain.RoleUser, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(http.MethodGet, "/users/role/alice@example.com", "")
	c.SetParamNames("email")
	c.SetParamValues("alice@example.com")
	c.Set("email", "alice@example.com")
	c.Set("role", domain.RoleUser)

	if err := h.GetRole(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["role"] != domain.RoleUser || resp["email"] != "alice@example.com" {
		t.Fatalf("unexpected payload: %v", resp)
	}
}
