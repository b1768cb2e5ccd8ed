package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/styledecor/booking-api/internal/core/domain"
	"github.com/styledecor/booking-api/internal/core/ports"
)

// UserHandler handles identity directory requests.
type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		Email:     u.Email,
		Role:      u.Role,
		Name:      u.Name,
		Phone:     u.Phone,
		Address:   u.Address,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// Register handles POST /users. Registration is idempotent: repeating it for
// an existing email returns the stored record with created=false and 200.
//
// @Summary      Register or re-register an identity
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerUserRequest  true  "Profile"
// @Success      200   {object}  registerUserResponse
// @Success      201   {object}  registerUserResponse
// @Failure      400   {object}  errorResponse
// @Router       /users [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.users.Register(c.Request().Context(), ports.RegisterInput{
		Email:   req.Email,
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		return err
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	return c.JSON(status, registerUserResponse{
		Created: result.Created,
		User:    toUserResponse(result.User),
	})
}

// Get handles GET /users/:email.
//
// @Summary      Fetch a profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string  true  "Email"
// @Success      200    {object}  userResponse
// @Failure      403    {object}  errorResponse
// @Failure      404    {object}  errorResponse
// @Router       /users/{email} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.users.GetProfile(c.Request().Context(), ctxActor(c), c.Param("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// GetRole handles GET /users/role/:email. Unknown emails resolve to the
// default user role rather than 404.
//
// @Summary      Resolve a role
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string  true  "Email"
// @Success      200    {object}  roleResponse
// @Failure      403    {object}  errorResponse
// @Router       /users/role/{email} [get]
func (h *UserHandler) GetRole(c echo.Context) error {
	email := c.Param("email")
	role, err := h.users.GetRole(c.Request().Context(), ctxActor(c), email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, roleResponse{Email: email, Role: role})
}

// Update handles PUT /users/:email.
//
// @Summary      Update a profile or role
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string             true  "Email"
// @Param        body   body      updateUserRequest  true  "Fields to merge"
// @Success      200    {object}  userResponse
// @Failure      400    {object}  errorResponse
// @Failure      403    {object}  errorResponse
// @Router       /users/{email} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.users.UpdateProfile(c.Request().Context(), ctxActor(c), c.Param("email"), ports.ProfileUpdate{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
		Role:    req.Role,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// ListAll handles GET /admin/users.
//
// @Summary      Enumerate all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   userResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin/users [get]
func (h *UserHandler) ListAll(c echo.Context) error {
	users, err := h.users.ListAll(c.Request().Context(), ctxActor(c))
	if err != nil {
		return err
	}
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return c.JSON(http.StatusOK, out)
}
