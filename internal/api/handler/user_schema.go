package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type registerUserRequest struct {
	Email   string `json:"email" validate:"required,email"`
	Name    string `json:"name,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

type userResponse struct {
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Name      string    `json:"name,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type registerUserResponse struct {
	Created bool         `json:"created"`
	User    userResponse `json:"user"`
}

type roleResponse struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// updateUserRequest uses pointers so an omitted field is left untouched
// rather than cleared. Role changes require the admin role.
type updateUserRequest struct {
	Name    *string `json:"name,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
	Role    *string `json:"role,omitempty" validate:"omitempty,oneof=user decorator admin"`
}
