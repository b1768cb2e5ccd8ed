package handler

import "time"

type createServiceRequest struct {
	Name        string `json:"name" validate:"required"`
	Cost        int64  `json:"cost" validate:"required,gt=0"`
	Description string `json:"description,omitempty"`
}

type updateServiceRequest struct {
	Name        *string `json:"name,omitempty"`
	Cost        *int64  `json:"cost,omitempty" validate:"omitempty,gt=0"`
	Description *string `json:"description,omitempty"`
}

type serviceResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Cost        int64     `json:"cost"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
