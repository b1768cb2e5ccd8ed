package domain

import (
	"errors"
	"time"
)

var ErrServiceNotFound = errors.New("service not found")

// Service is a purchasable catalog item. Cost is an integer amount in the
// currency's minor unit.
type Service struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Cost        int64     `json:"cost" bson:"cost"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}
