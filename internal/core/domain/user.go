package domain

import (
	"errors"
	"time"
)

const (
	RoleUser      = "user"
	RoleDecorator = "decorator"
	RoleAdmin     = "admin"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidRole = errors.New("invalid role")

// User models an identity in the directory. Email is the unique key; role
// governs what the holder of a credential for this email may do.
type User struct {
	Email     string    `json:"email" bson:"email"`
	Role      string    `json:"role" bson:"role"`
	Name      string    `json:"name,omitempty" bson:"name,omitempty"`
	Phone     string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Address   string    `json:"address,omitempty" bson:"address,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// ValidRole reports whether r is one of the known roles.
func ValidRole(r string) bool {
	return r == RoleUser || r == RoleDecorator || r == RoleAdmin
}
