package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateUserRequest uses bare min tags so that a missing field fails with the
// same minimum-length message as an undersized one, matching the API contract.
type CreateUserRequest struct {
	Username string `json:"username" validate:"min=3,max=50"`
	Name     string `json:"name" validate:"omitempty,max=100"`
	Password string `json:"password" validate:"min=3,max=72"`
}

// UserResponse is the public view of a user. The password hash is never
// serialized.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
