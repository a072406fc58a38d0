package services

import (
	"context"

	"taskflow/domain/dto"
	"taskflow/domain/models"
)

type UserService interface {
	// Register creates a user with a salted password hash. Fails with a
	// validation error on undersized fields and a conflict error on a
	// duplicate username.
	Register(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error)
	// Login verifies credentials and mints a bearer token. Both unknown
	// usernames and wrong passwords fail with the identical message.
	Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
}
