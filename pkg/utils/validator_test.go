package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskflow/domain/dto"
)

func TestValidateStructShortUsername(t *testing.T) {
	req := dto.CreateUserRequest{Username: "ab", Password: "secret"}

	err := ValidateStruct(&req)
	require.Error(t, err)
	assert.Equal(t, "username must be at least 3 characters long", ValidationMessage(err))
}

func TestValidateStructMissingPassword(t *testing.T) {
	req := dto.CreateUserRequest{Username: "alice"}

	err := ValidateStruct(&req)
	require.Error(t, err)
	assert.Equal(t, "password must be at least 3 characters long", ValidationMessage(err))
}

func TestValidateStructInvalidStatus(t *testing.T) {
	req := dto.CreateTaskRequest{Title: "buy milk", Status: "someday"}

	err := ValidateStruct(&req)
	require.Error(t, err)
	assert.Equal(t, "status must be one of: todo, in-progress, done", ValidationMessage(err))
}

func TestValidateStructValidRequest(t *testing.T) {
	req := dto.CreateUserRequest{Username: "alice", Name: "Alice", Password: "secret"}
	assert.NoError(t, ValidateStruct(&req))
}
