package serviceimpl

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"taskflow/domain/dto"
	"taskflow/domain/models"
	"taskflow/infrastructure/postgres"
	"taskflow/pkg/apperr"
	"taskflow/pkg/utils"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Task{}))

	return db
}

func newTestUserService(t *testing.T) (*UserServiceImpl, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)
	tokenManager := utils.NewTokenManager("test-secret", time.Hour)
	svc := NewUserService(postgres.NewUserRepository(db), tokenManager).(*UserServiceImpl)

	return svc, db
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	svc, db := newTestUserService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, &dto.CreateUserRequest{
		Username: "alice",
		Name:     "Alice A.",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "alice", user.Username)

	var stored models.User
	require.NoError(t, db.Where("username = ?", "alice").First(&stored).Error)
	assert.NotEqual(t, "secret", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret")))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.CreateUserRequest{Username: "alice", Password: "secret"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &dto.CreateUserRequest{Username: "alice", Password: "other"})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindConflict))
	assert.Equal(t, "username already exists", err.Error())
}

func TestLoginIssuesValidToken(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, &dto.CreateUserRequest{Username: "alice", Password: "secret"})
	require.NoError(t, err)

	token, user, err := svc.Login(ctx, &dto.LoginRequest{Username: "alice", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	claims, err := svc.tokenManager.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID.String(), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.CreateUserRequest{Username: "alice", Password: "secret"})
	require.NoError(t, err)

	_, _, wrongPassword := svc.Login(ctx, &dto.LoginRequest{Username: "alice", Password: "nope"})
	_, _, unknownUser := svc.Login(ctx, &dto.LoginRequest{Username: "mallory", Password: "secret"})

	require.Error(t, wrongPassword)
	require.Error(t, unknownUser)
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
	assert.True(t, apperr.Is(wrongPassword, apperr.KindAuth))
	assert.True(t, apperr.Is(unknownUser, apperr.KindAuth))
}

func TestListUsersReturnsAllAccounts(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	for _, username := range []string{"alice", "bob", "carol"} {
		_, err := svc.Register(ctx, &dto.CreateUserRequest{Username: username, Password: "secret"})
		require.NoError(t, err)
	}

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 3)
}
