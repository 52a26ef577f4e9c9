package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitrina/vitrina-backend/internal/app/model"
	"github.com/vitrina/vitrina-backend/internal/app/repository"
	"github.com/vitrina/vitrina-backend/internal/db"
	"github.com/vitrina/vitrina-backend/pkg/util"
)

func setupAuthServiceTest(t *testing.T) (AuthService, repository.UserRepository) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	userRepo := repository.NewUserRepository(testDB)
	authService := NewAuthService(
		userRepo,
		"test-jwt-secret",
		15*time.Minute,
		7*24*time.Hour,
	)

	return authService, userRepo
}

func createTestUser(t *testing.T, userRepo repository.UserRepository, email, password string, role model.UserRole) *model.User {
	hash, err := util.HashPassword(password)
	require.NoError(t, err)

	user := &model.User{
		Email:        email,
		PasswordHash: hash,
		Name:         "Test User",
		Role:         role,
	}
	require.NoError(t, userRepo.Create(user))
	return user
}

func TestAuthService_Login(t *testing.T) {
	authService, userRepo := setupAuthServiceTest(t)

	email := "manager@example.com"
	password := "password123"
	createTestUser(t, userRepo, email, password, model.RoleManager)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "Valid credentials",
			email:    email,
			password: password,
			wantErr:  nil,
		},
		{
			name:     "Wrong password",
			email:    email,
			password: "wrong-password",
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:     "Unknown email",
			email:    "nobody@example.com",
			password: password,
			wantErr:  ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, tokens, err := authService.Login(tt.email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				assert.Nil(t, tokens)
			} else {
				require.NoError(t, err)
				require.NotNil(t, user)
				require.NotNil(t, tokens)
				assert.Equal(t, tt.email, user.Email)
				assert.NotEmpty(t, tokens.AccessToken)
				assert.NotEmpty(t, tokens.RefreshToken)

				claims, err := util.ValidateToken(tokens.AccessToken, "test-jwt-secret")
				require.NoError(t, err)
				assert.Equal(t, user.ID, claims.UserID)
				assert.Equal(t, string(model.RoleManager), claims.Role)
			}
		})
	}
}

func TestAuthService_Logout_InvalidToken(t *testing.T) {
	authService, _ := setupAuthServiceTest(t)

	// Malformed tokens need no revocation and must not fail logout.
	err := authService.Logout(context.Background(), "not-a-token")
	assert.NoError(t, err)
}

func TestAuthService_GetUserByID(t *testing.T) {
	authService, userRepo := setupAuthServiceTest(t)

	user := createTestUser(t, userRepo, "admin@example.com", "password123", model.RoleAdmin)

	found, err := authService.GetUserByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, found.Email)
	assert.Equal(t, model.RoleAdmin, found.Role)

	_, err = authService.GetUserByID(9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
