package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt-testing"

func TestGenerateTokenPair(t *testing.T) {
	tokens, err := GenerateTokenPair(1, "admin@example.com", "admin", testSecret, 15*time.Minute, 7*24*time.Hour)
	require.NoError(t, err)
	require.NotNil(t, tokens)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.NotEqual(t, tokens.AccessToken, tokens.RefreshToken)
}

func TestValidateToken(t *testing.T) {
	userID := uint(123)
	email := "admin@example.com"
	role := "admin"

	tokens, err := GenerateTokenPair(userID, email, role, testSecret, 15*time.Minute, 7*24*time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		secret  string
		wantErr error
	}{
		{"Valid access token", tokens.AccessToken, testSecret, nil},
		{"Valid refresh token", tokens.RefreshToken, testSecret, nil},
		{"Invalid secret", tokens.AccessToken, "wrong-secret", ErrInvalidToken},
		{"Invalid token format", "invalid.token.format", testSecret, ErrInvalidToken},
		{"Empty token", "", testSecret, ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := ValidateToken(tt.token, tt.secret)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
			} else {
				require.NoError(t, err)
				require.NotNil(t, claims)
				assert.Equal(t, userID, claims.UserID)
				assert.Equal(t, email, claims.Email)
				assert.Equal(t, role, claims.Role)
			}
		})
	}
}

func TestExpiredToken(t *testing.T) {
	tokens, err := GenerateTokenPair(1, "admin@example.com", "admin", testSecret, 1*time.Nanosecond, 1*time.Nanosecond)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	claims, err := ValidateToken(tokens.AccessToken, testSecret)
	assert.ErrorIs(t, err, ErrExpiredToken)
	assert.Nil(t, claims)
}

func TestTokenClaims(t *testing.T) {
	tokens, err := GenerateTokenPair(42, "manager@example.com", "manager", testSecret, 15*time.Minute, 7*24*time.Hour)
	require.NoError(t, err)

	claims, err := ValidateToken(tokens.AccessToken, testSecret)
	require.NoError(t, err)
	require.NotNil(t, claims)

	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "manager@example.com", claims.Email)
	assert.Equal(t, "manager", claims.Role)
	assert.NotNil(t, claims.ExpiresAt)
	assert.NotNil(t, claims.IssuedAt)
	assert.True(t, claims.IssuedAt.Before(claims.ExpiresAt.Time))
}
