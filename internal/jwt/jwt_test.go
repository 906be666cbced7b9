package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_GenerateAndGetClaims(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(time.Minute))

	userID := uuid.New()
	ctx := context.Background()

	token, err := j.Generate(ctx, userID, "alice@example.com", "alice")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := j.GetClaims(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "alice", claims.Username())
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(-time.Minute))

	token, err := j.Generate(context.Background(), uuid.New(), "a@example.com", "")
	require.NoError(t, err)

	claims, err := j.GetClaims(context.Background(), token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWT_InvalidToken(t *testing.T) {
	j := New(WithSecretKey("secret"))

	claims, err := j.GetClaims(context.Background(), "invalid.token.string")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWT_WrongSecret(t *testing.T) {
	j1 := New(WithSecretKey("secret1"))
	j2 := New(WithSecretKey("secret2"))

	token, err := j1.Generate(context.Background(), uuid.New(), "a@example.com", "")
	require.NoError(t, err)

	_, err = j2.GetClaims(context.Background(), token)
	assert.Error(t, err)
}

func TestJWT_NoSecret(t *testing.T) {
	_, err := New().GetClaims(context.Background(), "a.b.c")
	assert.EqualError(t, err, "jwt secret not configured")
}

func TestJWT_NonUUIDSubject(t *testing.T) {
	claims := gojwt.RegisteredClaims{
		Subject:   "service",
		ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Minute)),
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("s"))
	require.NoError(t, err)

	_, err = New(WithSecretKey("s")).GetClaims(context.Background(), token)
	assert.EqualError(t, err, "invalid sub claim")
}

func TestGetTokenFromRequest(t *testing.T) {
	tests := []struct {
		name          string
		header        string
		expectedToken string
		expectError   bool
	}{
		{"ValidBearer", "Bearer mytoken123", "mytoken123", false},
		{"LowercaseBearer", "bearer mytoken123", "mytoken123", false},
		{"NoHeader", "", "", true},
		{"InvalidFormat", "Token mytoken123", "", true},
		{"TooManyParts", "Bearer a b c", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := GetTokenFromRequest(req)
			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}
