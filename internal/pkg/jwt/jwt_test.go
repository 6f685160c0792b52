package jwt

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func TestGenerateAccessToken(t *testing.T) {
	svc := NewJWTService(testSecret, "1h")
	employeeID := uuid.NewString()

	token, expiresAt, err := svc.GenerateAccessToken(employeeID, RoleHR)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Greater(t, expiresAt, int64(0))

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, employeeID, claims["employee_id"])
	assert.Equal(t, "hr", claims["role"])
	assert.Equal(t, "access", claims["type"])
	assert.NotEmpty(t, claims["jti"])
}

func TestGenerateAccessToken_UniqueTokenIDs(t *testing.T) {
	svc := NewJWTService(testSecret, "1h")

	first, _, err := svc.GenerateAccessToken(uuid.NewString(), RoleEmployee)
	require.NoError(t, err)
	second, _, err := svc.GenerateAccessToken(uuid.NewString(), RoleEmployee)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestGenerateAccessToken_InvalidExpiration(t *testing.T) {
	svc := NewJWTService(testSecret, "not-a-duration")

	_, _, err := svc.GenerateAccessToken(uuid.NewString(), RoleAdmin)
	assert.Error(t, err)
}

func TestDecodeRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTService(testSecret, "1h")
	verifier := NewJWTService("a-different-secret", "1h")

	token, _, err := issuer.GenerateAccessToken(uuid.NewString(), RoleEmployee)
	require.NoError(t, err)

	_, err = verifier.JWTAuth().Decode(token)
	assert.Error(t, err)
}
