package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusvoice/internal/shared/authorization"
)

func TestJWTService_GenerateAndVerify(t *testing.T) {
	svc := NewJWTService("test-secret", 7, "campusvoice")

	token, err := svc.Generate(42, authorization.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)

	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, authorization.RoleAdmin, claims.Role)
	assert.Equal(t, "campusvoice", claims.Issuer)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_Verify_WrongSecret(t *testing.T) {
	svc := NewJWTService("test-secret", 7, "campusvoice")
	other := NewJWTService("other-secret", 7, "campusvoice")

	token, err := svc.Generate(1, authorization.RoleStudent)
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.Error(t, err)
}

func TestJWTService_Verify_Expired(t *testing.T) {
	svc := NewJWTService("test-secret", 7, "campusvoice")

	claims := &Claims{
		UserID: 1,
		Role:   authorization.RoleStudent,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.Verify(signed)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_Verify_Garbage(t *testing.T) {
	svc := NewJWTService("test-secret", 7, "campusvoice")
	_, err := svc.Verify("not.a.token")
	assert.Error(t, err)
}

func TestBcryptPasswordHasher(t *testing.T) {
	hasher := NewBcryptPasswordHasher(4)

	hash, err := hasher.Hash("secret1")
	require.NoError(t, err)
	require.NotEqual(t, "secret1", hash)

	assert.NoError(t, hasher.Verify("secret1", hash))
	assert.Error(t, hasher.Verify("wrong", hash))
	assert.Error(t, hasher.Verify("secret1", "not-a-hash"))
}

func TestNewBcryptPasswordHasher_CostClamped(t *testing.T) {
	hasher := NewBcryptPasswordHasher(99)

	hash, err := hasher.Hash("secret1")
	require.NoError(t, err)
	assert.NoError(t, hasher.Verify("secret1", hash))
}
