package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workjunction-backend/internal/database/models"
)

func newTestUser() *models.User {
	return &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "jane.doe@example.com",
		Role:      models.UserRoleWorker,
	}
}

func TestNewAuthServiceRequiresSecret(t *testing.T) {
	_, err := NewAuthService("", time.Hour)
	assert.Error(t, err)
}

func TestGenerateAndValidateJWT(t *testing.T) {
	service, err := NewAuthService("test-secret", time.Hour)
	require.NoError(t, err)

	user := newTestUser()
	token, err := service.GenerateJWT(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, string(models.UserRoleWorker), claims.Role)
	assert.Equal(t, "workjunction-backend", claims.Issuer)
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	issuer, err := NewAuthService("secret-one", time.Hour)
	require.NoError(t, err)
	verifier, err := NewAuthService("secret-two", time.Hour)
	require.NoError(t, err)

	token, err := issuer.GenerateJWT(newTestUser())
	require.NoError(t, err)

	_, err = verifier.ValidateJWT(token)
	assert.Error(t, err)
}

func TestValidateJWTRejectsExpiredToken(t *testing.T) {
	service, err := NewAuthService("test-secret", time.Hour)
	require.NoError(t, err)
	service.expiration = -time.Minute

	token, err := service.GenerateJWT(newTestUser())
	require.NoError(t, err)

	_, err = service.ValidateJWT(token)
	assert.Error(t, err)
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	service, err := NewAuthService("test-secret", time.Hour)
	require.NoError(t, err)

	_, err = service.ValidateJWT("not-a-token")
	assert.Error(t, err)
}
