package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/pjrivas16-ctrl/datos-aqg-app/models"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("Correcto1Horse")
	assert.NoError(t, err)
	assert.NotEqual(t, "Correcto1Horse", hash)
	assert.True(t, CheckPassword("Correcto1Horse", hash))
	assert.False(t, CheckPassword("wrong", hash))
}

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := &models.User{
		Model:       gorm.Model{ID: 42},
		CompanyName: "Test Dealer",
		Email:       "dealer@example.com",
	}

	token, err := GenerateToken(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	userID, err := ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	_, err := ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestTokenExpiry(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	user := &models.User{Model: gorm.Model{ID: 1}, Email: "x@example.com"}
	token, err := GenerateToken(user)
	assert.NoError(t, err)

	expiry := TokenExpiry(token)
	assert.False(t, expiry.IsZero())
}
