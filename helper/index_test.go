package helper

import (
	"testing"

	"railway_booking/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")

	assert.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)
	assert.True(t, CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, CheckPasswordHash("wrong-pass", hash))
}

func TestAccessToken_RoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	signed, err := GenerateAccessToken(model.TokenClaim{
		UserId:  42,
		Email:   "asha@example.com",
		IsAdmin: true,
	})
	assert.NoError(t, err)

	token, err := ParseToken(signed)
	assert.NoError(t, err)
	assert.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, float64(42), claims["userId"])
	assert.Equal(t, "asha@example.com", claims["email"])
	assert.Equal(t, true, claims["isAdmin"])
}

func TestParseToken_RejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-one")
	signed, err := GenerateAccessToken(model.TokenClaim{UserId: 1, Email: "a@b.c"})
	assert.NoError(t, err)

	t.Setenv("JWT_SECRET", "secret-two")
	_, err = ParseToken(signed)

	assert.Error(t, err)
}
