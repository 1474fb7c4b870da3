package helper

import (
	"errors"
	"fmt"
	"os"
	"time"

	"railway_booking/database"
	"railway_booking/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func JwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func GetUserByEmail(email string) (*model.User, error) {
	var user model.User
	if err := database.DB.Where(&model.User{Email: email}).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func GenerateAccessToken(claim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["userId"] = claim.UserId
	claims["email"] = claim.Email
	claims["isAdmin"] = claim.IsAdmin
	claims["exp"] = time.Now().Add(time.Minute * 60).Unix()

	return token.SignedString(JwtSecret())
}

func GenerateRefreshToken(claim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["userId"] = claim.UserId
	claims["email"] = claim.Email
	claims["exp"] = time.Now().Add(time.Hour * 24 * 7).Unix()

	return token.SignedString(JwtSecret())
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return JwtSecret(), nil
	})
}

// GetInfoUserFromToken resolves the authenticated user from the parsed token in
// Locals. Identity always flows from the claims, never from ambient state.
func GetInfoUserFromToken(c *fiber.Ctx) (model.TokenClaim, *model.User, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return model.TokenClaim{}, nil, errors.New("no token in context")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.TokenClaim{}, nil, errors.New("invalid token claims")
	}

	userIdFloat, _ := claims["userId"].(float64)
	if userIdFloat == 0 {
		return model.TokenClaim{}, nil, errors.New("token carries no user id")
	}
	email, _ := claims["email"].(string)

	var user model.User
	if err := database.DB.First(&user, uint(userIdFloat)).Error; err != nil {
		return model.TokenClaim{}, nil, err
	}

	claim := model.TokenClaim{
		UserId:  user.ID,
		Email:   email,
		IsAdmin: user.IsAdmin,
	}
	return claim, &user, nil
}
