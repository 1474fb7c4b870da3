package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"railway_booking/constants"
	"railway_booking/database"
	"railway_booking/helper"
	"railway_booking/model"
	"railway_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const refreshTokenTTL = time.Hour * 24 * 7

func refreshKey(userId uint) string {
	return fmt.Sprintf("refresh_token:%d", userId)
}

func setAuthCookies(c *fiber.Ctx, access, refresh string) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    access,
		HTTPOnly: true,
		SameSite: "None",
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refresh,
		HTTPOnly: true,
		SameSite: "None",
		Path:     "/",
	})
}

func Register(c *fiber.Ctx) error {
	input := c.Locals("input").(model.RegisterInput)

	existing, err := helper.GetUserByEmail(input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if existing != nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.EMAIL_TAKEN, errors.New("email already registered"))
	}

	hashed, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	user := model.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     strings.ToLower(input.Email),
		Phone:     input.Phone,
		Password:  hashed,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		// unique index on email is the backstop for concurrent registrations
		if strings.Contains(err.Error(), "Duplicate entry") {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.EMAIL_TAKEN, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"id":    user.ID,
		"email": user.Email,
	})
}

func Login(c *fiber.Ctx) error {
	loginInput := new(model.LoginInput)
	if err := c.BodyParser(loginInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, err)
	}
	if loginInput.Email == "" || loginInput.Password == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, errors.New("email and password are required"))
	}

	user, err := helper.GetUserByEmail(strings.ToLower(loginInput.Email))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if user == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.INVALID_EMAIL, errors.New("email not registered"))
	}
	if !helper.CheckPasswordHash(loginInput.Password, user.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_PASSWORD, errors.New("password does not match"))
	}

	claim := model.TokenClaim{UserId: user.ID, Email: user.Email, IsAdmin: user.IsAdmin}

	token, err := helper.GenerateAccessToken(claim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	refreshToken, err := helper.GenerateRefreshToken(claim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// allowlist the active refresh token; logout or rotation replaces it
	if database.Redis != nil {
		database.Redis.Set(context.Background(), refreshKey(user.ID), refreshToken, refreshTokenTTL)
	}

	setAuthCookies(c, token, refreshToken)

	return c.JSON(fiber.Map{
		"message": "login success",
		"user": fiber.Map{
			"id":        user.ID,
			"email":     user.Email,
			"firstName": user.FirstName,
			"isAdmin":   user.IsAdmin,
			"theme":     user.Theme,
		},
		"tokens": model.TokenData{AccessToken: token, RefreshToken: refreshToken},
	})
}

func RefreshToken(c *fiber.Ctx) error {
	refreshCookie := c.Cookies("refresh_token")
	if refreshCookie == "" {
		type refreshBody struct {
			RefreshToken string `json:"refreshToken"`
		}
		var body refreshBody
		if err := c.BodyParser(&body); err == nil {
			refreshCookie = body.RefreshToken
		}
	}
	if refreshCookie == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "refresh token not found"})
	}

	token, err := helper.ParseToken(refreshCookie)
	if err != nil || !token.Valid {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid refresh token"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid refresh token"})
	}
	userIdFloat, _ := claims["userId"].(float64)
	if userIdFloat == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid refresh token"})
	}
	userId := uint(userIdFloat)

	if database.Redis != nil {
		stored, err := database.Redis.Get(context.Background(), refreshKey(userId)).Result()
		if err != nil || stored != refreshCookie {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "refresh token revoked"})
		}
	}

	var user model.User
	if err := database.DB.First(&user, userId).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "account no longer exists"})
	}

	claim := model.TokenClaim{UserId: user.ID, Email: user.Email, IsAdmin: user.IsAdmin}
	newAccess, err := helper.GenerateAccessToken(claim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	newRefresh, err := helper.GenerateRefreshToken(claim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if database.Redis != nil {
		database.Redis.Set(context.Background(), refreshKey(user.ID), newRefresh, refreshTokenTTL)
	}

	setAuthCookies(c, newAccess, newRefresh)
	return utils.SuccessResponse(c, fiber.StatusOK, model.TokenData{AccessToken: newAccess, RefreshToken: newRefresh})
}

func Logout(c *fiber.Ctx) error {
	claim, _, err := helper.GetInfoUserFromToken(c)
	if err == nil && database.Redis != nil {
		database.Redis.Del(context.Background(), refreshKey(claim.UserId))
	}

	c.ClearCookie("access_token", "refresh_token")
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "logged out"})
}

func ChangePassword(c *fiber.Ctx) error {
	input := c.Locals("input").(model.ChangePasswordInput)

	_, user, err := helper.GetInfoUserFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Please log in", err)
	}

	if !helper.CheckPasswordHash(input.CurrentPassword, user.Password) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_PASSWORD, errors.New("current password does not match"))
	}

	hashed, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := database.DB.Model(user).Update("password", hashed).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "password changed"})
}
