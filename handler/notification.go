package handler

import (
	"log"
	"time"

	"railway_booking/constants"
	"railway_booking/database"
	"railway_booking/helper"
	"railway_booking/model"
	"railway_booking/utils"

	"github.com/gofiber/fiber/v2"
)

// notifyBookingEvent persists a notification row and pushes it to any open
// websocket for the user. Failures are logged, never surfaced: notifications
// ride along after the booking work is already committed.
func notifyBookingEvent(userId uint, title, message string) {
	notification := model.Notification{
		UserID:  userId,
		Title:   title,
		Message: message,
	}
	if err := database.DB.Create(&notification).Error; err != nil {
		log.Printf("failed to store notification for user %d: %v", userId, err)
		return
	}
	BroadcastToUser(userId, notification)
}

func GetMyNotifications(c *fiber.Ctx) error {
	claim, _, err := helper.GetInfoUserFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Please log in", err)
	}

	var notifications []model.Notification
	if err := database.DB.
		Where("user_id = ?", claim.UserId).
		Order("created_at desc").
		Limit(50).
		Find(&notifications).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, notifications)
}

func MarkNotificationRead(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)

	claim, _, err := helper.GetInfoUserFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Please log in", err)
	}

	result := database.DB.Model(&model.Notification{}).
		Where("id = ? AND user_id = ?", id, claim.UserId).
		Update("is_read", true)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Notification not found", nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"read": true})
}

// PruneNotifications drops read notifications older than 90 days. Runs from
// the gocron job in main.
func PruneNotifications() {
	cutoff := time.Now().AddDate(0, 0, -90)
	result := database.DB.
		Where("is_read = ? AND created_at < ?", true, cutoff).
		Delete(&model.Notification{})
	if result.Error != nil {
		log.Printf("failed to prune notifications: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("pruned %d stale notifications", result.RowsAffected)
	}
}
