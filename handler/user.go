package handler

import (
	"railway_booking/constants"
	"railway_booking/database"
	"railway_booking/helper"
	"railway_booking/model"
	"railway_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func Me(c *fiber.Ctx) error {
	_, user, err := helper.GetInfoUserFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Please log in", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, user)
}

func UpdateProfile(c *fiber.Ctx) error {
	input := c.Locals("input").(model.UpdateProfileInput)

	_, user, err := helper.GetInfoUserFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Please log in", err)
	}

	if err := copier.Copy(user, &input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := database.DB.Save(user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, user)
}

func UpdateTheme(c *fiber.Ctx) error {
	input := c.Locals("input").(model.UpdateThemeInput)

	_, user, err := helper.GetInfoUserFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Please log in", err)
	}

	if err := database.DB.Model(user).Update("theme", input.Theme).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"theme": input.Theme})
}

// Admin listing with pagination.
func GetUsers(c *fiber.Ctx) error {
	var pagination model.Pagination
	if err := c.QueryParser(&pagination); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB
	var users []model.User

	condition := db.Model(&model.User{}).Order("created_at desc")

	var totalCount int64
	condition.Count(&totalCount)

	condition = utils.ApplyPagination(condition, pagination.Limit, pagination.Page)
	if err := condition.Find(&users).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       users,
		Limit:      pagination.Limit,
		Page:       pagination.Page,
		TotalCount: totalCount,
	})
}

// DeleteUsers removes accounts; bookings and passengers go with them through
// the cascading foreign keys.
func DeleteUsers(c *fiber.Ctx) error {
	input := c.Locals("deleteIds").(model.ArrayId)

	if err := database.DB.Delete(&model.User{}, input.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": len(input.IDs)})
}
