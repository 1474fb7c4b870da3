package handler

import (
	"errors"
	"strings"

	"railway_booking/constants"
	"railway_booking/database"
	"railway_booking/model"
	"railway_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gosimple/slug"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetTrains(c *fiber.Ctx) error {
	var pagination model.Pagination
	if err := c.QueryParser(&pagination); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB
	var trains []model.Train

	condition := db.Model(&model.Train{}).Order("number asc")

	var totalCount int64
	condition.Count(&totalCount)

	condition = utils.ApplyPagination(condition, pagination.Limit, pagination.Page)
	if err := condition.Find(&trains).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       trains,
		Limit:      pagination.Limit,
		Page:       pagination.Page,
		TotalCount: totalCount,
	})
}

func GetTrainBySlug(c *fiber.Ctx) error {
	var train model.Train
	if err := database.DB.Preload("Schedules").Where("slug = ?", c.Params("slug")).First(&train).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TRAIN_NOT_FOUND, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, train)
}

func CreateTrain(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateTrainInput)

	train := model.Train{
		Number:       input.Number,
		Name:         input.Name,
		Slug:         slug.Make(input.Number + " " + input.Name),
		SleeperSeats: input.SleeperSeats,
		ACSeats:      input.ACSeats,
		GeneralSeats: input.GeneralSeats,
	}

	if err := database.DB.Create(&train).Error; err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.TRAIN_NUMBER_TAKEN, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, train)
}

func EditTrain(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)
	input := c.Locals("input").(model.EditTrainInput)

	var train model.Train
	if err := database.DB.First(&train, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TRAIN_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := copier.Copy(&train, &input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	train.Slug = slug.Make(train.Number + " " + train.Name)

	if err := database.DB.Save(&train).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, train)
}

// DeleteTrains cascades to schedules and through them to bookings.
func DeleteTrains(c *fiber.Ctx) error {
	input := c.Locals("deleteIds").(model.ArrayId)

	if err := database.DB.Delete(&model.Train{}, input.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": len(input.IDs)})
}
