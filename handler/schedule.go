package handler

import (
	"errors"

	"railway_booking/constants"
	"railway_booking/database"
	"railway_booking/helper"
	"railway_booking/model"
	"railway_booking/monitoring"
	"railway_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetSchedules(c *fiber.Ctx) error {
	var pagination model.Pagination
	if err := c.QueryParser(&pagination); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB
	var schedules []model.Schedule

	condition := db.Model(&model.Schedule{}).Preload("Train").
		Order("departure_date asc, departure_time asc")

	var totalCount int64
	condition.Count(&totalCount)

	condition = utils.ApplyPagination(condition, pagination.Limit, pagination.Page)
	if err := condition.Find(&schedules).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       schedules,
		Limit:      pagination.Limit,
		Page:       pagination.Page,
		TotalCount: totalCount,
	})
}

func GetScheduleById(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)

	var schedule model.Schedule
	if err := database.DB.Preload("Train").First(&schedule, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SCHEDULE_NOT_FOUND, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, schedule)
}

func CreateSchedule(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateScheduleInput)

	var train model.Train
	if err := database.DB.First(&train, input.TrainID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TRAIN_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	schedule := model.Schedule{
		TrainID:       train.ID,
		Source:        input.Source,
		Destination:   input.Destination,
		DepartureDate: input.DepartureDate,
		DepartureTime: input.DepartureTime,
		ArrivalDate:   input.ArrivalDate,
		ArrivalTime:   input.ArrivalTime,
		FareSleeper:   input.FareSleeper,
		FareAC:        input.FareAC,
		FareGeneral:   input.FareGeneral,
		Status:        constants.ScheduleOnTime,
	}

	if err := database.DB.Create(&schedule).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, schedule)
}

func EditSchedule(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)
	input := c.Locals("input").(model.EditScheduleInput)

	var schedule model.Schedule
	if err := database.DB.First(&schedule, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SCHEDULE_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := copier.Copy(&schedule, &input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if err := database.DB.Save(&schedule).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, schedule)
}

// UpdateScheduleStatus flips on-time/delayed/cancelled and the delay minutes.
func UpdateScheduleStatus(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)
	input := c.Locals("input").(model.UpdateScheduleStatusInput)

	var schedule model.Schedule
	if err := database.DB.First(&schedule, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SCHEDULE_NOT_FOUND, err)
	}

	delay := input.DelayMinutes
	if input.Status != constants.ScheduleDelayed {
		delay = 0
	}
	if err := database.DB.Model(&schedule).Updates(map[string]interface{}{
		"status":        input.Status,
		"delay_minutes": delay,
	}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, schedule)
}

func DeleteSchedules(c *fiber.Ctx) error {
	input := c.Locals("deleteIds").(model.ArrayId)

	if err := database.DB.Delete(&model.Schedule{}, input.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": len(input.IDs)})
}

// SearchSchedules matches source and destination case-insensitively and the
// departure date exactly, then sorts the rows in the handler.
func SearchSchedules(c *fiber.Ctx) error {
	input := c.Locals("input").(model.SearchScheduleInput)

	var schedules []model.Schedule
	if err := database.DB.Preload("Train").
		Where("LOWER(source) = LOWER(?) AND LOWER(destination) = LOWER(?) AND departure_date = ?",
			input.Source, input.Destination, input.Date).
		Find(&schedules).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	helper.SortSchedules(schedules, input.SortBy, input.SeatClass)
	monitoring.TrackSearch()

	type scheduleResult struct {
		model.Schedule
		DurationMinutes int `json:"durationMinutes"`
	}
	results := make([]scheduleResult, 0, len(schedules))
	for _, s := range schedules {
		minutes := 0
		if d, err := helper.ScheduleDuration(s); err == nil {
			minutes = int(d.Minutes())
		}
		results = append(results, scheduleResult{Schedule: s, DurationMinutes: minutes})
	}

	return utils.SuccessResponse(c, fiber.StatusOK, results)
}
