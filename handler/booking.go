package handler

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"railway_booking/constants"
	"railway_booking/database"
	"railway_booking/helper"
	"railway_booking/model"
	"railway_booking/monitoring"
	"railway_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// generatePNR draws codes until one is unused. The unique index on
// bookings.pnr remains the backstop for a race between two transactions.
func generatePNR(tx *gorm.DB) (string, error) {
	for attempt := 0; attempt < constants.PNRMaxAttempts; attempt++ {
		pnr, err := utils.GeneratePNR(constants.PNRLength)
		if err != nil {
			return "", err
		}
		var count int64
		if err := tx.Model(&model.Booking{}).Where("pnr = ?", pnr).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return pnr, nil
		}
	}
	return "", errors.New("could not generate a unique PNR")
}

// CreateBooking is the one multi-statement write in the system: one bookings
// row plus N passengers rows, both-or-neither.
func CreateBooking(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateBookingInput)

	claim, user, err := helper.GetInfoUserFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Please log in", err)
	}

	db := database.DB
	tx := db.Begin()
	if tx.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, tx.Error)
	}

	// Lock the schedule row so two concurrent bookings serialize on the
	// capacity check.
	var schedule model.Schedule
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Train").First(&schedule, input.ScheduleID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SCHEDULE_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if schedule.Status == constants.ScheduleCancelled {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.SCHEDULE_IS_CANCELLED, nil)
	}

	capacity := schedule.Train.SeatsForClass(input.SeatClass)
	var booked int64
	if err := tx.Model(&model.Passenger{}).
		Joins("JOIN bookings ON bookings.id = passengers.booking_id").
		Where("bookings.schedule_id = ? AND passengers.seat_class = ? AND bookings.status = ?",
			schedule.ID, input.SeatClass, constants.BookingConfirmed).
		Count(&booked).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if int(booked)+len(input.Passengers) > capacity {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.NOT_ENOUGH_SEATS,
			fmt.Errorf("%d of %d %s seats already booked", booked, capacity, input.SeatClass))
	}

	unitFare, err := helper.FareForClass(schedule, input.SeatClass)
	if err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	totalFare := helper.TotalFare(unitFare, len(input.Passengers))

	pnr, err := generatePNR(tx)
	if err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	paymentID := input.PaymentID
	if paymentID == "" {
		paymentID = uuid.New().String()
	}

	booking := model.Booking{
		PNR:           pnr,
		UserID:        claim.UserId,
		ScheduleID:    schedule.ID,
		SeatClass:     input.SeatClass,
		TotalFare:     totalFare,
		Status:        constants.BookingConfirmed,
		PaymentMethod: input.PaymentMethod,
		PaymentID:     paymentID,
	}
	if err := tx.Create(&booking).Error; err != nil {
		tx.Rollback()
		if strings.Contains(err.Error(), "Duplicate entry") {
			return utils.ErrorResponse(c, fiber.StatusConflict, "PNR collision, please retry", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	passengers := make([]model.Passenger, 0, len(input.Passengers))
	for _, p := range input.Passengers {
		passengers = append(passengers, model.Passenger{
			BookingID:       booking.ID,
			Name:            p.Name,
			Age:             p.Age,
			Gender:          p.Gender,
			SeatClass:       input.SeatClass,
			BerthPreference: p.BerthPreference,
		})
	}
	if err := tx.Create(&passengers).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	booking.Passengers = passengers
	booking.Schedule = schedule

	monitoring.TrackBooking(booking.Status, booking.SeatClass, totalFare.InexactFloat64())

	notifyBookingEvent(claim.UserId, "Booking confirmed",
		fmt.Sprintf("PNR %s: %s to %s on %s, %d passenger(s), class %s",
			pnr, schedule.Source, schedule.Destination, schedule.DepartureDate,
			len(passengers), input.SeatClass))

	go utils.SendBookingEmail(user.Email, utils.BookingConfirmationData{
		PNR:           pnr,
		TrainName:     schedule.Train.Number + "/" + schedule.Train.Name,
		Source:        schedule.Source,
		Destination:   schedule.Destination,
		Departure:     schedule.DepartureDate + " " + schedule.DepartureTime,
		SeatClass:     input.SeatClass,
		Passengers:    len(passengers),
		TotalFare:     helper.FormatFare(totalFare),
		PaymentMethod: input.PaymentMethod,
	}, false)

	return utils.SuccessResponse(c, fiber.StatusCreated, booking)
}

// CancelBooking flips status to cancelled for the owning user (admins may
// cancel anyone's). Cancelling twice is a no-op success.
func CancelBooking(c *fiber.Ctx) error {
	pnr := c.Params("pnr")

	claim, user, err := helper.GetInfoUserFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Please log in", err)
	}

	db := database.DB
	query := db.Preload("Schedule").Preload("Schedule.Train").Where("pnr = ?", pnr)
	if !claim.IsAdmin {
		query = query.Where("user_id = ?", claim.UserId)
	}

	var booking model.Booking
	if err := query.First(&booking).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
	}

	if booking.Status == constants.BookingCancelled {
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
			"pnr":    booking.PNR,
			"status": booking.Status,
		})
	}

	now := time.Now()
	if err := db.Model(&booking).Updates(map[string]interface{}{
		"status":       constants.BookingCancelled,
		"cancelled_at": now,
	}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	monitoring.TrackCancellation()

	notifyBookingEvent(booking.UserID, "Booking cancelled",
		fmt.Sprintf("PNR %s has been cancelled", booking.PNR))

	go utils.SendBookingEmail(user.Email, utils.BookingConfirmationData{
		PNR:         booking.PNR,
		TrainName:   booking.Schedule.Train.Number + "/" + booking.Schedule.Train.Name,
		Source:      booking.Schedule.Source,
		Destination: booking.Schedule.Destination,
		Departure:   booking.Schedule.DepartureDate + " " + booking.Schedule.DepartureTime,
	}, true)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"pnr":    booking.PNR,
		"status": constants.BookingCancelled,
	})
}

func GetMyBookings(c *fiber.Ctx) error {
	claim, _, err := helper.GetInfoUserFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Please log in", err)
	}

	var bookings []model.Booking
	if err := database.DB.
		Preload("Passengers").
		Preload("Schedule").
		Preload("Schedule.Train").
		Where("user_id = ?", claim.UserId).
		Order("created_at desc").
		Find(&bookings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, bookings)
}

// GetBookingByPNR returns one booking with a QR of its PNR.
func GetBookingByPNR(c *fiber.Ctx) error {
	pnr := c.Params("pnr")

	claim, _, err := helper.GetInfoUserFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Please log in", err)
	}

	query := database.DB.
		Preload("Passengers").
		Preload("Schedule").
		Preload("Schedule.Train").
		Where("pnr = ?", pnr)
	if !claim.IsAdmin {
		query = query.Where("user_id = ?", claim.UserId)
	}

	var booking model.Booking
	if err := query.First(&booking).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, err)
	}

	qrBase64 := ""
	if qrBytes, err := utils.GenerateQRCode(booking.PNR, 256); err == nil {
		qrBase64 = "data:image/png;base64," + base64.StdEncoding.EncodeToString(qrBytes)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"booking": booking,
		"qrCode":  qrBase64,
	})
}

// Admin listing with filters.
func GetBookingsAdmin(c *fiber.Ctx) error {
	input := c.Locals("input").(model.FilterBookingInput)

	db := database.DB
	condition := db.Model(&model.Booking{}).
		Preload("Passengers").
		Preload("User").
		Preload("Schedule").
		Preload("Schedule.Train")

	if input.ScheduleID > 0 {
		condition = condition.Where("schedule_id = ?", input.ScheduleID)
	}
	if input.Status != "" {
		condition = condition.Where("status = ?", input.Status)
	}
	if input.PNR != "" {
		condition = condition.Where("pnr = ?", input.PNR)
	}

	var totalCount int64
	condition.Count(&totalCount)

	var bookings []model.Booking
	condition = utils.ApplyPagination(condition, input.Limit, input.Page)
	if err := condition.Order("created_at desc").Find(&bookings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       bookings,
		Limit:      input.Limit,
		Page:       input.Page,
		TotalCount: totalCount,
	})
}
