package validate

import (
	"errors"
	"strconv"

	"railway_booking/constants"
	"railway_booking/model"
	"railway_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// validator tags cannot compare decimals, so positivity is checked by hand.
func faresArePositive(fares ...decimal.Decimal) bool {
	for _, f := range fares {
		if f.Cmp(decimal.Zero) <= 0 {
			return false
		}
	}
	return true
}

func CreateSchedule() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateScheduleInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if !faresArePositive(input.FareSleeper, input.FareAC, input.FareGeneral) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("fares must be positive"))
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func EditSchedule(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params(key))
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.EditScheduleInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if !faresArePositive(input.FareSleeper, input.FareAC, input.FareGeneral) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("fares must be positive"))
		}

		c.Locals("inputId", id)
		c.Locals("input", input)
		return c.Next()
	}
}

func UpdateScheduleStatus(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params(key))
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.UpdateScheduleStatusInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals("inputId", id)
		c.Locals("input", input)
		return c.Next()
	}
}

func SearchSchedules() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.SearchScheduleInput
		if err := c.QueryParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals("input", input)
		return c.Next()
	}
}
