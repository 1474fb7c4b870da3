package handler

import (
	"errors"

	"railway_booking/constants"
	"railway_booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment is simulated end to end. No gateway is called; the session exists so
// the booking row has a payment id and method to reference.
type createPaymentInput struct {
	Method string          `json:"method"`
	Amount decimal.Decimal `json:"amount"`
}

func CreatePayment(c *fiber.Ctx) error {
	var input createPaymentInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	switch input.Method {
	case constants.PaymentCard, constants.PaymentUPI, constants.PaymentNetbanking, constants.PaymentWallet:
	default:
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("unsupported payment method"))
	}
	if input.Amount.Cmp(decimal.Zero) <= 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("amount must be positive"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"paymentId": uuid.New().String(),
		"method":    input.Method,
		"amount":    input.Amount,
		"status":    "success",
	})
}
