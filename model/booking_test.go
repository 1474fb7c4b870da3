package model

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

var v = validator.New()

func validBookingInput() CreateBookingInput {
	return CreateBookingInput{
		ScheduleID:    1,
		SeatClass:     "sleeper",
		PaymentMethod: "upi",
		Passengers: []PassengerInput{
			{Name: "Asha Verma", Age: 34, Gender: "female", BerthPreference: "lower"},
			{Name: "Ravi Verma", Age: 36, Gender: "male"},
		},
	}
}

func TestCreateBookingInput_Valid(t *testing.T) {
	assert.NoError(t, v.Struct(validBookingInput()))
}

func TestCreateBookingInput_RejectsUnknownSeatClass(t *testing.T) {
	input := validBookingInput()
	input.SeatClass = "first"

	assert.Error(t, v.Struct(input))
}

func TestCreateBookingInput_RejectsUnknownPaymentMethod(t *testing.T) {
	input := validBookingInput()
	input.PaymentMethod = "cash"

	assert.Error(t, v.Struct(input))
}

func TestCreateBookingInput_RejectsEmptyPassengerList(t *testing.T) {
	input := validBookingInput()
	input.Passengers = nil

	assert.Error(t, v.Struct(input))
}

func TestCreateBookingInput_RejectsMoreThanSixPassengers(t *testing.T) {
	input := validBookingInput()
	for len(input.Passengers) <= 6 {
		input.Passengers = append(input.Passengers, PassengerInput{
			Name: "Extra", Age: 20, Gender: "other",
		})
	}

	assert.Error(t, v.Struct(input))
}

func TestCreateBookingInput_RejectsBadPassengerAge(t *testing.T) {
	input := validBookingInput()
	input.Passengers[0].Age = 0
	assert.Error(t, v.Struct(input))

	input.Passengers[0].Age = 121
	assert.Error(t, v.Struct(input))
}

func TestCreateBookingInput_RejectsBadBerthPreference(t *testing.T) {
	input := validBookingInput()
	input.Passengers[0].BerthPreference = "window"

	assert.Error(t, v.Struct(input))
}

func TestCreateBookingInput_RejectsMalformedPaymentID(t *testing.T) {
	input := validBookingInput()
	input.PaymentID = "not-a-uuid"

	assert.Error(t, v.Struct(input))
}
