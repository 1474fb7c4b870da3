package helper

import (
	"testing"

	"railway_booking/constants"
	"railway_booking/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testSchedule() model.Schedule {
	return model.Schedule{
		FareSleeper: decimal.RequireFromString("500.00"),
		FareAC:      decimal.RequireFromString("1200.50"),
		FareGeneral: decimal.RequireFromString("150.00"),
	}
}

func TestFareForClass(t *testing.T) {
	s := testSchedule()

	sleeper, err := FareForClass(s, constants.SeatClassSleeper)
	assert.NoError(t, err)
	assert.Equal(t, "500.00", sleeper.StringFixed(2))

	ac, err := FareForClass(s, constants.SeatClassAC)
	assert.NoError(t, err)
	assert.Equal(t, "1200.50", ac.StringFixed(2))

	general, err := FareForClass(s, constants.SeatClassGeneral)
	assert.NoError(t, err)
	assert.Equal(t, "150.00", general.StringFixed(2))
}

func TestFareForClass_UnknownClass(t *testing.T) {
	_, err := FareForClass(testSchedule(), "first")

	assert.Error(t, err)
}

func TestTotalFare(t *testing.T) {
	unit := decimal.RequireFromString("500.00")

	assert.Equal(t, "1000.00", TotalFare(unit, 2).StringFixed(2))
	assert.Equal(t, "500.00", TotalFare(unit, 1).StringFixed(2))
}

func TestTotalFare_NoRoundingDrift(t *testing.T) {
	unit := decimal.RequireFromString("333.33")

	assert.Equal(t, "1999.98", TotalFare(unit, 6).StringFixed(2))
}
