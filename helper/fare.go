package helper

import (
	"fmt"

	"railway_booking/constants"
	"railway_booking/model"

	"github.com/shopspring/decimal"
)

// FareForClass returns the unit fare of one seat class on a schedule.
func FareForClass(schedule model.Schedule, class string) (decimal.Decimal, error) {
	switch class {
	case constants.SeatClassSleeper:
		return schedule.FareSleeper, nil
	case constants.SeatClassAC:
		return schedule.FareAC, nil
	case constants.SeatClassGeneral:
		return schedule.FareGeneral, nil
	}
	return decimal.Zero, fmt.Errorf("unknown seat class %q", class)
}

// TotalFare is unit fare times passenger count. No discounts, no tax.
func TotalFare(unitFare decimal.Decimal, passengers int) decimal.Decimal {
	return unitFare.Mul(decimal.NewFromInt(int64(passengers)))
}
