package helper

import (
	"testing"
	"time"

	"railway_booking/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCombineDateTime(t *testing.T) {
	ts, err := CombineDateTime("2025-06-01", "16:00")

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 1, 16, 0, 0, 0, time.UTC), ts)
}

func TestCombineDateTime_BadClock(t *testing.T) {
	_, err := CombineDateTime("2025-06-01", "25:99")

	assert.Error(t, err)
}

func TestScheduleDuration_Overnight(t *testing.T) {
	s := model.Schedule{
		DepartureDate: "2025-06-01",
		DepartureTime: "16:00",
		ArrivalDate:   "2025-06-02",
		ArrivalTime:   "08:30",
	}

	d, err := ScheduleDuration(s)

	assert.NoError(t, err)
	assert.Equal(t, 16*time.Hour+30*time.Minute, d)
}

func TestScheduleDuration_SameDay(t *testing.T) {
	s := model.Schedule{
		DepartureDate: "2025-06-01",
		DepartureTime: "09:00",
		ArrivalDate:   "2025-06-01",
		ArrivalTime:   "13:15",
	}

	d, err := ScheduleDuration(s)

	assert.NoError(t, err)
	assert.Equal(t, 4*time.Hour+15*time.Minute, d)
}

func searchFixtures() []model.Schedule {
	fast := model.Schedule{
		Source: "Delhi", Destination: "Mumbai",
		DepartureDate: "2025-06-01", DepartureTime: "18:00",
		ArrivalDate: "2025-06-02", ArrivalTime: "06:00",
		FareSleeper: decimal.RequireFromString("800.00"),
		FareAC:      decimal.RequireFromString("2000.00"),
		FareGeneral: decimal.RequireFromString("300.00"),
	}
	cheap := model.Schedule{
		Source: "Delhi", Destination: "Mumbai",
		DepartureDate: "2025-06-01", DepartureTime: "06:00",
		ArrivalDate: "2025-06-02", ArrivalTime: "02:00",
		FareSleeper: decimal.RequireFromString("500.00"),
		FareAC:      decimal.RequireFromString("1200.00"),
		FareGeneral: decimal.RequireFromString("150.00"),
	}
	return []model.Schedule{fast, cheap}
}

func TestSortSchedules_ByDeparture(t *testing.T) {
	schedules := searchFixtures()

	SortSchedules(schedules, "departure", "")

	assert.Equal(t, "06:00", schedules[0].DepartureTime)
	assert.Equal(t, "18:00", schedules[1].DepartureTime)
}

func TestSortSchedules_ByDuration(t *testing.T) {
	schedules := searchFixtures()

	SortSchedules(schedules, "duration", "")

	// 18:00 -> 06:00 is 12h, 06:00 -> 02:00 next day is 20h.
	assert.Equal(t, "18:00", schedules[0].DepartureTime)
	assert.Equal(t, "06:00", schedules[1].DepartureTime)
}

func TestSortSchedules_ByFareOfClass(t *testing.T) {
	schedules := searchFixtures()

	SortSchedules(schedules, "fare", "ac")

	assert.Equal(t, "1200.00", schedules[0].FareAC.StringFixed(2))
	assert.Equal(t, "2000.00", schedules[1].FareAC.StringFixed(2))
}

func TestSortSchedules_UnparseableRowsSortLast(t *testing.T) {
	schedules := searchFixtures()
	schedules = append(schedules, model.Schedule{
		DepartureDate: "bad", DepartureTime: "date",
	})

	SortSchedules(schedules, "departure", "")

	assert.Equal(t, "bad", schedules[2].DepartureDate)
}

func TestFormatFare(t *testing.T) {
	assert.Equal(t, "500.00", FormatFare(decimal.RequireFromString("500")))
	assert.Equal(t, "1200.50", FormatFare(decimal.RequireFromString("1200.5")))
}
