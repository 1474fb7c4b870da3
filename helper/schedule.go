package helper

import (
	"sort"
	"time"

	"railway_booking/constants"
	"railway_booking/model"

	"github.com/shopspring/decimal"
)

// CombineDateTime merges the stored date ("2006-01-02") and clock ("15:04")
// columns into one timestamp.
func CombineDateTime(date, clock string) (time.Time, error) {
	return time.Parse("2006-01-02 15:04", date+" "+clock)
}

// ScheduleDuration is arrival minus departure with both sides combined into
// full timestamps, so overnight runs come out positive.
func ScheduleDuration(s model.Schedule) (time.Duration, error) {
	dep, err := CombineDateTime(s.DepartureDate, s.DepartureTime)
	if err != nil {
		return 0, err
	}
	arr, err := CombineDateTime(s.ArrivalDate, s.ArrivalTime)
	if err != nil {
		return 0, err
	}
	return arr.Sub(dep), nil
}

// SortSchedules orders search results in place by departure time, computed
// duration, or the fare of the requested class. Rows whose stored date/time
// fields fail to parse sort last.
func SortSchedules(schedules []model.Schedule, sortBy, seatClass string) {
	if seatClass == "" {
		seatClass = constants.SeatClassSleeper
	}

	switch sortBy {
	case "duration":
		sort.SliceStable(schedules, func(i, j int) bool {
			di, erri := ScheduleDuration(schedules[i])
			dj, errj := ScheduleDuration(schedules[j])
			if erri != nil {
				return false
			}
			if errj != nil {
				return true
			}
			return di < dj
		})
	case "fare":
		sort.SliceStable(schedules, func(i, j int) bool {
			fi, erri := FareForClass(schedules[i], seatClass)
			fj, errj := FareForClass(schedules[j], seatClass)
			if erri != nil || errj != nil {
				return erri == nil
			}
			return fi.Cmp(fj) < 0
		})
	default: // departure
		sort.SliceStable(schedules, func(i, j int) bool {
			ti, erri := CombineDateTime(schedules[i].DepartureDate, schedules[i].DepartureTime)
			tj, errj := CombineDateTime(schedules[j].DepartureDate, schedules[j].DepartureTime)
			if erri != nil {
				return false
			}
			if errj != nil {
				return true
			}
			return ti.Before(tj)
		})
	}
}

// FormatFare renders a decimal with two places for emails and CSV rows.
func FormatFare(d decimal.Decimal) string {
	return d.StringFixed(2)
}
