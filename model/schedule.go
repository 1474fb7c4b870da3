package model

import (
	"github.com/shopspring/decimal"
)

type Schedule struct {
	DTO
	TrainID uint  `json:"trainId"`
	Train   Train `json:"train"`

	Source      string `gorm:"size:60;index" json:"source"`
	Destination string `gorm:"size:60;index" json:"destination"`

	// Date and clock components are stored separately; helper.CombineDateTime
	// builds the full timestamps when duration or sorting needs them.
	DepartureDate string `gorm:"type:date" json:"departureDate"`
	DepartureTime string `gorm:"size:5" json:"departureTime"`
	ArrivalDate   string `gorm:"type:date" json:"arrivalDate"`
	ArrivalTime   string `gorm:"size:5" json:"arrivalTime"`

	FareSleeper decimal.Decimal `gorm:"type:decimal(10,2)" json:"fareSleeper"`
	FareAC      decimal.Decimal `gorm:"type:decimal(10,2)" json:"fareAc"`
	FareGeneral decimal.Decimal `gorm:"type:decimal(10,2)" json:"fareGeneral"`

	Status       string `gorm:"size:10;default:'on-time'" json:"status"`
	DelayMinutes int    `gorm:"default:0" json:"delayMinutes"`

	Bookings []Booking `gorm:"foreignKey:ScheduleID;constraint:OnDelete:CASCADE" json:"-"`
}

type CreateScheduleInput struct {
	TrainID       uint   `json:"trainId" validate:"required,gt=0"`
	Source        string `json:"source" validate:"required"`
	Destination   string `json:"destination" validate:"required,nefield=Source"`
	DepartureDate string `json:"departureDate" validate:"required,datetime=2006-01-02"`
	DepartureTime string `json:"departureTime" validate:"required,datetime=15:04"`
	ArrivalDate   string `json:"arrivalDate" validate:"required,datetime=2006-01-02"`
	ArrivalTime   string `json:"arrivalTime" validate:"required,datetime=15:04"`
	FareSleeper   decimal.Decimal `json:"fareSleeper" validate:"required"`
	FareAC        decimal.Decimal `json:"fareAc" validate:"required"`
	FareGeneral   decimal.Decimal `json:"fareGeneral" validate:"required"`
}

type EditScheduleInput struct {
	Source        string `json:"source" validate:"required"`
	Destination   string `json:"destination" validate:"required,nefield=Source"`
	DepartureDate string `json:"departureDate" validate:"required,datetime=2006-01-02"`
	DepartureTime string `json:"departureTime" validate:"required,datetime=15:04"`
	ArrivalDate   string `json:"arrivalDate" validate:"required,datetime=2006-01-02"`
	ArrivalTime   string `json:"arrivalTime" validate:"required,datetime=15:04"`
	FareSleeper   decimal.Decimal `json:"fareSleeper" validate:"required"`
	FareAC        decimal.Decimal `json:"fareAc" validate:"required"`
	FareGeneral   decimal.Decimal `json:"fareGeneral" validate:"required"`
}

type UpdateScheduleStatusInput struct {
	Status       string `json:"status" validate:"required,oneof=on-time delayed cancelled"`
	DelayMinutes int    `json:"delayMinutes" validate:"omitempty,gte=0"`
}

type SearchScheduleInput struct {
	Source      string `query:"source" validate:"required"`
	Destination string `query:"destination" validate:"required"`
	Date        string `query:"date" validate:"required,datetime=2006-01-02"`
	SortBy      string `query:"sortBy" validate:"omitempty,oneof=departure duration fare"`
	SeatClass   string `query:"seatClass" validate:"omitempty,oneof=sleeper ac general"`
}
