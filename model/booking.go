package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Booking struct {
	DTO
	PNR        string   `gorm:"uniqueIndex;size:10" json:"pnr"`
	UserID     uint     `json:"userId"`
	User       User     `json:"-"`
	ScheduleID uint     `json:"scheduleId"`
	Schedule   Schedule `json:"schedule"`

	SeatClass     string          `gorm:"size:10" json:"seatClass"`
	TotalFare     decimal.Decimal `gorm:"type:decimal(10,2)" json:"totalFare"`
	Status        string          `gorm:"size:10;default:'confirmed'" json:"status"`
	PaymentMethod string          `gorm:"size:20" json:"paymentMethod"`
	PaymentID     string          `gorm:"size:40" json:"paymentId"`
	CancelledAt   *time.Time      `json:"cancelledAt,omitempty"`

	Passengers []Passenger `gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE" json:"passengers"`
}

type PassengerInput struct {
	Name            string `json:"name" validate:"required"`
	Age             int    `json:"age" validate:"required,gte=1,lte=120"`
	Gender          string `json:"gender" validate:"required,oneof=male female other"`
	BerthPreference string `json:"berthPreference" validate:"omitempty,oneof=lower middle upper side-lower side-upper"`
}

type CreateBookingInput struct {
	ScheduleID    uint             `json:"scheduleId" validate:"required,gt=0"`
	SeatClass     string           `json:"seatClass" validate:"required,oneof=sleeper ac general"`
	PaymentMethod string           `json:"paymentMethod" validate:"required,oneof=card upi netbanking wallet"`
	PaymentID     string           `json:"paymentId" validate:"omitempty,uuid4"`
	Passengers    []PassengerInput `json:"passengers" validate:"required,min=1,max=6,dive"`
}

type FilterBookingInput struct {
	Pagination
	ScheduleID uint   `query:"scheduleId" validate:"omitempty,gt=0"`
	Status     string `query:"status" validate:"omitempty,oneof=confirmed cancelled"`
	PNR        string `query:"pnr" validate:"omitempty,len=10"`
}
