package model

type Passenger struct {
	DTO
	BookingID uint   `gorm:"index" json:"bookingId"`
	Name      string `gorm:"not null" json:"name"`
	Age       int    `gorm:"not null" json:"age"`
	Gender    string `gorm:"size:10" json:"gender"`
	SeatClass string `gorm:"size:10" json:"seatClass"`

	// Preference only. Seat maps are not allocated, so SeatNumber is kept
	// for schema compatibility and stays null.
	BerthPreference string  `gorm:"size:12" json:"berthPreference"`
	SeatNumber      *string `gorm:"size:10" json:"seatNumber,omitempty"`
}
