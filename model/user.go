package model

type User struct {
	DTO
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `gorm:"uniqueIndex;size:120" json:"email"`
	Password  string `gorm:"not null" json:"-"`
	Phone     string `gorm:"size:20" json:"phone"`
	IsAdmin   bool   `gorm:"default:false" json:"isAdmin"`
	Theme     string `gorm:"size:10;default:'light'" json:"theme"`

	Bookings []Booking `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

type RegisterInput struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"omitempty"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"omitempty,len=10,numeric"`
	Password  string `json:"password" validate:"required,min=6"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
	RepeatPassword  string `json:"repeatPassword" validate:"required,eqfield=NewPassword"`
}

type UpdateProfileInput struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"omitempty"`
	Phone     string `json:"phone" validate:"omitempty,len=10,numeric"`
}

type UpdateThemeInput struct {
	Theme string `json:"theme" validate:"required,oneof=light dark"`
}
