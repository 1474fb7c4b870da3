package model

type Train struct {
	DTO
	Number       string `gorm:"uniqueIndex;size:10" json:"number"`
	Name         string `gorm:"not null" json:"name"`
	Slug         string `gorm:"uniqueIndex;size:120" json:"slug"`
	SleeperSeats int    `json:"sleeperSeats"`
	ACSeats      int    `json:"acSeats"`
	GeneralSeats int    `json:"generalSeats"`

	Schedules []Schedule `gorm:"foreignKey:TrainID;constraint:OnDelete:CASCADE" json:"-"`
}

// SeatsForClass returns the static capacity of one class.
func (t Train) SeatsForClass(class string) int {
	switch class {
	case "sleeper":
		return t.SleeperSeats
	case "ac":
		return t.ACSeats
	case "general":
		return t.GeneralSeats
	}
	return 0
}

type CreateTrainInput struct {
	Number       string `json:"number" validate:"required,max=10"`
	Name         string `json:"name" validate:"required"`
	SleeperSeats int    `json:"sleeperSeats" validate:"required,gt=0"`
	ACSeats      int    `json:"acSeats" validate:"required,gt=0"`
	GeneralSeats int    `json:"generalSeats" validate:"required,gt=0"`
}

type EditTrainInput struct {
	Name         string `json:"name" validate:"required"`
	SleeperSeats int    `json:"sleeperSeats" validate:"required,gt=0"`
	ACSeats      int    `json:"acSeats" validate:"required,gt=0"`
	GeneralSeats int    `json:"generalSeats" validate:"required,gt=0"`
}
