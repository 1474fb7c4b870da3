package database

import (
	"log"

	"railway_booking/model"

	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func fare(v string) decimal.Decimal {
	d, _ := decimal.NewFromString(v)
	return d
}

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("admin@123"), 10)
	hashed := string(bytes)
	if err != nil {
		log.Println("failed to hash seed password:", err)
		return
	}

	admin := model.User{
		FirstName: "Admin",
		Email:     "admin@railbook.local",
		Password:  hashed,
		IsAdmin:   true,
	}
	if err := db.Where(model.User{Email: admin.Email}).FirstOrCreate(&admin).Error; err != nil {
		log.Println("failed to seed admin account:", err)
	}

	trains := []model.Train{
		{Number: "12345", Name: "Rajdhani Express", SleeperSeats: 320, ACSeats: 128, GeneralSeats: 400},
		{Number: "12002", Name: "Shatabdi Express", SleeperSeats: 240, ACSeats: 160, GeneralSeats: 300},
		{Number: "12952", Name: "Mumbai Rajdhani", SleeperSeats: 300, ACSeats: 144, GeneralSeats: 350},
	}
	for i := range trains {
		trains[i].Slug = slug.Make(trains[i].Number + " " + trains[i].Name)
		if err := db.Where(model.Train{Number: trains[i].Number}).FirstOrCreate(&trains[i]).Error; err != nil {
			log.Println("failed to seed train:", trains[i].Number, "error:", err)
		}
	}

	schedules := []model.Schedule{
		{
			TrainID: trains[0].ID, Source: "Delhi", Destination: "Mumbai",
			DepartureDate: "2025-06-01", DepartureTime: "16:25",
			ArrivalDate: "2025-06-02", ArrivalTime: "08:15",
			FareSleeper: fare("500.00"), FareAC: fare("1250.00"), FareGeneral: fare("220.00"),
		},
		{
			TrainID: trains[1].ID, Source: "Delhi", Destination: "Bhopal",
			DepartureDate: "2025-06-01", DepartureTime: "06:00",
			ArrivalDate: "2025-06-01", ArrivalTime: "14:30",
			FareSleeper: fare("420.00"), FareAC: fare("980.00"), FareGeneral: fare("180.00"),
		},
	}
	for i := range schedules {
		cond := model.Schedule{
			TrainID:       schedules[i].TrainID,
			Source:        schedules[i].Source,
			Destination:   schedules[i].Destination,
			DepartureDate: schedules[i].DepartureDate,
		}
		if err := db.Where(cond).FirstOrCreate(&schedules[i]).Error; err != nil {
			log.Println("failed to seed schedule:", schedules[i].Source, "->", schedules[i].Destination, "error:", err)
		}
	}
}
