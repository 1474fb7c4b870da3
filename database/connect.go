package database

import (
	"fmt"
	"log"

	"railway_booking/config"
	"railway_booking/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		config.Config("DB_USER"),
		config.Config("DB_PASSWORD"),
		config.ConfigDefault("DB_HOST", "127.0.0.1"),
		config.ConfigDefault("DB_PORT", "3306"),
		config.Config("DB_NAME"),
	)

	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	log.Println("Connection opened to database")

	DB.AutoMigrate(
		&model.User{},
		&model.Train{},
		&model.Schedule{},
		&model.Booking{},
		&model.Passenger{},
		&model.Notification{},
	)
	log.Println("Database migrated")

	SeedData(DB)
}
