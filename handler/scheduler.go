package handler

import (
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

var maintenanceScheduler gocron.Scheduler

// StartMaintenanceScheduler prunes old read notifications once a day.
func StartMaintenanceScheduler() {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.Local),
	)
	if err != nil {
		log.Fatal(err)
	}

	maintenanceScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(3, 0, 0),
			),
		),
		gocron.NewTask(PruneNotifications),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("maintenance scheduler started (03:00 daily)")
}

func StopMaintenanceScheduler() {
	if maintenanceScheduler != nil {
		if err := maintenanceScheduler.Shutdown(); err != nil {
			log.Printf("scheduler shutdown: %v", err)
		}
	}
}
