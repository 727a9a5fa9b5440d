package helper

import (
	"log"
	"time"

	"airline_manager/constants"
	"airline_manager/database"
	"airline_manager/model"

	"github.com/go-co-op/gocron/v2"
)

var flightScheduler gocron.Scheduler

// AutoUpdateFlightStatus rolls flight statuses along with the calendar:
// SCHEDULED flights whose departure day has arrived become DEPARTED, and
// DEPARTED flights past their arrival day become COMPLETED.
func AutoUpdateFlightStatus() {
	log.Println("[CRON] AutoUpdateFlightStatus triggered")

	db := database.DB
	today := time.Now().UTC().Truncate(24 * time.Hour)

	var flights []model.Flight
	err := db.Where("status IN ?", []string{
		constants.FLIGHT_STATUS_SCHEDULED,
		constants.FLIGHT_STATUS_DEPARTED,
	}).Find(&flights).Error
	if err != nil {
		log.Printf("Lỗi khi quét chuyến bay: %v", err)
		return
	}

	for _, flight := range flights {
		updated := false

		departureDay := flight.ScheduledDepartureDay.Truncate(24 * time.Hour)
		arrivalDay := flight.ScheduledArrivalDay.Truncate(24 * time.Hour)

		if flight.Status == constants.FLIGHT_STATUS_SCHEDULED &&
			(today.Equal(departureDay) || today.After(departureDay)) {
			flight.Status = constants.FLIGHT_STATUS_DEPARTED
			updated = true
		}

		if flight.Status == constants.FLIGHT_STATUS_DEPARTED && today.After(arrivalDay) {
			flight.Status = constants.FLIGHT_STATUS_COMPLETED
			updated = true
		}

		if updated {
			if err := db.Save(&flight).Error; err != nil {
				log.Printf("Lỗi cập nhật trạng thái chuyến bay %d: %v", flight.ID, err)
			} else {
				log.Printf("Flight %d → %s", flight.ID, flight.Status)
			}
		}
	}
}

func StartFlightStatusScheduler() {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.UTC),
	)
	if err != nil {
		log.Fatal(err)
	}

	flightScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 5, 0),
			),
		),
		gocron.NewTask(AutoUpdateFlightStatus),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("Flight status scheduler started (00:05 UTC)")
}

func StopFlightStatusScheduler() {
	if flightScheduler != nil {
		_ = flightScheduler.Shutdown()
		log.Println("Flight status scheduler stopped")
	}
}
