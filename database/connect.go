package database

import (
	"airline_manager/config"
	"airline_manager/model"
	"fmt"
	"strconv"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	p := config.Config("DB_PORT")
	port, err := strconv.ParseUint(p, 10, 32)

	if err != nil {
		panic("failed to parse database port")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable", config.Config("DB_HOST"), port, config.Config("DB_USER"), config.Config("DB_PASSWORD"), config.Config("DB_NAME"))
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		panic("failed to connect database")
	}

	fmt.Println("Connection Opened to Database")
	Migrate(DB)
	fmt.Println("Database Migrated")

	SeedData(DB)
}

func Migrate(db *gorm.DB) {
	db.AutoMigrate(
		&model.Role{},
		&model.User{},
		&model.Country{},
		&model.City{},
		&model.Airport{},
		&model.Airline{},
		&model.Manufacturer{},
		&model.Aircraft{},
		&model.AircraftAirline{},
		&model.ClassSeat{},
		&model.Cabin{},
		&model.Cell{},
		&model.RouteSection{},
		&model.Route{},
		&model.RouteDetail{},
		&model.Flight{},
		&model.Ticket{},
		&model.Passenger{},
		&model.PassengerTicket{},
		&model.AirlinePricePolicy{},
		&model.ClassPricePolicy{},
		&model.Baggage{},
		&model.BaggageRule{},
		&model.ClassBaggagePolicy{},
		&model.AdditionalBaggage{},
	)
}
