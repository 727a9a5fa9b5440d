package helper

import (
	"testing"
	"time"

	"airline_manager/database"
	"airline_manager/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection, or every new pool conn gets its own empty :memory: db
	sqlDB.SetMaxOpenConns(1)

	database.Migrate(db)
	return db
}

// fixture is the minimal world most helper tests need: one airline with
// a tariff, three airports, one aircraft model and one fleet unit.
type fixture struct {
	db      *gorm.DB
	airline model.Airline
	policy  model.AirlinePricePolicy
	model_  model.Aircraft
	unit    model.AircraftAirline
	economy model.ClassSeat
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)

	f := &fixture{db: db}

	f.airline = model.Airline{IataCode: "AZ", Name: "Alitalia"}
	require.NoError(t, db.Create(&f.airline).Error)

	f.policy = model.AirlinePricePolicy{
		AirlineCode:    "AZ",
		FixedMarkup:    50,
		PriceForKm:     0.1,
		FeeForStopover: 20,
	}
	require.NoError(t, db.Create(&f.policy).Error)

	airports := []model.Airport{
		{IataCode: "FCO", Name: "Roma Fiumicino", Latitude: 41.8, Longitude: 12.25},
		{IataCode: "JFK", Name: "New York JFK", Latitude: 40.64, Longitude: -73.78},
		{IataCode: "AMS", Name: "Amsterdam Schiphol", Latitude: 52.31, Longitude: 4.76},
	}
	require.NoError(t, db.Create(&airports).Error)

	manufacturer := model.Manufacturer{Name: "Boeing"}
	require.NoError(t, db.Create(&manufacturer).Error)

	f.model_ = model.Aircraft{
		IdManufacturer: manufacturer.ID,
		Name:           "737-800",
		MaxSeats:       189,
		CabinMaxCols:   6,
		CruiseSpeedKmh: 850,
	}
	require.NoError(t, db.Create(&f.model_).Error)

	f.unit = model.AircraftAirline{AirlineCode: "AZ", IdAircraftModel: f.model_.ID}
	require.NoError(t, db.Create(&f.unit).Error)

	f.economy = model.ClassSeat{Name: "Economy"}
	require.NoError(t, db.Create(&f.economy).Error)

	return f
}

// addFleetUnit registers one more aircraft of the given model for AZ
func (f *fixture) addFleetUnit(t *testing.T, idModel uint) model.AircraftAirline {
	t.Helper()
	unit := model.AircraftAirline{AirlineCode: "AZ", IdAircraftModel: idModel}
	require.NoError(t, f.db.Create(&unit).Error)
	return unit
}

// seatBlock fills a cabin on the unit with rows*cols seats
func (f *fixture) seatBlock(t *testing.T, idUnit uint, rows, cols int) {
	t.Helper()
	matrix := make([][]bool, rows)
	for i := range matrix {
		matrix[i] = make([]bool, cols)
		for j := range matrix[i] {
			matrix[i][j] = true
		}
	}
	err := f.db.Transaction(func(tx *gorm.DB) error {
		return InsertBlock(tx, matrix, f.economy.ID, idUnit)
	})
	require.NoError(t, err)
}

// routePair creates the standard FCO-JFK pair AZ1/AZ2, valid through 2026
func (f *fixture) routePair(t *testing.T) (string, string) {
	t.Helper()
	var outbound, returning string
	err := f.db.Transaction(func(tx *gorm.DB) error {
		var err error
		outbound, returning, err = BuildRoutePair(tx, model.CreateRouteInput{
			AirlineCode:         "AZ",
			NumberRoute:         1,
			StartDate:           date(2026, 9, 1),
			EndDate:             date(2026, 12, 31),
			DeltaForReturnRoute: 120,
			Section: model.FirstSectionInput{
				DepartureAirport: "FCO",
				ArrivalAirport:   "JFK",
				DepartureTime:    "08:30",
			},
		})
		return err
	})
	require.NoError(t, err)
	return outbound, returning
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
