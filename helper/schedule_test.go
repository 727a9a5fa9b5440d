package helper

import (
	"testing"
	"time"

	"airline_manager/constants"
	"airline_manager/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func scheduleInput(routeCode string, aircraftId uint, pairs ...[2]time.Time) model.ScheduleFlightsInput {
	input := model.ScheduleFlightsInput{
		AirlineCode: "AZ",
		RouteCode:   routeCode,
		AircraftId:  aircraftId,
	}
	for _, pair := range pairs {
		input.Schedule = append(input.Schedule, model.FlightDates{Outbound: pair[0], Return: pair[1]})
	}
	return input
}

func TestScheduleFlights(t *testing.T) {
	t.Run("creates the outbound and return pair", func(t *testing.T) {
		f := newFixture(t)
		outbound, returning := f.routePair(t)
		f.seatBlock(t, f.unit.ID, 3, 6)

		flights, err := ScheduleFlights(f.db, scheduleInput(outbound, f.unit.ID,
			[2]time.Time{date(2026, 10, 1), date(2026, 10, 5)}))
		require.NoError(t, err)
		require.Len(t, flights, 2)

		assert.Equal(t, outbound, flights[0].RouteCode)
		assert.Equal(t, returning, flights[1].RouteCode)
		assert.Equal(t, constants.FLIGHT_STATUS_SCHEDULED, flights[0].Status)

		// FCO-JFK lands the same day it departs
		assert.Equal(t, date(2026, 10, 1), flights[0].ScheduledDepartureDay)
		assert.Equal(t, date(2026, 10, 1), flights[0].ScheduledArrivalDay)
		// the return crosses midnight
		assert.Equal(t, date(2026, 10, 5), flights[1].ScheduledDepartureDay)
		assert.Equal(t, date(2026, 10, 6), flights[1].ScheduledArrivalDay)
	})

	t.Run("return route cannot be scheduled directly", func(t *testing.T) {
		f := newFixture(t)
		_, returning := f.routePair(t)
		f.seatBlock(t, f.unit.ID, 3, 6)

		_, err := ScheduleFlights(f.db, scheduleInput(returning, f.unit.ID,
			[2]time.Time{date(2026, 10, 1), date(2026, 10, 5)}))
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("dates outside the validity window", func(t *testing.T) {
		f := newFixture(t)
		outbound, _ := f.routePair(t)
		f.seatBlock(t, f.unit.ID, 3, 6)

		_, err := ScheduleFlights(f.db, scheduleInput(outbound, f.unit.ID,
			[2]time.Time{date(2027, 1, 10), date(2027, 1, 15)}))
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("aircraft without a seat map", func(t *testing.T) {
		f := newFixture(t)
		outbound, _ := f.routePair(t)

		_, err := ScheduleFlights(f.db, scheduleInput(outbound, f.unit.ID,
			[2]time.Time{date(2026, 10, 1), date(2026, 10, 5)}))
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("same day twice is a conflict", func(t *testing.T) {
		f := newFixture(t)
		outbound, _ := f.routePair(t)
		f.seatBlock(t, f.unit.ID, 3, 6)

		_, err := ScheduleFlights(f.db, scheduleInput(outbound, f.unit.ID,
			[2]time.Time{date(2026, 10, 1), date(2026, 10, 5)}))
		require.NoError(t, err)

		_, err = ScheduleFlights(f.db, scheduleInput(outbound, f.unit.ID,
			[2]time.Time{date(2026, 10, 1), date(2026, 10, 8)}))
		assert.ErrorIs(t, err, ErrScheduleConflict)
	})

	t.Run("aircraft pinned to one route pair", func(t *testing.T) {
		f := newFixture(t)
		outbound, _ := f.routePair(t)
		f.seatBlock(t, f.unit.ID, 3, 6)

		var second string
		err := f.db.Transaction(func(tx *gorm.DB) error {
			var err error
			second, _, err = BuildRoutePair(tx, model.CreateRouteInput{
				AirlineCode: "AZ", NumberRoute: 5,
				StartDate: date(2026, 9, 1), EndDate: date(2026, 12, 31),
				DeltaForReturnRoute: 120,
				Section: model.FirstSectionInput{
					DepartureAirport: "FCO", ArrivalAirport: "AMS", DepartureTime: "06:00",
				},
			})
			return err
		})
		require.NoError(t, err)

		_, err = ScheduleFlights(f.db, scheduleInput(outbound, f.unit.ID,
			[2]time.Time{date(2026, 10, 1), date(2026, 10, 5)}))
		require.NoError(t, err)

		_, err = ScheduleFlights(f.db, scheduleInput(second, f.unit.ID,
			[2]time.Time{date(2026, 11, 1), date(2026, 11, 5)}))
		assert.ErrorIs(t, err, ErrScheduleConflict)
	})

	t.Run("one bad pair fails the whole batch", func(t *testing.T) {
		f := newFixture(t)
		outbound, _ := f.routePair(t)
		f.seatBlock(t, f.unit.ID, 3, 6)

		_, err := ScheduleFlights(f.db, scheduleInput(outbound, f.unit.ID,
			[2]time.Time{date(2026, 10, 1), date(2026, 10, 5)},
			[2]time.Time{date(2026, 10, 1), date(2026, 10, 9)}))
		assert.ErrorIs(t, err, ErrScheduleConflict)

		var flights int64
		f.db.Model(&model.Flight{}).Count(&flights)
		assert.Zero(t, flights)
	})

	t.Run("foreign aircraft rejected", func(t *testing.T) {
		f := newFixture(t)
		outbound, _ := f.routePair(t)

		lufthansa := model.Airline{IataCode: "LH", Name: "Lufthansa"}
		require.NoError(t, f.db.Create(&lufthansa).Error)
		foreign := model.AircraftAirline{AirlineCode: "LH", IdAircraftModel: f.model_.ID}
		require.NoError(t, f.db.Create(&foreign).Error)

		_, err := ScheduleFlights(f.db, scheduleInput(outbound, foreign.ID,
			[2]time.Time{date(2026, 10, 1), date(2026, 10, 5)}))
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestSearchFlights(t *testing.T) {
	f := newFixture(t)
	outbound, returning := f.routePair(t)
	f.seatBlock(t, f.unit.ID, 3, 6)

	_, err := ScheduleFlights(f.db, scheduleInput(outbound, f.unit.ID,
		[2]time.Time{date(2026, 10, 1), date(2026, 10, 5)}))
	require.NoError(t, err)

	t.Run("finds the outbound by endpoints and day", func(t *testing.T) {
		results, err := SearchFlights(f.db, "FCO", "JFK", date(2026, 10, 1), f.economy.ID, false)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, outbound, results[0].RouteCode)
		assert.Equal(t, 736, results[0].BasePrice)
		// no class policy yet: flight price equals base price
		assert.Equal(t, 736.0, results[0].FlightPrice)
	})

	t.Run("swapped endpoints find the return", func(t *testing.T) {
		results, err := SearchFlights(f.db, "JFK", "FCO", date(2026, 10, 5), f.economy.ID, false)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, returning, results[0].RouteCode)
	})

	t.Run("wrong day finds nothing", func(t *testing.T) {
		results, err := SearchFlights(f.db, "FCO", "JFK", date(2026, 10, 2), f.economy.ID, false)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("class policy changes the offered price", func(t *testing.T) {
		policy := model.ClassPricePolicy{
			IdClass:         f.economy.ID,
			AirlineCode:     "AZ",
			PriceMultiplier: 1.5,
			FixedMarkup:     10,
		}
		require.NoError(t, f.db.Create(&policy).Error)

		results, err := SearchFlights(f.db, "FCO", "JFK", date(2026, 10, 1), f.economy.ID, false)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, 736*1.5+10, results[0].FlightPrice)
	})
}
