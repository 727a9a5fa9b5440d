package helper

import (
	"airline_manager/constants"
	"errors"
	"fmt"
	"time"

	"airline_manager/model"

	"gorm.io/gorm"
)

// arrivalDayOffset walks an ordered chain and counts how many midnights
// pass between the head departure and the tail arrival.
func arrivalDayOffset(ordered []model.RouteDetail) (int, error) {
	if len(ordered) == 0 {
		return 0, ErrInvalidChain
	}
	cursor, err := ParseClock(ordered[0].DepartureTime)
	if err != nil {
		return 0, err
	}
	days := 0
	for _, leg := range ordered {
		departure, err := ParseClock(leg.DepartureTime)
		if err != nil {
			return 0, err
		}
		arrival, err := ParseClock(leg.ArrivalTime)
		if err != nil {
			return 0, err
		}
		if departure < cursor {
			days++
		}
		cursor = departure
		if arrival < cursor {
			days++
		}
		cursor = arrival
	}
	return days, nil
}

func orderedChain(db *gorm.DB, code string) ([]model.RouteDetail, error) {
	var details []model.RouteDetail
	if err := db.Where("code_route = ?", code).Find(&details).Error; err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, fmt.Errorf("route %s has no legs: %w", code, ErrNotFound)
	}
	return ChainOrder(details)
}

func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ScheduleFlights creates the paired outbound and return flights for
// every requested date pair. The aircraft stays pinned to this route
// pair: once it flies one, it cannot be scheduled on any other until
// its calendar is empty again. All pairs land in one transaction.
func ScheduleFlights(db *gorm.DB, input model.ScheduleFlightsInput) ([]model.Flight, error) {
	var outbound model.Route
	err := db.First(&outbound, "code = ?", input.RouteCode).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("route %s: %w", input.RouteCode, ErrNotFound)
		}
		return nil, err
	}
	if outbound.AirlineIataCode != input.AirlineCode {
		return nil, fmt.Errorf("route %s belongs to %s: %w", outbound.Code, outbound.AirlineIataCode, ErrValidation)
	}
	if !outbound.IsOutbound {
		return nil, fmt.Errorf("route %s is a return route, schedule its outbound: %w", outbound.Code, ErrValidation)
	}
	if outbound.Status != constants.ROUTE_STATUS_ACTIVE {
		return nil, fmt.Errorf("route %s is %s: %w", outbound.Code, outbound.Status, ErrValidation)
	}

	returnCode, err := FindReverseRoute(db, outbound.Code)
	if err != nil {
		return nil, err
	}
	if returnCode == "" {
		return nil, fmt.Errorf("route %s has no return route: %w", outbound.Code, ErrNotFound)
	}
	var returning model.Route
	if err := db.First(&returning, "code = ?", returnCode).Error; err != nil {
		return nil, err
	}

	unit, err := FleetUnitModel(db, input.AircraftId)
	if err != nil {
		return nil, err
	}
	if unit.AirlineCode != input.AirlineCode {
		return nil, fmt.Errorf("aircraft %d belongs to %s: %w", unit.ID, unit.AirlineCode, ErrValidation)
	}
	seats, err := SeatCount(db, unit.ID)
	if err != nil {
		return nil, err
	}
	if seats == 0 {
		return nil, fmt.Errorf("aircraft %d has no seat map: %w", unit.ID, ErrValidation)
	}

	// an aircraft serves at most one route pair at a time
	var assigned []string
	err = db.Model(&model.Flight{}).
		Distinct("route_code").
		Where("id_aircraft = ?", unit.ID).
		Pluck("route_code", &assigned).Error
	if err != nil {
		return nil, err
	}
	for _, code := range assigned {
		if code != outbound.Code && code != returnCode {
			return nil, fmt.Errorf("aircraft %d already flies route %s: %w", unit.ID, code, ErrScheduleConflict)
		}
	}

	outboundChain, err := orderedChain(db, outbound.Code)
	if err != nil {
		return nil, err
	}
	returnChain, err := orderedChain(db, returnCode)
	if err != nil {
		return nil, err
	}
	outboundOffset, err := arrivalDayOffset(outboundChain)
	if err != nil {
		return nil, err
	}
	returnOffset, err := arrivalDayOffset(returnChain)
	if err != nil {
		return nil, err
	}

	var created []model.Flight
	err = db.Transaction(func(tx *gorm.DB) error {
		for _, pair := range input.Schedule {
			outDeparture := day(pair.Outbound)
			retDeparture := day(pair.Return)
			outArrival := outDeparture.AddDate(0, 0, outboundOffset)
			retArrival := retDeparture.AddDate(0, 0, returnOffset)

			if retDeparture.Before(outArrival) {
				return fmt.Errorf("return on %s departs before the outbound lands: %w",
					retDeparture.Format("2006-01-02"), ErrValidation)
			}
			if outDeparture.Before(day(outbound.StartDate)) || outDeparture.After(day(outbound.EndDate)) {
				return fmt.Errorf("outbound %s outside route validity: %w",
					outDeparture.Format("2006-01-02"), ErrValidation)
			}
			if retDeparture.Before(day(returning.StartDate)) || retDeparture.After(day(returning.EndDate)) {
				return fmt.Errorf("return %s outside route validity: %w",
					retDeparture.Format("2006-01-02"), ErrValidation)
			}

			days := []time.Time{outDeparture, outArrival, retDeparture, retArrival}
			var clashes int64
			err := tx.Model(&model.Flight{}).
				Where("id_aircraft = ?", unit.ID).
				Where("scheduled_departure_day IN ? OR scheduled_arrival_day IN ?", days, days).
				Count(&clashes).Error
			if err != nil {
				return err
			}
			if clashes > 0 {
				return fmt.Errorf("aircraft %d is already flying around %s: %w",
					unit.ID, outDeparture.Format("2006-01-02"), ErrScheduleConflict)
			}

			flights := []model.Flight{
				{
					IdAircraft:            unit.ID,
					RouteCode:             outbound.Code,
					ScheduledDepartureDay: outDeparture,
					ScheduledArrivalDay:   outArrival,
					Status:                constants.FLIGHT_STATUS_SCHEDULED,
				},
				{
					IdAircraft:            unit.ID,
					RouteCode:             returnCode,
					ScheduledDepartureDay: retDeparture,
					ScheduledArrivalDay:   retArrival,
					Status:                constants.FLIGHT_STATUS_SCHEDULED,
				},
			}
			if err := tx.Create(&flights).Error; err != nil {
				return err
			}
			created = append(created, flights...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// SearchFlights lists scheduled flights matching an airport pair and a
// departure day, priced for the requested class. DirectFlights keeps
// only single-leg routes.
func SearchFlights(db *gorm.DB, departureAirport, arrivalAirport string, departureDay time.Time, idClass uint, directOnly bool) ([]model.FlightSearchResult, error) {
	var flights []model.Flight
	err := db.Preload("Route.Airline").
		Joins("JOIN routes ON routes.code = flights.route_code").
		Where("flights.status = ?", constants.FLIGHT_STATUS_SCHEDULED).
		Where("flights.scheduled_departure_day = ?", day(departureDay)).
		Where("routes.status = ?", constants.ROUTE_STATUS_ACTIVE).
		Find(&flights).Error
	if err != nil {
		return nil, err
	}

	results := make([]model.FlightSearchResult, 0)
	for _, flight := range flights {
		from, to, err := routeEndpoints(db, flight.RouteCode)
		if err != nil {
			if errors.Is(err, ErrInvalidChain) || errors.Is(err, ErrNotFound) {
				continue
			}
			return nil, err
		}
		if from != departureAirport || to != arrivalAirport {
			continue
		}
		if directOnly {
			var legs int64
			if err := db.Model(&model.RouteDetail{}).Where("code_route = ?", flight.RouteCode).Count(&legs).Error; err != nil {
				return nil, err
			}
			if legs > 1 {
				continue
			}
		}

		policy, err := GetClassPricePolicy(db, flight.Route.AirlineIataCode, idClass)
		if err != nil {
			return nil, err
		}
		results = append(results, model.FlightSearchResult{
			IdFlight:              flight.ID,
			IdAircraft:            flight.IdAircraft,
			RouteCode:             flight.RouteCode,
			BasePrice:             flight.Route.BasePrice,
			FlightPrice:           ClassAdjustedPrice(flight.Route.BasePrice, policy),
			AirlineIataCode:       flight.Route.AirlineIataCode,
			AirlineName:           flight.Route.Airline.Name,
			ScheduledDepartureDay: flight.ScheduledDepartureDay,
			ScheduledArrivalDay:   flight.ScheduledArrivalDay,
		})
	}
	return results, nil
}

// FlightSeatBlocks returns the flight's cabins with their sold seats
func FlightSeatBlocks(db *gorm.DB, idFlight uint) ([]model.FlightSeatBlock, error) {
	var flight model.Flight
	if err := db.First(&flight, idFlight).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("flight %d: %w", idFlight, ErrNotFound)
		}
		return nil, err
	}

	var soldSeats []uint
	err := db.Model(&model.Ticket{}).
		Where("id_flight = ?", idFlight).
		Pluck("id_seat", &soldSeats).Error
	if err != nil {
		return nil, err
	}
	sold := make(map[uint]bool, len(soldSeats))
	for _, id := range soldSeats {
		sold[id] = true
	}

	var cabins []model.Cabin
	err = db.Preload("Cells").Where("id_aircraft = ?", flight.IdAircraft).Order("id").Find(&cabins).Error
	if err != nil {
		return nil, err
	}

	blocks := make([]model.FlightSeatBlock, 0, len(cabins))
	for _, cabin := range cabins {
		block := model.FlightSeatBlock{IdCabin: cabin.ID, IdClass: cabin.IdClass}
		for _, cell := range cabin.Cells {
			if !cell.IsSeat || !sold[cell.ID] {
				continue
			}
			block.OccupiedSeats++
			block.Seats = append(block.Seats, model.SeatMapCell{
				IdCell: cell.ID,
				X:      cell.X,
				Y:      cell.Y,
				IsSeat: true,
			})
		}
		blocks = append(blocks, block)
	}
	return blocks, nil
}
