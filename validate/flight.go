package validate

import (
	"airline_manager/model"
	"airline_manager/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// ScheduleFlights rejects duplicate date pairs inside one request and
// return dates earlier than their outbound
func ScheduleFlights() fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := parseBody[model.ScheduleFlightsInput](c)
		if input == nil {
			return err
		}

		seen := map[[2]string]bool{}
		for _, pair := range input.Schedule {
			if pair.Return.Before(pair.Outbound) {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, "Return date cannot precede the outbound date", errors.New("inverted pair"))
			}
			key := [2]string{pair.Outbound.Format("2006-01-02"), pair.Return.Format("2006-01-02")}
			if seen[key] {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, "Duplicate date pair in schedule", errors.New("duplicate pair"))
			}
			seen[key] = true
		}

		return c.Next()
	}
}

func SearchFlights() fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := parseBody[model.FlightSearchInput](c)
		if input == nil {
			return err
		}

		if input.DepartureAirport == input.ArrivalAirport {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Departure and arrival airports must differ", errors.New("same airport"))
		}
		if input.RoundTripFlight {
			if input.DepartureDateReturn == nil {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, "Round trip search needs a return date", errors.New("missing return date"))
			}
			if input.DepartureDateReturn.Before(input.DepartureDateOutbound) {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, "Return date cannot precede the outbound date", errors.New("inverted dates"))
			}
		}

		return c.Next()
	}
}
