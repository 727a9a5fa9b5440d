package validate

import (
	"airline_manager/helper"
	"airline_manager/model"
	"airline_manager/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// CreateRoute walks the nested section chain: the head needs a parsable
// departure time, every later section a layover of at least two hours,
// and consecutive sections must share the connecting airport
func CreateRoute() fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := parseBody[model.CreateRouteInput](c)
		if input == nil {
			return err
		}

		if input.EndDate.Before(input.StartDate) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "End date must not precede start date", errors.New("invalid validity window"))
		}
		if _, err := helper.ParseClock(input.Section.DepartureTime); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Departure time must be HH:MM", err)
		}
		if input.Section.DepartureAirport == input.Section.ArrivalAirport {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "A section cannot start and end at the same airport", errors.New("degenerate section"))
		}

		previousArrival := input.Section.ArrivalAirport
		for next := input.Section.Next; next != nil; next = next.Next {
			if next.DepartureAirport != previousArrival {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, "Sections must form a continuous chain", errors.New("disconnected section"))
			}
			if next.DepartureAirport == next.ArrivalAirport {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, "A section cannot start and end at the same airport", errors.New("degenerate section"))
			}
			if len(next.DepartureAirport) != 3 || len(next.ArrivalAirport) != 3 {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, "Airport codes must be 3 letters", errors.New("bad iata code"))
			}
			if next.WaitingTime < 120 {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, "Layovers must be at least 120 minutes", errors.New("layover too short"))
			}
			previousArrival = next.ArrivalAirport
		}

		return c.Next()
	}
}

func ChangeDeadline() fiber.Handler {
	return body[model.ChangeDeadlineInput]()
}

func ChangeBasePrice() fiber.Handler {
	return body[model.ChangeBasePriceInput]()
}
