package validate

import (
	"airline_manager/model"
	"airline_manager/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// BookTickets rejects the same seat appearing twice in one purchase;
// the booking transaction still rechecks against concurrent buyers
func BookTickets() fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := parseBody[model.BookInput](c)
		if input == nil {
			return err
		}

		seen := map[[2]uint]bool{}
		for _, request := range input.Tickets {
			key := [2]uint{request.TicketInfo.IdFlight, request.TicketInfo.IdSeat}
			if seen[key] {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, "The same seat appears twice in the request", errors.New("duplicate seat"))
			}
			seen[key] = true

			baggage := map[uint]bool{}
			for _, selection := range request.TicketInfo.AdditionalBaggage {
				if baggage[selection.IdBaggage] {
					return utils.ErrorResponse(c, fiber.StatusBadRequest, "Duplicate baggage type on one ticket", errors.New("duplicate baggage"))
				}
				baggage[selection.IdBaggage] = true
			}
		}

		return c.Next()
	}
}
