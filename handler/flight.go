package handler

import (
	"airline_manager/constants"
	"airline_manager/database"
	"airline_manager/helper"
	"airline_manager/model"
	"airline_manager/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// ScheduleFlights places pairs of outbound/return flights on the calendar
func ScheduleFlights(c *fiber.Ctx) error {
	input := c.Locals("input").(*model.ScheduleFlightsInput)
	claim, ok := helper.GetUserFromToken(c)
	if !ok {
		return nil
	}
	if !helper.RequireAirline(c, claim, input.AirlineCode) {
		return nil
	}

	flights, err := helper.ScheduleFlights(database.DB, *input)
	if err != nil {
		switch {
		case errors.Is(err, helper.ErrNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROUTE_NOT_FOUND, err)
		case errors.Is(err, helper.ErrScheduleConflict):
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.FLIGHT_SCHEDULE_CONFLICT, err)
		case errors.Is(err, helper.ErrValidation):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		case errors.Is(err, helper.ErrInvalidChain):
			return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, constants.ROUTE_INVALID_CHAIN, err)
		default:
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, flights)
}

func GetFlightsByRoute(c *fiber.Ctx) error {
	code := c.Params("routeCode")
	db := database.DB

	var flights []model.Flight
	err := db.Where("route_code = ?", code).Order("scheduled_departure_day").Find(&flights).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, flights)
}

// SearchFlights answers the customer search form. A round trip search
// runs the same lookup twice with the endpoints swapped.
func SearchFlights(c *fiber.Ctx) error {
	input := c.Locals("input").(*model.FlightSearchInput)
	db := database.DB

	outbound, err := helper.SearchFlights(db,
		input.DepartureAirport, input.ArrivalAirport,
		input.DepartureDateOutbound, input.IdClass, input.DirectFlights)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	result := fiber.Map{"outboundFlights": outbound}
	if input.RoundTripFlight && input.DepartureDateReturn != nil {
		returning, err := helper.SearchFlights(db,
			input.ArrivalAirport, input.DepartureAirport,
			*input.DepartureDateReturn, input.IdClass, input.DirectFlights)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		result["returnFlights"] = returning
	}

	return utils.SuccessResponse(c, fiber.StatusOK, result)
}

// GetFlightSeats returns the flight's cabins with the sold seats marked
func GetFlightSeats(c *fiber.Ctx) error {
	id := c.Locals("id").(uint)

	blocks, err := helper.FlightSeatBlocks(database.DB, id)
	if err != nil {
		if errors.Is(err, helper.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.FLIGHT_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, blocks)
}
