package handler

import (
	"airline_manager/constants"
	"airline_manager/database"
	"airline_manager/helper"
	"airline_manager/model"
	"airline_manager/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetAllAircraftModels(c *fiber.Ctx) error {
	var aircraft []model.Aircraft
	err := database.DB.Preload("Manufacturer").Order("name").Find(&aircraft).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, aircraft)
}

func CreateAircraftModel(c *fiber.Ctx) error {
	input := c.Locals("input").(*model.CreateAircraftInput)
	db := database.DB

	var manufacturer model.Manufacturer
	if err := db.First(&manufacturer, input.IdManufacturer).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Manufacturer not found", err)
	}

	aircraft := model.Aircraft{
		IdManufacturer: input.IdManufacturer,
		Name:           input.Name,
		MaxSeats:       input.MaxSeats,
		CabinMaxCols:   input.CabinMaxCols,
		CruiseSpeedKmh: input.CruiseSpeedKmh,
	}
	if err := db.Create(&aircraft).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, aircraft)
}

func GetSeatMap(c *fiber.Ctx) error {
	id := c.Locals("id").(uint)
	db := database.DB

	if _, err := helper.FleetUnitModel(db, id); err != nil {
		if errors.Is(err, helper.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.AIRCRAFT_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	seatMap, err := helper.SeatMapJSON(db, id)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, seatMap)
}

// InsertSeatBlock adds one cabin to a fleet unit from a boolean matrix
func InsertSeatBlock(c *fiber.Ctx) error {
	input := c.Locals("input").(*model.InsertBlockInput)
	claim, ok := helper.GetUserFromToken(c)
	if !ok {
		return nil
	}
	if !helper.RequireAirline(c, claim, input.AirlineCode) {
		return nil
	}

	db := database.DB
	unit, err := helper.FleetUnitModel(db, input.IdAircraftAirline)
	if err != nil {
		if errors.Is(err, helper.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.AIRCRAFT_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if unit.AirlineCode != input.AirlineCode {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_PERMISSION, nil)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		return helper.InsertBlock(tx, input.Matrix, input.IdClass, input.IdAircraftAirline)
	})
	if err != nil {
		switch {
		case errors.Is(err, helper.ErrCapacityExceeded):
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.SEAT_MAP_MAX_SEATS_EXCEEDED, err)
		case errors.Is(err, helper.ErrNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.CLASS_NOT_FOUND, err)
		case errors.Is(err, helper.ErrValidation):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		default:
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}

	seatMap, err := helper.SeatMapJSON(db, input.IdAircraftAirline)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, seatMap)
}

// CloneSeatMap copies the full cabin layout of one fleet unit onto
// another of the same airline, replacing whatever the target had
func CloneSeatMap(c *fiber.Ctx) error {
	input := c.Locals("input").(*model.CloneSeatMapInput)
	claim, ok := helper.GetUserFromToken(c)
	if !ok {
		return nil
	}
	if !helper.RequireAirline(c, claim, input.AirlineCode) {
		return nil
	}

	db := database.DB
	for _, id := range []uint{input.SourceId, input.TargetId} {
		unit, err := helper.FleetUnitModel(db, id)
		if err != nil {
			if errors.Is(err, helper.ErrNotFound) {
				return utils.ErrorResponse(c, fiber.StatusNotFound, constants.AIRCRAFT_NOT_FOUND, err)
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		if unit.AirlineCode != input.AirlineCode {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_PERMISSION, nil)
		}
	}

	copied, err := helper.CloneSeatMap(db, input.SourceId, input.TargetId)
	if err != nil {
		switch {
		case errors.Is(err, helper.ErrIncompatibleLayout):
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.SEAT_MAP_INCOMPATIBLE, err)
		case errors.Is(err, helper.ErrCapacityExceeded):
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.SEAT_MAP_MAX_SEATS_EXCEEDED, err)
		case errors.Is(err, helper.ErrNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.SEAT_MAP_SOURCE_EMPTY, err)
		default:
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"copiedCabins": copied})
}
