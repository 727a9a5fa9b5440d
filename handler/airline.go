package handler

import (
	"airline_manager/constants"
	"airline_manager/database"
	"airline_manager/helper"
	"airline_manager/model"
	"airline_manager/utils"
	"errors"
	"fmt"
	"time"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetAllAirlines(c *fiber.Ctx) error {
	db := database.DB
	pagination := new(model.Pagination)
	_ = c.QueryParser(pagination)

	var totalCount int64
	db.Model(&model.Airline{}).Count(&totalCount)

	var airlines []model.Airline
	query := utils.ApplyPagination(db.Order("iata_code"), pagination.Limit, pagination.Page)
	if err := query.Find(&airlines).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       airlines,
		Limit:      pagination.Limit,
		Page:       pagination.Page,
		TotalCount: totalCount,
	})
}

func GetAirlineByCode(c *fiber.Ctx) error {
	code := c.Params("code")
	var airline model.Airline
	if err := database.DB.First(&airline, "iata_code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.AIRLINE_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, airline)
}

func CreateAirline(c *fiber.Ctx) error {
	input := c.Locals("input").(*model.CreateAirlineInput)
	db := database.DB

	var count int64
	db.Model(&model.Airline{}).Where("iata_code = ?", input.IataCode).Count(&count)
	if count > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.AIRLINE_ALREADY_EXISTS, nil)
	}

	airline := model.Airline{
		IataCode: input.IataCode,
		Name:     input.Name,
	}
	if err := db.Create(&airline).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, airline)
}

// UploadAirlineLogo replaces the logo image on Cloudinary and stores the
// new secure URL
func UploadAirlineLogo(c *fiber.Ctx) error {
	code := c.Params("code")
	claim, ok := helper.GetUserFromToken(c)
	if !ok {
		return nil
	}
	if !helper.RequireAirline(c, claim, code) {
		return nil
	}

	db := database.DB
	var airline model.Airline
	if err := db.First(&airline, "iata_code = ?", code).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.AIRLINE_NOT_FOUND, err)
	}

	fileHeader, err := c.FormFile("logo")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Missing logo file", err)
	}
	file, err := fileHeader.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	defer file.Close()

	cld := helper.InitCloudinary()
	publicID := fmt.Sprintf("%s_%d", helper.LogoPublicID(airline.IataCode, airline.Name), time.Now().Unix())
	result, err := cld.Upload.Upload(c.Context(), file, uploader.UploadParams{
		Folder:       "airlines/logos",
		PublicID:     publicID,
		ResourceType: "image",
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// Xoá logo cũ nếu có
	if airline.LogoUrl != nil {
		if oldID := helper.ExtractPublicID(*airline.LogoUrl); oldID != "" {
			_, _ = cld.Upload.Destroy(c.Context(), uploader.DestroyParams{PublicID: oldID})
		}
	}

	airline.LogoUrl = &result.SecureURL
	if err := db.Save(&airline).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, airline)
}

// GetFleet lists the fleet units of an airline with their seat counts
func GetFleet(c *fiber.Ctx) error {
	code := c.Params("code")
	db := database.DB

	var units []model.AircraftAirline
	err := db.Preload("Aircraft.Manufacturer").Where("airline_code = ?", code).Find(&units).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	type fleetUnit struct {
		model.AircraftAirline
		Seats int `json:"seats"`
	}
	rows := make([]fleetUnit, 0, len(units))
	for _, unit := range units {
		seats, err := helper.SeatCount(db, unit.ID)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		rows = append(rows, fleetUnit{AircraftAirline: unit, Seats: seats})
	}
	return utils.SuccessResponse(c, fiber.StatusOK, rows)
}

func AddFleetAircraft(c *fiber.Ctx) error {
	input := c.Locals("input").(*model.AddFleetAircraftInput)
	claim, ok := helper.GetUserFromToken(c)
	if !ok {
		return nil
	}
	if !helper.RequireAirline(c, claim, input.AirlineCode) {
		return nil
	}

	db := database.DB
	var airline model.Airline
	if err := db.First(&airline, "iata_code = ?", input.AirlineCode).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.AIRLINE_NOT_FOUND, err)
	}
	var aircraft model.Aircraft
	if err := db.First(&aircraft, input.IdAircraftModel).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.AIRCRAFT_NOT_FOUND, err)
	}

	unit := model.AircraftAirline{
		AirlineCode:     input.AirlineCode,
		IdAircraftModel: input.IdAircraftModel,
	}
	if err := db.Create(&unit).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, unit)
}

func DeleteFleetAircraft(c *fiber.Ctx) error {
	id := c.Locals("id").(uint)
	claim, ok := helper.GetUserFromToken(c)
	if !ok {
		return nil
	}

	db := database.DB
	unit, err := helper.FleetUnitModel(db, id)
	if err != nil {
		if errors.Is(err, helper.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.AIRCRAFT_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if !helper.RequireAirline(c, claim, unit.AirlineCode) {
		return nil
	}

	var flights int64
	db.Model(&model.Flight{}).Where("id_aircraft = ?", unit.ID).Count(&flights)
	if flights > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.FLIGHT_AIRCRAFT_PINNED, nil)
	}

	if err := db.Delete(&model.AircraftAirline{}, unit.ID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": unit.ID})
}

// DeleteFleetAircraftBulk retires several fleet units in one call
func DeleteFleetAircraftBulk(c *fiber.Ctx) error {
	input := c.Locals("deleteIds").(model.ArrayId)
	code := c.Params("code")
	claim, ok := helper.GetUserFromToken(c)
	if !ok {
		return nil
	}
	if !helper.RequireAirline(c, claim, code) {
		return nil
	}

	deleted, err := helper.RemoveFleetUnits(database.DB, code, input.IDs)
	if err != nil {
		switch {
		case errors.Is(err, helper.ErrNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.AIRCRAFT_NOT_FOUND, err)
		case errors.Is(err, helper.ErrScheduleConflict):
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.FLIGHT_AIRCRAFT_PINNED, err)
		case errors.Is(err, helper.ErrValidation):
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_PERMISSION, err)
		default:
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": deleted})
}
