package handler

import (
	"airline_manager/constants"
	"airline_manager/database"
	"airline_manager/model"
	"airline_manager/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetAllCountries(c *fiber.Ctx) error {
	var countries []model.Country
	if err := database.DB.Order("name").Find(&countries).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, countries)
}

func GetCitiesByCountry(c *fiber.Ctx) error {
	id := c.Locals("id").(uint)
	var cities []model.City
	err := database.DB.Where("id_country = ?", id).Order("name").Find(&cities).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, cities)
}

func GetAllAirports(c *fiber.Ctx) error {
	db := database.DB
	pagination := new(model.Pagination)
	_ = c.QueryParser(pagination)

	var totalCount int64
	db.Model(&model.Airport{}).Count(&totalCount)

	var airports []model.Airport
	query := utils.ApplyPagination(db.Preload("City.Country").Order("iata_code"), pagination.Limit, pagination.Page)
	if err := query.Find(&airports).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       airports,
		Limit:      pagination.Limit,
		Page:       pagination.Page,
		TotalCount: totalCount,
	})
}

func GetAirportByCode(c *fiber.Ctx) error {
	code := c.Params("code")
	var airport model.Airport
	err := database.DB.Preload("City.Country").First(&airport, "iata_code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.AIRPORT_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, airport)
}

func CreateAirport(c *fiber.Ctx) error {
	input := c.Locals("input").(*model.CreateAirportInput)
	db := database.DB

	var count int64
	db.Model(&model.Airport{}).Where("iata_code = ?", input.IataCode).Count(&count)
	if count > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.AIRPORT_ALREADY_EXISTS, nil)
	}

	var city model.City
	if err := db.First(&city, input.IdCity).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.CITY_NOT_FOUND, err)
	}

	airport := model.Airport{
		IataCode:  input.IataCode,
		IdCity:    input.IdCity,
		Name:      input.Name,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
	}
	if err := db.Create(&airport).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, airport)
}

func EditAirport(c *fiber.Ctx) error {
	input := c.Locals("input").(*model.EditAirportInput)
	code := c.Params("code")
	db := database.DB

	var airport model.Airport
	if err := db.First(&airport, "iata_code = ?", code).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.AIRPORT_NOT_FOUND, err)
	}

	if input.IdCity != nil {
		var city model.City
		if err := db.First(&city, *input.IdCity).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.CITY_NOT_FOUND, err)
		}
		airport.IdCity = *input.IdCity
	}
	if input.Name != nil {
		airport.Name = *input.Name
	}
	if input.Latitude != nil {
		airport.Latitude = *input.Latitude
	}
	if input.Longitude != nil {
		airport.Longitude = *input.Longitude
	}
	if err := db.Save(&airport).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, airport)
}
