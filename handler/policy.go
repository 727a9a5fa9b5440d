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

func GetPricePolicy(c *fiber.Ctx) error {
	code := c.Params("code")
	var policy model.AirlinePricePolicy
	err := database.DB.First(&policy, "airline_code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PRICE_POLICY_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, policy)
}

func CreatePricePolicy(c *fiber.Ctx) error {
	input := c.Locals("input").(*model.CreatePricePolicyInput)
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

	policy := model.AirlinePricePolicy{
		AirlineCode:    input.AirlineCode,
		FixedMarkup:    input.FixedMarkup,
		PriceForKm:     input.PriceForKm,
		FeeForStopover: input.FeeForStopover,
	}
	if err := db.Create(&policy).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Price policy already exists", err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, policy)
}

// EditPricePolicy only touches future routes: base prices already
// computed stay as they are
func EditPricePolicy(c *fiber.Ctx) error {
	input := c.Locals("input").(*model.EditPricePolicyInput)
	code := c.Params("code")
	claim, ok := helper.GetUserFromToken(c)
	if !ok {
		return nil
	}
	if !helper.RequireAirline(c, claim, code) {
		return nil
	}

	db := database.DB
	var policy model.AirlinePricePolicy
	if err := db.First(&policy, "airline_code = ?", code).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PRICE_POLICY_NOT_FOUND, err)
	}

	if input.FixedMarkup != nil {
		policy.FixedMarkup = *input.FixedMarkup
	}
	if input.PriceForKm != nil {
		policy.PriceForKm = *input.PriceForKm
	}
	if input.FeeForStopover != nil {
		policy.FeeForStopover = *input.FeeForStopover
	}
	if err := db.Save(&policy).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, policy)
}

func GetClassPricePolicies(c *fiber.Ctx) error {
	code := c.Params("code")
	var policies []model.ClassPricePolicy
	err := database.DB.Preload("ClassSeat").Where("airline_code = ?", code).Find(&policies).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, policies)
}

func CreateClassPricePolicy(c *fiber.Ctx) error {
	input := c.Locals("input").(*model.CreateClassPricePolicyInput)
	claim, ok := helper.GetUserFromToken(c)
	if !ok {
		return nil
	}
	if !helper.RequireAirline(c, claim, input.AirlineCode) {
		return nil
	}

	db := database.DB
	var class model.ClassSeat
	if err := db.First(&class, input.IdClass).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.CLASS_NOT_FOUND, err)
	}

	policy := model.ClassPricePolicy{
		IdClass:         input.IdClass,
		AirlineCode:     input.AirlineCode,
		PriceMultiplier: input.PriceMultiplier,
		FixedMarkup:     input.FixedMarkup,
	}
	if err := db.Create(&policy).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Class price policy already exists", err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, policy)
}

func EditClassPricePolicy(c *fiber.Ctx) error {
	input := c.Locals("input").(*model.EditClassPricePolicyInput)
	id := c.Locals("id").(uint)
	claim, ok := helper.GetUserFromToken(c)
	if !ok {
		return nil
	}

	db := database.DB
	var policy model.ClassPricePolicy
	if err := db.First(&policy, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.CLASS_PRICE_POLICY_NOT_FOUND, err)
	}
	if !helper.RequireAirline(c, claim, policy.AirlineCode) {
		return nil
	}

	if input.PriceMultiplier != nil {
		policy.PriceMultiplier = *input.PriceMultiplier
	}
	if input.FixedMarkup != nil {
		policy.FixedMarkup = *input.FixedMarkup
	}
	if err := db.Save(&policy).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, policy)
}
