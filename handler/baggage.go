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

func GetAllBaggageTypes(c *fiber.Ctx) error {
	var baggage []model.Baggage
	if err := database.DB.Order("id").Find(&baggage).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, baggage)
}

func GetBaggageRules(c *fiber.Ctx) error {
	code := c.Params("code")
	var rules []model.BaggageRule
	err := database.DB.Preload("Baggage").Where("airline_code = ?", code).Find(&rules).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, rules)
}

func CreateBaggageRule(c *fiber.Ctx) error {
	input := c.Locals("input").(*model.CreateBaggageRuleInput)
	claim, ok := helper.GetUserFromToken(c)
	if !ok {
		return nil
	}
	if !helper.RequireAirline(c, claim, input.AirlineCode) {
		return nil
	}

	db := database.DB
	var baggage model.Baggage
	if err := db.First(&baggage, input.IdBaggageType).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BAGGAGE_NOT_FOUND, err)
	}

	var count int64
	db.Model(&model.BaggageRule{}).
		Where("airline_code = ? AND id_baggage_type = ?", input.AirlineCode, input.IdBaggageType).
		Count(&count)
	if count > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.BAGGAGE_RULE_EXISTS, nil)
	}

	rule := model.BaggageRule{
		IdBaggageType: input.IdBaggageType,
		AirlineCode:   input.AirlineCode,
		MaxWeightKg:   input.MaxWeightKg,
		MaxLengthCm:   input.MaxLengthCm,
		MaxWidthCm:    input.MaxWidthCm,
		MaxHeightCm:   input.MaxHeightCm,
		MaxLinearCm:   input.MaxLinearCm,
		OverWeightFee: input.OverWeightFee,
		OverSizeFee:   input.OverSizeFee,
		BasePrice:     input.BasePrice,
		AllowExtra:    *input.AllowExtra,
	}
	if err := db.Create(&rule).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, rule)
}

func EditBaggageRule(c *fiber.Ctx) error {
	input := c.Locals("input").(*model.EditBaggageRuleInput)
	claim, ok := helper.GetUserFromToken(c)
	if !ok {
		return nil
	}
	if !helper.RequireAirline(c, claim, input.AirlineCode) {
		return nil
	}

	db := database.DB
	var rule model.BaggageRule
	err := db.First(&rule, "id = ? AND airline_code = ?", input.IdBaggageRule, input.AirlineCode).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BAGGAGE_RULE_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if input.MaxWeightKg != nil {
		rule.MaxWeightKg = input.MaxWeightKg
	}
	if input.MaxLengthCm != nil {
		rule.MaxLengthCm = *input.MaxLengthCm
	}
	if input.MaxWidthCm != nil {
		rule.MaxWidthCm = *input.MaxWidthCm
	}
	if input.MaxHeightCm != nil {
		rule.MaxHeightCm = *input.MaxHeightCm
	}
	if input.MaxLinearCm != nil {
		rule.MaxLinearCm = input.MaxLinearCm
	}
	if input.OverWeightFee != nil {
		rule.OverWeightFee = input.OverWeightFee
	}
	if input.OverSizeFee != nil {
		rule.OverSizeFee = *input.OverSizeFee
	}
	if input.BasePrice != nil {
		rule.BasePrice = *input.BasePrice
	}
	if input.AllowExtra != nil {
		rule.AllowExtra = *input.AllowExtra
	}
	if err := db.Save(&rule).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, rule)
}

func GetClassBaggagePolicies(c *fiber.Ctx) error {
	code := c.Params("code")
	var policies []model.ClassBaggagePolicy
	err := database.DB.Preload("Baggage").Preload("ClassSeat").
		Where("airline_code = ?", code).Find(&policies).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, policies)
}

func CreateClassBaggagePolicy(c *fiber.Ctx) error {
	input := c.Locals("input").(*model.CreateClassBaggagePolicyInput)
	claim, ok := helper.GetUserFromToken(c)
	if !ok {
		return nil
	}
	if !helper.RequireAirline(c, claim, input.AirlineCode) {
		return nil
	}

	db := database.DB
	var count int64
	db.Model(&model.ClassBaggagePolicy{}).
		Where("airline_code = ? AND id_baggage_type = ? AND id_class = ?",
			input.AirlineCode, input.IdBaggageType, input.IdClass).
		Count(&count)
	if count > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.BAGGAGE_POLICY_EXISTS, nil)
	}

	policy := model.ClassBaggagePolicy{
		AirlineCode:      input.AirlineCode,
		IdBaggageType:    input.IdBaggageType,
		IdClass:          input.IdClass,
		QuantityIncluded: input.QuantityIncluded,
	}
	if err := db.Create(&policy).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, policy)
}

func EditClassBaggagePolicy(c *fiber.Ctx) error {
	input := c.Locals("input").(*model.EditClassBaggagePolicyInput)
	claim, ok := helper.GetUserFromToken(c)
	if !ok {
		return nil
	}
	if !helper.RequireAirline(c, claim, input.AirlineCode) {
		return nil
	}

	db := database.DB
	var policy model.ClassBaggagePolicy
	err := db.First(&policy, "id = ? AND airline_code = ?", input.IdClassBaggagePolicy, input.AirlineCode).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BAGGAGE_POLICY_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	policy.QuantityIncluded = input.QuantityIncluded
	if err := db.Save(&policy).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, policy)
}
