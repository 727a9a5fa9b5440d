package handler

import (
	"airline_manager/constants"
	"airline_manager/database"
	"airline_manager/helper"
	"airline_manager/model"
	"airline_manager/utils"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateRoute builds the outbound route and its mirrored return route in
// one transaction
func CreateRoute(c *fiber.Ctx) error {
	input := c.Locals("input").(*model.CreateRouteInput)
	claim, ok := helper.GetUserFromToken(c)
	if !ok {
		return nil
	}
	if !helper.RequireAirline(c, claim, input.AirlineCode) {
		return nil
	}

	db := database.DB
	var outboundCode, returnCode string
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		outboundCode, returnCode, err = helper.BuildRoutePair(tx, *input)
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, helper.ErrAlreadyExists):
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.ROUTE_ALREADY_EXISTS, err)
		case errors.Is(err, helper.ErrPolicyMissing):
			return utils.ErrorResponse(c, fiber.StatusPreconditionFailed, constants.ROUTE_PRICE_POLICY_REQUIRED, err)
		case errors.Is(err, helper.ErrNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.AIRPORT_NOT_FOUND, err)
		case errors.Is(err, helper.ErrValidation):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		default:
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"outboundRoute": outboundCode,
		"returnRoute":   returnCode,
	})
}

func GetRoutesByAirline(c *fiber.Ctx) error {
	code := c.Params("code")
	db := database.DB
	pagination := new(model.Pagination)
	_ = c.QueryParser(pagination)

	var totalCount int64
	db.Model(&model.Route{}).Where("airline_iata_code = ?", code).Count(&totalCount)

	var routes []model.Route
	query := utils.ApplyPagination(
		db.Where("airline_iata_code = ?", code).Order("code"),
		pagination.Limit, pagination.Page,
	)
	if err := query.Find(&routes).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       routes,
		Limit:      pagination.Limit,
		Page:       pagination.Page,
		TotalCount: totalCount,
	})
}

// DescribeRoute walks the leg chain in order, with layovers and the
// total duration
func DescribeRoute(c *fiber.Ctx) error {
	code := c.Params("routeCode")

	description, err := helper.DescribeRoute(database.DB, code)
	if err != nil {
		switch {
		case errors.Is(err, helper.ErrNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROUTE_NOT_FOUND, err)
		case errors.Is(err, helper.ErrInvalidChain):
			return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, constants.ROUTE_INVALID_CHAIN, err)
		default:
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}
	return utils.SuccessResponse(c, fiber.StatusOK, description)
}

// ChangeDeadline extends the sale window of a route. The new end date
// must be later than the current one and not in the past.
func ChangeDeadline(c *fiber.Ctx) error {
	input := c.Locals("input").(*model.ChangeDeadlineInput)
	code := c.Params("routeCode")
	claim, ok := helper.GetUserFromToken(c)
	if !ok {
		return nil
	}
	if !helper.RequireAirline(c, claim, input.AirlineCode) {
		return nil
	}

	db := database.DB
	var route model.Route
	err := db.First(&route, "code = ? AND airline_iata_code = ?", code, input.AirlineCode).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROUTE_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	if input.EndDate.Before(today) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.END_DATE_IN_PAST, nil)
	}
	if !input.EndDate.After(route.EndDate) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.END_DATE_NOT_EXTENDED, nil)
	}

	// the pair flies together, so the return route gets the same deadline
	err = db.Transaction(func(tx *gorm.DB) error {
		extend := func(r *model.Route) error {
			r.EndDate = input.EndDate
			if r.Status == constants.ROUTE_STATUS_EXPIRED {
				r.Status = constants.ROUTE_STATUS_ACTIVE
			}
			return tx.Save(r).Error
		}
		if err := extend(&route); err != nil {
			return err
		}
		reverseCode, err := helper.FindReverseRoute(tx, route.Code)
		if err != nil || reverseCode == "" {
			return err
		}
		var reverse model.Route
		if err := tx.First(&reverse, "code = ?", reverseCode).Error; err != nil {
			return err
		}
		return extend(&reverse)
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, route)
}

// ChangeBasePrice overrides the computed base price. Tickets already
// sold keep the price they were bought at.
func ChangeBasePrice(c *fiber.Ctx) error {
	input := c.Locals("input").(*model.ChangeBasePriceInput)
	code := c.Params("routeCode")
	claim, ok := helper.GetUserFromToken(c)
	if !ok {
		return nil
	}
	if !helper.RequireAirline(c, claim, input.AirlineCode) {
		return nil
	}

	db := database.DB
	var route model.Route
	err := db.First(&route, "code = ? AND airline_iata_code = ?", code, input.AirlineCode).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ROUTE_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	route.BasePrice = input.BasePrice
	if err := db.Save(&route).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, route)
}
