package validate

import (
	"airline_manager/model"

	"github.com/gofiber/fiber/v2"
)

func CreateAirline() fiber.Handler {
	return body[model.CreateAirlineInput]()
}

func AddFleetAircraft() fiber.Handler {
	return body[model.AddFleetAircraftInput]()
}

func CreatePricePolicy() fiber.Handler {
	return body[model.CreatePricePolicyInput]()
}

func EditPricePolicy() fiber.Handler {
	return body[model.EditPricePolicyInput]()
}

func CreateClassPricePolicy() fiber.Handler {
	return body[model.CreateClassPricePolicyInput]()
}

func EditClassPricePolicy() fiber.Handler {
	return body[model.EditClassPricePolicyInput]()
}
