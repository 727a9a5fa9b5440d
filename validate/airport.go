package validate

import (
	"airline_manager/model"

	"github.com/gofiber/fiber/v2"
)

func CreateAirport() fiber.Handler {
	return body[model.CreateAirportInput]()
}

func EditAirport() fiber.Handler {
	return body[model.EditAirportInput]()
}
