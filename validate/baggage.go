package validate

import (
	"airline_manager/model"

	"github.com/gofiber/fiber/v2"
)

func CreateBaggageRule() fiber.Handler {
	return body[model.CreateBaggageRuleInput]()
}

func EditBaggageRule() fiber.Handler {
	return body[model.EditBaggageRuleInput]()
}

func CreateClassBaggagePolicy() fiber.Handler {
	return body[model.CreateClassBaggagePolicyInput]()
}

func EditClassBaggagePolicy() fiber.Handler {
	return body[model.EditClassBaggagePolicyInput]()
}
