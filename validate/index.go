package validate

import (
	"airline_manager/constants"
	"airline_manager/model"
	"airline_manager/utils"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func GetById(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil || valueKey <= 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		c.Locals("id", uint(valueKey))
		return c.Next()
	}
}

func Delete() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ArrayId

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}
		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		if len(input.IDs) == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Empty id list"})
		}

		c.Locals("deleteIds", input)
		return c.Next()
	}
}

// parseBody parses and validates one input struct and parks it for the
// handler. A nil input means the error response was already written.
func parseBody[T any](c *fiber.Ctx) (*T, error) {
	input := new(T)
	if err := c.BodyParser(input); err != nil {
		return nil, utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := validate.Struct(input); err != nil {
		return nil, utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
	}
	c.Locals("input", input)
	return input, nil
}

func body[T any]() fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := parseBody[T](c)
		if input == nil {
			return err
		}
		return c.Next()
	}
}
