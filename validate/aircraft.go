package validate

import (
	"airline_manager/model"
	"airline_manager/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
)

func CreateAircraftModel() fiber.Handler {
	return body[model.CreateAircraftInput]()
}

// InsertSeatBlock checks the seat matrix is rectangular before the
// handler touches the database
func InsertSeatBlock() fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := parseBody[model.InsertBlockInput](c)
		if input == nil {
			return err
		}

		cols := len(input.Matrix[0])
		if cols == 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Seat matrix rows cannot be empty", errors.New("empty row"))
		}
		for _, row := range input.Matrix {
			if len(row) != cols {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, "Seat matrix must be rectangular", errors.New("ragged matrix"))
			}
		}
		return c.Next()
	}
}

func CloneSeatMap() fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := parseBody[model.CloneSeatMapInput](c)
		if input == nil {
			return err
		}

		if input.SourceId == input.TargetId {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Source and target aircraft must differ", errors.New("same aircraft"))
		}
		return c.Next()
	}
}
