package handler

import (
	"airline_manager/constants"
	"airline_manager/database"
	"airline_manager/helper"
	"airline_manager/model"
	"airline_manager/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type routeRevenueRow struct {
	RouteCode   string  `json:"routeCode"`
	TicketsSold int64   `json:"ticketsSold"`
	Revenue     float64 `json:"revenue"`
}

type classRevenueRow struct {
	ClassName   string  `json:"className"`
	TicketsSold int64   `json:"ticketsSold"`
	Revenue     float64 `json:"revenue"`
}

// AirlineRevenue aggregates sold tickets per route and per class for one
// airline, optionally only counting sales since ?since=YYYY-MM-DD
func AirlineRevenue(c *fiber.Ctx) error {
	code := c.Params("code")
	claim, ok := helper.GetUserFromToken(c)
	if !ok {
		return nil
	}
	if !helper.RequireAirline(c, claim, code) {
		return nil
	}

	var since time.Time
	if raw := c.Query("since"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}
		since = parsed
	}
	sold := func() *gorm.DB {
		q := database.DB.Model(&model.Ticket{}).
			Joins("JOIN flights ON flights.id = tickets.id_flight").
			Joins("JOIN routes ON routes.code = flights.route_code").
			Where("routes.airline_iata_code = ?", code)
		if !since.IsZero() {
			q = q.Where("tickets.created_at >= ?", since)
		}
		return q
	}

	var rows []routeRevenueRow
	err := sold().
		Select("routes.code AS route_code, COUNT(tickets.id) AS tickets_sold, COALESCE(SUM(tickets.price), 0) AS revenue").
		Group("routes.code").
		Order("revenue DESC").
		Scan(&rows).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var classes []classRevenueRow
	err = sold().
		Select("class_seats.name AS class_name, COUNT(tickets.id) AS tickets_sold, COALESCE(SUM(tickets.price), 0) AS revenue").
		Joins("JOIN cells ON cells.id = tickets.id_seat").
		Joins("JOIN cabins ON cabins.id = cells.id_cabin").
		Joins("JOIN class_seats ON class_seats.id = cabins.id_class").
		Group("class_seats.name").
		Order("revenue DESC").
		Scan(&classes).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	total := 0.0
	for _, row := range rows {
		total += row.Revenue
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"routes":       rows,
		"classes":      classes,
		"totalRevenue": total,
	})
}

type flightOccupancyRow struct {
	IdFlight    uint   `json:"idFlight"`
	RouteCode   string `json:"routeCode"`
	TicketsSold int64  `json:"ticketsSold"`
}

// FlightOccupancy reports seats sold against seat map size per flight
func FlightOccupancy(c *fiber.Ctx) error {
	code := c.Params("code")
	claim, ok := helper.GetUserFromToken(c)
	if !ok {
		return nil
	}
	if !helper.RequireAirline(c, claim, code) {
		return nil
	}

	db := database.DB
	var rows []flightOccupancyRow
	err := db.Model(&model.Flight{}).
		Select("flights.id AS id_flight, flights.route_code, COUNT(tickets.id) AS tickets_sold").
		Joins("JOIN routes ON routes.code = flights.route_code").
		Joins("LEFT JOIN tickets ON tickets.id_flight = flights.id").
		Where("routes.airline_iata_code = ?", code).
		Group("flights.id, flights.route_code").
		Order("flights.id").
		Scan(&rows).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	type occupancy struct {
		flightOccupancyRow
		Capacity  int     `json:"capacity"`
		LoadRatio float64 `json:"loadRatio"`
	}
	result := make([]occupancy, 0, len(rows))
	for _, row := range rows {
		var flight model.Flight
		if err := db.First(&flight, row.IdFlight).Error; err != nil {
			continue
		}
		capacity, err := helper.SeatCount(db, flight.IdAircraft)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		entry := occupancy{flightOccupancyRow: row, Capacity: capacity}
		if capacity > 0 {
			entry.LoadRatio = float64(row.TicketsSold) / float64(capacity)
		}
		result = append(result, entry)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, result)
}
