package router

import (
	"airline_manager/handler"
	"airline_manager/middleware"
	"airline_manager/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/register", validate.Register(), handler.Register)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Post("/logout", middleware.Protected(), handler.Logout)

	user := v1.Group("/user", logger.New())
	user.Get("/me", middleware.Protected(), handler.Me)
	user.Get("/tickets", middleware.Protected(), handler.MyTickets)

	airport := v1.Group("/airport", logger.New())
	airport.Get("/", handler.GetAllAirports)
	airport.Get("/countries", handler.GetAllCountries)
	airport.Get("/countries/:countryId/cities", validate.GetById("countryId"), handler.GetCitiesByCountry)
	airport.Get("/:code", handler.GetAirportByCode)
	airport.Post("/", middleware.Protected(), validate.CreateAirport(), handler.CreateAirport)
	airport.Put("/:code", middleware.Protected(), validate.EditAirport(), handler.EditAirport)

	airline := v1.Group("/airline", logger.New())
	airline.Get("/", handler.GetAllAirlines)
	airline.Get("/:code", handler.GetAirlineByCode)
	airline.Post("/", middleware.Protected(), validate.CreateAirline(), handler.CreateAirline)
	airline.Post("/:code/logo", middleware.Protected(), handler.UploadAirlineLogo)
	airline.Get("/:code/fleet", handler.GetFleet)
	airline.Post("/fleet", middleware.Protected(), validate.AddFleetAircraft(), handler.AddFleetAircraft)
	airline.Delete("/fleet/:aircraftId", middleware.Protected(), validate.GetById("aircraftId"), handler.DeleteFleetAircraft)
	airline.Delete("/:code/fleet", middleware.Protected(), validate.Delete(), handler.DeleteFleetAircraftBulk)

	airline.Get("/:code/price-policy", handler.GetPricePolicy)
	airline.Post("/price-policy", middleware.Protected(), validate.CreatePricePolicy(), handler.CreatePricePolicy)
	airline.Put("/:code/price-policy", middleware.Protected(), validate.EditPricePolicy(), handler.EditPricePolicy)
	airline.Get("/:code/class-price-policy", handler.GetClassPricePolicies)
	airline.Post("/class-price-policy", middleware.Protected(), validate.CreateClassPricePolicy(), handler.CreateClassPricePolicy)
	airline.Put("/class-price-policy/:policyId", middleware.Protected(), validate.GetById("policyId"), validate.EditClassPricePolicy(), handler.EditClassPricePolicy)

	airline.Get("/:code/baggage-rules", handler.GetBaggageRules)
	airline.Post("/baggage-rules", middleware.Protected(), validate.CreateBaggageRule(), handler.CreateBaggageRule)
	airline.Put("/baggage-rules", middleware.Protected(), validate.EditBaggageRule(), handler.EditBaggageRule)
	airline.Get("/:code/class-baggage-policy", handler.GetClassBaggagePolicies)
	airline.Post("/class-baggage-policy", middleware.Protected(), validate.CreateClassBaggagePolicy(), handler.CreateClassBaggagePolicy)
	airline.Put("/class-baggage-policy", middleware.Protected(), validate.EditClassBaggagePolicy(), handler.EditClassBaggagePolicy)

	airline.Get("/:code/revenue", middleware.Protected(), handler.AirlineRevenue)
	airline.Get("/:code/occupancy", middleware.Protected(), handler.FlightOccupancy)
	airline.Get("/:code/routes", handler.GetRoutesByAirline)

	baggage := v1.Group("/baggage", logger.New())
	baggage.Get("/", handler.GetAllBaggageTypes)

	aircraft := v1.Group("/aircraft", logger.New())
	aircraft.Get("/models", handler.GetAllAircraftModels)
	aircraft.Post("/models", middleware.Protected(), validate.CreateAircraftModel(), handler.CreateAircraftModel)
	aircraft.Get("/:aircraftId/seat-map", validate.GetById("aircraftId"), handler.GetSeatMap)
	aircraft.Post("/seat-block", middleware.Protected(), validate.InsertSeatBlock(), handler.InsertSeatBlock)
	aircraft.Post("/clone-seat-map", middleware.Protected(), validate.CloneSeatMap(), handler.CloneSeatMap)

	route := v1.Group("/route", logger.New())
	route.Post("/", middleware.Protected(), validate.CreateRoute(), handler.CreateRoute)
	route.Get("/:routeCode", handler.DescribeRoute)
	route.Get("/:routeCode/flights", handler.GetFlightsByRoute)
	route.Patch("/:routeCode/deadline", middleware.Protected(), validate.ChangeDeadline(), handler.ChangeDeadline)
	route.Patch("/:routeCode/base-price", middleware.Protected(), validate.ChangeBasePrice(), handler.ChangeBasePrice)

	flight := v1.Group("/flight", logger.New())
	flight.Post("/schedule", middleware.Protected(), validate.ScheduleFlights(), handler.ScheduleFlights)
	flight.Post("/search", validate.SearchFlights(), handler.SearchFlights)
	flight.Get("/:flightId/seats", validate.GetById("flightId"), handler.GetFlightSeats)
	flight.Use("/:id/seats/live", handler.WebsocketUpgrade)
	flight.Get("/:id/seats/live", handler.FlightSeatsWS)

	booking := v1.Group("/booking", logger.New())
	booking.Post("/", middleware.Protected(), validate.BookTickets(), handler.BookTickets)
	booking.Get("/ticket/:ticketCode", middleware.Protected(), handler.GetTicketByCode)
}
