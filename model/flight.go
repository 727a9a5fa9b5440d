package model

import "time"

type Flight struct {
	DTO
	IdAircraft            uint            `gorm:"not null" json:"idAircraft"`
	Aircraft              AircraftAirline `gorm:"foreignKey:IdAircraft" json:"-"`
	RouteCode             string          `gorm:"size:6;not null" json:"routeCode"`
	Route                 Route           `gorm:"foreignKey:RouteCode" json:"-"`
	ScheduledDepartureDay time.Time       `gorm:"not null" json:"scheduledDepartureDay"`
	ScheduledArrivalDay   time.Time       `gorm:"not null" json:"scheduledArrivalDay"`
	Status                string          `gorm:"not null;default:'SCHEDULED'" json:"status"`

	Tickets []Ticket `gorm:"foreignKey:IdFlight;constraint:OnDelete:CASCADE" json:"-"`
}

type FlightDates struct {
	Outbound time.Time `json:"outbound" validate:"required"`
	Return   time.Time `json:"return" validate:"required"`
}

type ScheduleFlightsInput struct {
	AirlineCode string        `json:"airlineCode" validate:"required,len=2"`
	RouteCode   string        `json:"routeCode" validate:"required"`
	AircraftId  uint          `json:"aircraftId" validate:"required,gt=0"`
	Schedule    []FlightDates `json:"schedule" validate:"required,min=1,dive"`
}

type FlightSearchInput struct {
	DepartureAirport      string     `json:"departureAirport" validate:"required,len=3"`
	ArrivalAirport        string     `json:"arrivalAirport" validate:"required,len=3"`
	RoundTripFlight       bool       `json:"roundTripFlight"`
	DirectFlights         bool       `json:"directFlights"`
	DepartureDateOutbound time.Time  `json:"departureDateOutbound" validate:"required"`
	DepartureDateReturn   *time.Time `json:"departureDateReturn"`
	IdClass               uint       `json:"idClass" validate:"required,gt=0"`
}

// FlightSearchResult is one priced search hit
type FlightSearchResult struct {
	IdFlight              uint      `json:"idFlight"`
	IdAircraft            uint      `json:"idAircraft"`
	RouteCode             string    `json:"routeCode"`
	BasePrice             int       `json:"basePrice"`
	FlightPrice           float64   `json:"flightPrice"`
	AirlineIataCode       string    `json:"airlineIataCode"`
	AirlineName           string    `json:"airlineName"`
	ScheduledDepartureDay time.Time `json:"scheduledDepartureDay"`
	ScheduledArrivalDay   time.Time `json:"scheduledArrivalDay"`
}

// FlightSeatBlock groups the already sold seats of a flight per cabin
type FlightSeatBlock struct {
	IdCabin       uint          `json:"idCabin"`
	IdClass       *uint         `json:"idClass"`
	OccupiedSeats int           `json:"occupiedSeats"`
	Seats         []SeatMapCell `json:"seats"`
}
