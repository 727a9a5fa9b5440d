package model

import "time"

// RouteSection is a directed airport pair, reused by every route that flies it.
// (A,B) and (B,A) are distinct sections.
type RouteSection struct {
	DTO
	CodeDepartureAirport string  `gorm:"size:3;not null;uniqueIndex:uq_section_pair" json:"codeDepartureAirport"`
	DepartureAirport     Airport `gorm:"foreignKey:CodeDepartureAirport" json:"-"`
	CodeArrivalAirport   string  `gorm:"size:3;not null;uniqueIndex:uq_section_pair" json:"codeArrivalAirport"`
	ArrivalAirport       Airport `gorm:"foreignKey:CodeArrivalAirport" json:"-"`
}

type Route struct {
	Code            string    `gorm:"primaryKey;size:6" json:"code"`
	AirlineIataCode string    `gorm:"size:2;not null" json:"airlineIataCode"`
	Airline         Airline   `gorm:"foreignKey:AirlineIataCode" json:"-"`
	BasePrice       int       `gorm:"not null" json:"basePrice"`
	StartDate       time.Time `gorm:"not null" json:"startDate"`
	EndDate         time.Time `gorm:"not null" json:"endDate"`
	IsOutbound      bool      `gorm:"not null" json:"isOutbound"`
	Status          string    `gorm:"not null;default:'ACTIVE'" json:"status"`
	CreatedAt       time.Time `json:"createdAt"`

	Details []RouteDetail `gorm:"foreignKey:CodeRoute;constraint:OnDelete:CASCADE" json:"-"`
	Flights []Flight      `gorm:"foreignKey:RouteCode;constraint:OnDelete:CASCADE" json:"-"`
}

// RouteDetail is one leg of a route. IdNext links the legs into a
// singly linked chain: exactly one head (never referenced) and one
// tail (IdNext null) per route.
type RouteDetail struct {
	DTO
	CodeRoute      string       `gorm:"size:6;not null" json:"codeRoute"`
	Route          Route        `gorm:"foreignKey:CodeRoute" json:"-"`
	IdRouteSection uint         `gorm:"not null" json:"idRouteSection"`
	Section        RouteSection `gorm:"foreignKey:IdRouteSection" json:"section"`
	IdNext         *uint        `json:"idNext"`
	DepartureTime  string       `gorm:"size:5;not null" json:"departureTime"` // "HH:MM" wall clock
	ArrivalTime    string       `gorm:"size:5;not null" json:"arrivalTime"`
}

// CreateRouteInput carries the recursively nested segment chain of the
// outbound direction. Only the first section has a departure time; every
// following one declares its layover in minutes instead.
type CreateRouteInput struct {
	AirlineCode         string            `json:"airlineCode" validate:"required,len=2"`
	NumberRoute         int               `json:"numberRoute" validate:"gte=0,lte=9999"`
	StartDate           time.Time         `json:"startDate" validate:"required"`
	EndDate             time.Time         `json:"endDate" validate:"required"`
	DeltaForReturnRoute int               `json:"deltaForReturnRoute" validate:"required,gte=120"`
	Section             FirstSectionInput `json:"section" validate:"required"`
}

type FirstSectionInput struct {
	DepartureAirport string            `json:"departureAirport" validate:"required,len=3"`
	ArrivalAirport   string            `json:"arrivalAirport" validate:"required,len=3"`
	DepartureTime    string            `json:"departureTime" validate:"required"` // "HH:MM"
	Next             *NextSectionInput `json:"next"`
}

type NextSectionInput struct {
	DepartureAirport string            `json:"departureAirport" validate:"required,len=3"`
	ArrivalAirport   string            `json:"arrivalAirport" validate:"required,len=3"`
	WaitingTime      int               `json:"waitingTime" validate:"required,gte=120"` // minutes
	Next             *NextSectionInput `json:"next"`
}

type ChangeDeadlineInput struct {
	AirlineCode string    `json:"airlineCode" validate:"required,len=2"`
	EndDate     time.Time `json:"endDate" validate:"required"`
}

type ChangeBasePriceInput struct {
	AirlineCode string `json:"airlineCode" validate:"required,len=2"`
	BasePrice   int    `json:"basePrice" validate:"required,gt=0"`
}

// RouteDescription is the walked, ordered view of a route chain
type RouteDescription struct {
	RouteCode     string     `json:"routeCode"`
	Segments      []RouteLeg `json:"segments"`
	TotalDuration string     `json:"totalDuration"` // H:MM, may exceed 24h
}

type RouteLeg struct {
	IdRouteDetail  uint   `json:"idRouteDetail"`
	From           string `json:"from"`
	To             string `json:"to"`
	DepartureTime  string `json:"departureTime"`
	ArrivalTime    string `json:"arrivalTime"`
	LayoverMinutes *int   `json:"layoverMinutes"`
}
