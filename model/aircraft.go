package model

type Manufacturer struct {
	DTO
	Name string `gorm:"unique;not null" validate:"required" json:"name"`
}

// Aircraft is a manufacturer model (737-800, A320...), not a flying unit
type Aircraft struct {
	DTO
	IdManufacturer uint         `gorm:"not null" json:"idManufacturer"`
	Manufacturer   Manufacturer `gorm:"foreignKey:IdManufacturer" json:"manufacturer"`
	Name           string       `gorm:"not null" validate:"required" json:"name"`
	MaxSeats       int          `gorm:"not null" validate:"required,gt=0" json:"maxSeats"`
	CabinMaxCols   int          `gorm:"not null" validate:"required,gt=0" json:"cabinMaxCols"`
	CruiseSpeedKmh int          `gorm:"not null" json:"cruiseSpeedKmh"`
}

// AircraftAirline is a fleet unit: one aircraft model operated by one airline.
// Cabins (and therefore seats) attach here, not to the model.
type AircraftAirline struct {
	DTO
	AirlineCode     string   `gorm:"size:2;not null" json:"airlineCode"`
	Airline         Airline  `gorm:"foreignKey:AirlineCode" json:"-"`
	IdAircraftModel uint     `gorm:"not null" json:"idAircraftModel"`
	Aircraft        Aircraft `gorm:"foreignKey:IdAircraftModel" json:"aircraft"`

	Cabins []Cabin `gorm:"foreignKey:IdAircraft;constraint:OnDelete:CASCADE" json:"-"`
}

type AddFleetAircraftInput struct {
	AirlineCode     string `json:"airlineCode" validate:"required,len=2"`
	IdAircraftModel uint   `json:"idAircraftModel" validate:"required,gt=0"`
}

type CreateAircraftInput struct {
	IdManufacturer uint   `json:"idManufacturer" validate:"required,gt=0"`
	Name           string `json:"name" validate:"required"`
	MaxSeats       int    `json:"maxSeats" validate:"required,gt=0"`
	CabinMaxCols   int    `json:"cabinMaxCols" validate:"required,gt=0"`
	CruiseSpeedKmh int    `json:"cruiseSpeedKmh" validate:"required,gt=0"`
}
