package model

import "time"

type Airline struct {
	IataCode  string    `gorm:"primaryKey;size:2" json:"iataCode"`
	Name      string    `gorm:"not null" validate:"required" json:"name"`
	LogoUrl   *string   `json:"logoUrl"`
	CreatedAt time.Time `json:"createdAt"`

	Fleet  []AircraftAirline `gorm:"foreignKey:AirlineCode;constraint:OnDelete:CASCADE" json:"-"`
	Routes []Route           `gorm:"foreignKey:AirlineIataCode;constraint:OnDelete:CASCADE" json:"-"`
}

type CreateAirlineInput struct {
	IataCode string `json:"iataCode" validate:"required,len=2,alphanum,uppercase"`
	Name     string `json:"name" validate:"required,min=1"`
}

// AirlinePricePolicy: per-airline tariff used once, at route creation
type AirlinePricePolicy struct {
	AirlineCode    string    `gorm:"primaryKey;size:2" json:"airlineCode"`
	FixedMarkup    int       `gorm:"not null" json:"fixedMarkup"`
	PriceForKm     float64   `gorm:"not null" json:"priceForKm"`
	FeeForStopover int       `gorm:"not null" json:"feeForStopover"`
	CreatedAt      time.Time `json:"createdAt"`

	Airline Airline `gorm:"foreignKey:AirlineCode" json:"-"`
}

type CreatePricePolicyInput struct {
	AirlineCode    string  `json:"airlineCode" validate:"required,len=2"`
	FixedMarkup    int     `json:"fixedMarkup" validate:"required"`
	PriceForKm     float64 `json:"priceForKm" validate:"required,gt=0"`
	FeeForStopover int     `json:"feeForStopover"`
}

type EditPricePolicyInput struct {
	FixedMarkup    *int     `json:"fixedMarkup"`
	PriceForKm     *float64 `json:"priceForKm" validate:"omitempty,gt=0"`
	FeeForStopover *int     `json:"feeForStopover"`
}

// ClassPricePolicy: per (airline, class) multiplier applied at booking/search time
type ClassPricePolicy struct {
	DTO
	IdClass         uint    `gorm:"not null;uniqueIndex:uq_class_airline" json:"idClass"`
	AirlineCode     string  `gorm:"size:2;not null;uniqueIndex:uq_class_airline" json:"airlineCode"`
	PriceMultiplier float64 `gorm:"not null" json:"priceMultiplier"`
	FixedMarkup     float64 `gorm:"not null" json:"fixedMarkup"`

	ClassSeat ClassSeat `gorm:"foreignKey:IdClass" json:"-"`
	Airline   Airline   `gorm:"foreignKey:AirlineCode" json:"-"`
}

type CreateClassPricePolicyInput struct {
	IdClass         uint    `json:"idClass" validate:"required,gt=0"`
	AirlineCode     string  `json:"airlineCode" validate:"required,len=2"`
	PriceMultiplier float64 `json:"priceMultiplier" validate:"required,gt=0"`
	FixedMarkup     float64 `json:"fixedMarkup"`
}

type EditClassPricePolicyInput struct {
	PriceMultiplier *float64 `json:"priceMultiplier" validate:"omitempty,gt=0"`
	FixedMarkup     *float64 `json:"fixedMarkup"`
}
