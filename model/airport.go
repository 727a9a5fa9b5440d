package model

import "time"

type Country struct {
	DTO
	Name string `gorm:"unique;not null" json:"name"`
}

type City struct {
	DTO
	Name      string  `gorm:"not null" validate:"required" json:"name"`
	IdCountry uint    `json:"idCountry"`
	Country   Country `gorm:"foreignKey:IdCountry" json:"country"`
}

type Airport struct {
	IataCode  string    `gorm:"primaryKey;size:3" json:"iataCode"`
	IdCity    uint      `json:"idCity"`
	City      City      `gorm:"foreignKey:IdCity" json:"city"`
	Name      string    `gorm:"not null" validate:"required" json:"name"`
	Latitude  float64   `gorm:"not null" json:"latitude"`
	Longitude float64   `json:"longitude"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateAirportInput struct {
	IataCode  string  `json:"iataCode" validate:"required,len=3,uppercase,alpha"`
	IdCity    uint    `json:"idCity" validate:"required,gt=0"`
	Name      string  `json:"name" validate:"required"`
	Latitude  float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

type EditAirportInput struct {
	IdCity    *uint    `json:"idCity"`
	Name      *string  `json:"name"`
	Latitude  *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
}
