package model

import "time"

// Ticket is one sold seat on one flight. The composite unique index is
// the storage-level guarantee that a seat cannot be sold twice on the
// same flight, whatever two concurrent requests believe they saw.
type Ticket struct {
	DTO
	IdFlight   uint    `gorm:"not null;uniqueIndex:uq_flight_seat" json:"idFlight"`
	Flight     Flight  `gorm:"foreignKey:IdFlight" json:"-"`
	IdSeat     uint    `gorm:"not null;uniqueIndex:uq_flight_seat" json:"idSeat"`
	Seat       Cell    `gorm:"foreignKey:IdSeat" json:"-"`
	TicketCode string  `gorm:"size:20;uniqueIndex" json:"ticketCode"`
	Price      float64 `gorm:"not null" json:"price"`

	AdditionalBaggage []AdditionalBaggage `gorm:"foreignKey:IdTicket;constraint:OnDelete:CASCADE" json:"additionalBaggage"`
}

type AdditionalBaggage struct {
	IdTicket  uint      `gorm:"primaryKey" json:"idTicket"`
	Ticket    Ticket    `gorm:"foreignKey:IdTicket" json:"-"`
	IdBaggage uint      `gorm:"primaryKey" json:"idBaggage"`
	Baggage   Baggage   `gorm:"foreignKey:IdBaggage" json:"-"`
	Count     int       `gorm:"not null" json:"count"`
	CreatedAt time.Time `json:"createdAt"`
}

type Passenger struct {
	DTO
	Name           string    `gorm:"not null" json:"name"`
	Lastname       string    `gorm:"not null" json:"lastname"`
	DateBirth      time.Time `gorm:"not null" json:"dateBirth"`
	PhoneNumber    string    `gorm:"not null" json:"phoneNumber"`
	Email          string    `gorm:"not null;index" json:"email"`
	PassportNumber string    `gorm:"not null" json:"passportNumber"`
	Sex            string    `gorm:"not null" json:"sex"`
}

// PassengerTicket links the buyer account, the ticket and the person flying
type PassengerTicket struct {
	DTO
	IdBuyer     uint      `gorm:"not null" json:"idBuyer"`
	Buyer       User      `gorm:"foreignKey:IdBuyer" json:"-"`
	IdTicket    uint      `gorm:"not null" json:"idTicket"`
	Ticket      Ticket    `gorm:"foreignKey:IdTicket;constraint:OnDelete:CASCADE" json:"ticket"`
	IdPassenger uint      `gorm:"not null" json:"idPassenger"`
	Passenger   Passenger `gorm:"foreignKey:IdPassenger" json:"passenger"`
}

type BaggageSelectionInput struct {
	IdBaggage uint `json:"idBaggage" validate:"required,gt=0"`
	Count     int  `json:"count" validate:"required,gt=0"`
}

type TicketInfoInput struct {
	IdFlight          uint                    `json:"idFlight" validate:"required,gt=0"`
	IdSeat            uint                    `json:"idSeat" validate:"required,gt=0"`
	AdditionalBaggage []BaggageSelectionInput `json:"additionalBaggage" validate:"dive"`
}

type PassengerInfoInput struct {
	Name           string    `json:"name" validate:"required"`
	Lastname       string    `json:"lastname" validate:"required"`
	DateBirth      time.Time `json:"dateBirth" validate:"required"`
	PhoneNumber    string    `json:"phoneNumber" validate:"required"`
	Email          string    `json:"email" validate:"required,email"`
	PassportNumber string    `json:"passportNumber" validate:"required"`
	Sex            string    `json:"sex" validate:"required,oneof=M F X"`
}

type TicketRequestInput struct {
	TicketInfo    TicketInfoInput    `json:"ticketInfo" validate:"required"`
	PassengerInfo PassengerInfoInput `json:"passengerInfo" validate:"required"`
}

type BookInput struct {
	Tickets []TicketRequestInput `json:"tickets" validate:"required,min=1,dive"`
}
