package helper

import (
	"errors"
	"fmt"
	"strings"

	"airline_manager/constants"
	"airline_manager/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func newTicketCode() string {
	return "TKT-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:16])
}

// BookTickets sells every requested seat or none of them. Seat ownership,
// availability, class pricing and baggage rules are all checked inside
// the transaction; the unique index on (flight, seat) catches whatever a
// concurrent buyer slipped past the recheck.
func BookTickets(db *gorm.DB, idBuyer uint, input model.BookInput) ([]model.PassengerTicket, error) {
	var booked []model.PassengerTicket

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, request := range input.Tickets {
			ticketInfo := request.TicketInfo

			var flight model.Flight
			err := tx.Preload("Route").First(&flight, ticketInfo.IdFlight).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("flight %d: %w", ticketInfo.IdFlight, ErrNotFound)
				}
				return err
			}
			if flight.Status != constants.FLIGHT_STATUS_SCHEDULED {
				return fmt.Errorf("flight %d is %s: %w", flight.ID, flight.Status, ErrValidation)
			}

			seatAircraft, err := AircraftBySeat(tx, ticketInfo.IdSeat)
			if err != nil {
				return err
			}
			if seatAircraft != flight.IdAircraft {
				return fmt.Errorf("seat %d is not on flight %d's aircraft: %w",
					ticketInfo.IdSeat, flight.ID, ErrValidation)
			}
			var seat model.Cell
			if err := tx.First(&seat, ticketInfo.IdSeat).Error; err != nil {
				return err
			}
			if !seat.IsSeat {
				return fmt.Errorf("cell %d is not a seat: %w", seat.ID, ErrValidation)
			}

			// covers both committed tickets and earlier ones in this batch
			var taken int64
			err = tx.Model(&model.Ticket{}).
				Where("id_flight = ? AND id_seat = ?", flight.ID, seat.ID).
				Count(&taken).Error
			if err != nil {
				return err
			}
			if taken > 0 {
				return fmt.Errorf("seat %d on flight %d: %w", seat.ID, flight.ID, ErrSeatUnavailable)
			}

			airlineCode := flight.Route.AirlineIataCode
			price := float64(flight.Route.BasePrice)
			idClass, err := ClassBySeat(tx, seat.ID)
			if err != nil {
				return err
			}
			if idClass != nil {
				policy, err := GetClassPricePolicy(tx, airlineCode, *idClass)
				if err != nil {
					return err
				}
				price = ClassAdjustedPrice(flight.Route.BasePrice, policy)
			}
			price, err = AddBaggageFees(tx, price, airlineCode, ticketInfo.AdditionalBaggage)
			if err != nil {
				return err
			}

			ticket := model.Ticket{
				IdFlight:   flight.ID,
				IdSeat:     seat.ID,
				TicketCode: newTicketCode(),
				Price:      price,
			}
			if err := tx.Create(&ticket).Error; err != nil {
				return err
			}

			for _, selection := range ticketInfo.AdditionalBaggage {
				extra := model.AdditionalBaggage{
					IdTicket:  ticket.ID,
					IdBaggage: selection.IdBaggage,
					Count:     selection.Count,
				}
				if err := tx.Create(&extra).Error; err != nil {
					return err
				}
			}

			passenger, err := findOrCreatePassenger(tx, request.PassengerInfo)
			if err != nil {
				return err
			}

			link := model.PassengerTicket{
				IdBuyer:     idBuyer,
				IdTicket:    ticket.ID,
				IdPassenger: passenger.ID,
			}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
			link.Ticket = ticket
			link.Passenger = *passenger
			booked = append(booked, link)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return booked, nil
}

// findOrCreatePassenger reuses the record matching the email so the same
// person does not pile up once per purchase
func findOrCreatePassenger(tx *gorm.DB, info model.PassengerInfoInput) (*model.Passenger, error) {
	var passenger model.Passenger
	err := tx.Where("email = ?", info.Email).First(&passenger).Error
	if err == nil {
		return &passenger, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	passenger = model.Passenger{
		Name:           info.Name,
		Lastname:       info.Lastname,
		DateBirth:      info.DateBirth,
		PhoneNumber:    info.PhoneNumber,
		Email:          info.Email,
		PassportNumber: info.PassportNumber,
		Sex:            info.Sex,
	}
	if err := tx.Create(&passenger).Error; err != nil {
		return nil, err
	}
	return &passenger, nil
}

// TicketsOfBuyer lists everything an account has purchased, newest first
func TicketsOfBuyer(db *gorm.DB, idBuyer uint) ([]model.PassengerTicket, error) {
	var links []model.PassengerTicket
	err := db.Preload("Ticket.AdditionalBaggage").
		Preload("Ticket.Flight.Route").
		Preload("Passenger").
		Where("id_buyer = ?", idBuyer).
		Order("id DESC").
		Find(&links).Error
	return links, err
}
