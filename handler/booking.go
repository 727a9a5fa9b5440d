package handler

import (
	"airline_manager/constants"
	"airline_manager/database"
	"airline_manager/helper"
	"airline_manager/model"
	"airline_manager/utils"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// seatEvent is the payload published on the flight channel when seats
// get sold, so open seat maps refresh live
type seatEvent struct {
	IdFlight uint   `json:"idFlight"`
	IdSeats  []uint `json:"idSeats"`
}

func publishSeatsSold(tickets []model.PassengerTicket) {
	if database.Redis == nil {
		return
	}
	byFlight := map[uint][]uint{}
	for _, link := range tickets {
		byFlight[link.Ticket.IdFlight] = append(byFlight[link.Ticket.IdFlight], link.Ticket.IdSeat)
	}
	ctx := context.Background()
	for idFlight, seats := range byFlight {
		payload, err := json.Marshal(seatEvent{IdFlight: idFlight, IdSeats: seats})
		if err != nil {
			continue
		}
		channel := fmt.Sprintf("flight:%d:seats", idFlight)
		if err := database.Redis.Publish(ctx, channel, payload).Err(); err != nil {
			log.Printf("Redis publish failed on %s: %v", channel, err)
		}
	}
}

// BookTickets sells the whole request atomically, then hands out QR
// codes and fires the confirmation email
func BookTickets(c *fiber.Ctx) error {
	input := c.Locals("input").(*model.BookInput)
	claim, ok := helper.GetUserFromToken(c)
	if !ok {
		return nil
	}

	booked, err := helper.BookTickets(database.DB, claim.UserId, *input)
	if err != nil {
		switch {
		case errors.Is(err, helper.ErrSeatUnavailable):
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.SEAT_ALREADY_OCCUPIED, err)
		case errors.Is(err, helper.ErrNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.FLIGHT_NOT_FOUND, err)
		case errors.Is(err, helper.ErrPolicyMissing):
			return utils.ErrorResponse(c, fiber.StatusPreconditionFailed, constants.BAGGAGE_RULE_NOT_FOUND, err)
		case errors.Is(err, helper.ErrValidation):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		default:
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}

	publishSeatsSold(booked)

	type bookedTicket struct {
		model.PassengerTicket
		QrCode string `json:"qrCode"`
	}
	rows := make([]bookedTicket, 0, len(booked))
	total := 0.0
	codes := make([]string, 0, len(booked))
	passengers := make([]string, 0, len(booked))
	for _, link := range booked {
		qr, err := utils.GenerateQRCode(link.Ticket.TicketCode, 256)
		if err != nil {
			log.Printf("QR generation failed for %s: %v", link.Ticket.TicketCode, err)
		}
		rows = append(rows, bookedTicket{
			PassengerTicket: link,
			QrCode:          base64.StdEncoding.EncodeToString(qr),
		})
		total += link.Ticket.Price
		codes = append(codes, link.Ticket.TicketCode)
		passengers = append(passengers, link.Passenger.Name+" "+link.Passenger.Lastname)
	}

	utils.SendPurchaseConfirmationEmail(claim.Email, utils.PurchaseConfirmationData{
		TicketCodes: codes,
		Passengers:  strings.Join(passengers, ", "),
		TotalAmount: total,
	})

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"message": constants.PURCHASE_SUCCESS,
		"tickets": rows,
		"total":   total,
	})
}

// GetTicketByCode is the check-in lookup behind the QR code
func GetTicketByCode(c *fiber.Ctx) error {
	code := c.Params("ticketCode")
	db := database.DB

	var ticket model.Ticket
	err := db.Preload("AdditionalBaggage").Preload("Flight.Route").
		First(&ticket, "ticket_code = ?", code).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_NOT_FOUND, err)
	}

	var link model.PassengerTicket
	if err := db.Preload("Passenger").First(&link, "id_ticket = ?", ticket.ID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"ticket":    ticket,
		"passenger": link.Passenger,
	})
}
