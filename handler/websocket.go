package handler

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"airline_manager/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// WebsocketUpgrade gates the route so only websocket requests reach the
// handler
func WebsocketUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// FlightSeatsWS streams seat-sold events for one flight. Every booking
// publishes on the flight channel; subscribers holding the seat map open
// see seats grey out without polling.
var FlightSeatsWS = websocket.New(func(conn *websocket.Conn) {
	idFlight, err := strconv.ParseUint(conn.Params("id"), 10, 64)
	if err != nil {
		_ = conn.WriteJSON(fiber.Map{"error": "invalid flight id"})
		conn.Close()
		return
	}
	if database.Redis == nil {
		_ = conn.WriteJSON(fiber.Map{"error": "live updates unavailable"})
		conn.Close()
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	channel := fmt.Sprintf("flight:%d:seats", idFlight)
	pubsub := database.Redis.Subscribe(ctx, channel)
	defer pubsub.Close()

	// đóng subscription khi client ngắt kết nối; Close làm Channel()
	// kết thúc ngay thay vì chờ message kế tiếp
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				cancel()
				pubsub.Close()
				return
			}
		}
	}()

	for message := range pubsub.Channel() {
		err := conn.WriteMessage(websocket.TextMessage, []byte(message.Payload))
		if err != nil {
			log.Printf("Websocket write failed for flight %d: %v", idFlight, err)
			return
		}
	}
})
