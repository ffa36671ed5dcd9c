package handlers

import (
	"github.com/gofiber/fiber/v2"

	"rifapix/internal/services/pricing"
)

// RaffleHandler serves the pricing configuration the form client renders,
// so the browser never has to hard-code the ticket price.
type RaffleHandler struct {
	pricingService *pricing.Service
}

func NewRaffleHandler(priceSvc *pricing.Service) *RaffleHandler {
	return &RaffleHandler{pricingService: priceSvc}
}

// GetRaffle returns the raffle pricing. With a tickets query parameter it
// returns a full quote for that count instead.
func (h *RaffleHandler) GetRaffle(c *fiber.Ctx) error {
	if n := c.QueryInt("tickets"); n > 0 {
		return c.JSON(h.pricingService.Quote(n))
	}

	return c.JSON(fiber.Map{
		"ticket_price": h.pricingService.UnitPrice(),
		"min_tickets":  pricing.MinTickets,
		"max_tickets":  pricing.MaxTickets,
		"currency":     "BRL",
	})
}
