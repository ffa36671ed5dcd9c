// Package routes defines the API routing configuration.
package routes

import (
	"github.com/gofiber/fiber/v2"

	"rifapix/internal/handlers"
)

// SetupRoutes registers all application routes.
func SetupRoutes(app *fiber.App, paymentHandler *handlers.PaymentHandler, raffleHandler *handlers.RaffleHandler) {
	// health check at the root
	app.Get("/health", handlers.HealthCheck)

	// payment proxy: the POST creates the PIX charge, the GET is the
	// reachability ack the storefront checks before rendering the form
	app.Post("/payment", paymentHandler.CreatePixPayment)
	app.Get("/payment", paymentHandler.Ping)

	// raffle pricing for the form client
	app.Get("/raffle", raffleHandler.GetRaffle)
}
