package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clientsbook/clientsbook-api/controllers"
	"github.com/clientsbook/clientsbook-api/middleware"
)

// SetupPremiumRoutes configures premium subscription routes
func SetupPremiumRoutes(app *fiber.App) {
	premium := app.Group("/premium")
	premium.Post("/checkout", middleware.Protected(), controllers.CreatePremiumCheckout)
	premium.Get("/status", middleware.Protected(), controllers.GetPremiumStatus)

	// Stripe authenticates itself through the signature header.
	premium.Post("/webhook", controllers.PremiumWebhook)
}
