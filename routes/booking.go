package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clientsbook/clientsbook-api/controllers"
	"github.com/clientsbook/clientsbook-api/middleware"
)

// SetupBookingRoutes configures booking link routes
func SetupBookingRoutes(app *fiber.App) {
	link := app.Group("/booking-link", middleware.Protected())
	link.Get("/", controllers.GetBookingLink)
	link.Post("/", controllers.CreateBookingLink)

	// Public entry point for clients following a master's link.
	app.Get("/book/:code", controllers.ResolveBookingLink)
}
