package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clientsbook/clientsbook-api/controllers"
)

// SetupAvailabilityRoutes configures the public availability query routes
func SetupAvailabilityRoutes(app *fiber.App) {
	availability := app.Group("/availability")
	availability.Get("/:providerID/dates", controllers.GetAvailableDates)
	availability.Get("/:providerID/slots", controllers.GetAvailableSlots)
}
