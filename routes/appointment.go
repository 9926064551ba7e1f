package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clientsbook/clientsbook-api/controllers"
	"github.com/clientsbook/clientsbook-api/middleware"
)

// SetupAppointmentRoutes configures all appointment related routes
func SetupAppointmentRoutes(app *fiber.App) {
	appointment := app.Group("/appointments")
	// Booking itself is public: clients confirm slots through the booking
	// link flow without an account.
	appointment.Post("/", controllers.CreateAppointment)

	appointment.Get("/upcoming", middleware.Protected(), controllers.GetUpcomingAppointments)
	appointment.Patch("/:id/status", middleware.Protected(), controllers.UpdateAppointmentStatus)
	appointment.Delete("/:id", middleware.Protected(), controllers.DeleteAppointment)
}
