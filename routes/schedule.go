package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clientsbook/clientsbook-api/controllers"
	"github.com/clientsbook/clientsbook-api/middleware"
)

// SetupScheduleRoutes configures working slot management routes
func SetupScheduleRoutes(app *fiber.App) {
	schedule := app.Group("/schedule", middleware.Protected())
	schedule.Get("/week", controllers.GetWeekSchedule)
	schedule.Get("/day", controllers.GetDaySchedule)
	schedule.Post("/", controllers.CreateWorkingSlot)
	schedule.Delete("/:id", controllers.DeleteWorkingSlot)
}
