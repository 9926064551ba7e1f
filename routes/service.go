package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clientsbook/clientsbook-api/controllers"
	"github.com/clientsbook/clientsbook-api/middleware"
)

// SetupServiceRoutes configures service catalog routes
func SetupServiceRoutes(app *fiber.App) {
	services := app.Group("/services", middleware.Protected())
	services.Get("/", controllers.GetAllServices)
	services.Get("/:id", controllers.GetService)
	services.Post("/", controllers.CreateService)
	services.Patch("/:id", controllers.UpdateService)
	services.Delete("/:id", controllers.DeleteService)
}
