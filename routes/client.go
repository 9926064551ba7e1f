package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clientsbook/clientsbook-api/controllers"
	"github.com/clientsbook/clientsbook-api/middleware"
)

// SetupClientRoutes configures client base management routes
func SetupClientRoutes(app *fiber.App) {
	clients := app.Group("/clients", middleware.Protected())
	clients.Get("/", controllers.GetAllClients)
	clients.Get("/:id", controllers.GetClient)
	clients.Post("/", controllers.CreateClient)
	clients.Patch("/:id", controllers.UpdateClient)
	clients.Delete("/:id", controllers.DeleteClient)
}
