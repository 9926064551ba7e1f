package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/stripe/stripe-go/v76"

	"github.com/clientsbook/clientsbook-api/controllers"
	"github.com/clientsbook/clientsbook-api/cron"
	"github.com/clientsbook/clientsbook-api/db"
	"github.com/clientsbook/clientsbook-api/redis"
	"github.com/clientsbook/clientsbook-api/routes"
)

func main() {
	app := fiber.New()
	db.Init()
	redis.InitRedis()
	controllers.InitScheduling()
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	routes.SetupAuthRoutes(app)
	routes.SetupScheduleRoutes(app)
	routes.SetupAvailabilityRoutes(app)
	routes.SetupAppointmentRoutes(app)
	routes.SetupClientRoutes(app)
	routes.SetupServiceRoutes(app)
	routes.SetupBookingRoutes(app)
	routes.SetupPremiumRoutes(app)

	cron.StartCronJobs()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Fatal(app.Listen(":" + port))
}
