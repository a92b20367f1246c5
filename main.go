package main

import (
	"shata-admin/config"
	"shata-admin/database"
	authRoutes "shata-admin/routers/authRoutes"
	bookingRoutes "shata-admin/routers/bookingRoutes"
	partnerRoutes "shata-admin/routers/partnerRoutes"
	superAdminRoutes "shata-admin/routers/superAdminRoutes"
	userRoutes "shata-admin/routers/userRoutes"
	"shata-admin/utils"

	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	utils.StartVerificationDigest()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	partnerRoutes.SetupPartnerRoutes(app)
	bookingRoutes.SetupBookingRoutes(app)
	userRoutes.SetupUserRoutes(app)
	superAdminRoutes.SetupSuperAdminRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
