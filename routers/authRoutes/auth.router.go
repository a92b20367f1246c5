package authRoutes

import (
	authController "shata-admin/controllers/auth"
	"shata-admin/middleware"
	authValidator "shata-admin/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/login", authValidator.Login(), authController.Login)
	authGroup.Post("/override", authValidator.Override(), middleware.JWTMiddleware, authController.Override)
}
