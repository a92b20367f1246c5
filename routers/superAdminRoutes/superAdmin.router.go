package superAdminRoutes

import (
	superAdminController "shata-admin/controllers/superAdmin"
	"shata-admin/middleware"
	authValidator "shata-admin/validators/auth"
	userValidator "shata-admin/validators/user"

	"github.com/gofiber/fiber/v2"
)

func SetupSuperAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin")

	adminGroup.Post("/register-operator", authValidator.RegisterOperator(), middleware.JWTMiddleware, middleware.RequireRole("SUPER-ADMIN"), superAdminController.RegisterOperator)
	adminGroup.Get("/operator/list", userValidator.List(), middleware.JWTMiddleware, middleware.RequireRole("SUPER-ADMIN"), superAdminController.OperatorList)
}
