package userRoutes

import (
	userController "shata-admin/controllers/user"
	"shata-admin/middleware"
	userValidator "shata-admin/validators/user"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/users")

	userGroup.Get("/", userValidator.List(), middleware.JWTMiddleware, userController.UserList)
}
