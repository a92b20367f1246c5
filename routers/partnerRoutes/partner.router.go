package partnerRoutes

import (
	partnerController "shata-admin/controllers/partner"
	"shata-admin/middleware"
	partnerValidator "shata-admin/validators/partner"

	"github.com/gofiber/fiber/v2"
)

func SetupPartnerRoutes(app *fiber.App) {
	partnerGroup := app.Group("/partners")

	partnerGroup.Get("/", partnerValidator.List(), middleware.JWTMiddleware, partnerController.PartnerList)
	partnerGroup.Get("/:id", middleware.JWTMiddleware, partnerController.PartnerDetails)
	partnerGroup.Post("/:id/stages/:stage/decision", partnerValidator.Decision(), middleware.JWTMiddleware, partnerController.StageDecision)
}
