package bookingRoutes

import (
	bookingController "shata-admin/controllers/booking"
	"shata-admin/middleware"
	bookingValidator "shata-admin/validators/booking"

	"github.com/gofiber/fiber/v2"
)

func SetupBookingRoutes(app *fiber.App) {
	bookingGroup := app.Group("/bookings")

	bookingGroup.Get("/", bookingValidator.List(), middleware.JWTMiddleware, bookingController.BookingList)
	bookingGroup.Get("/summary", middleware.JWTMiddleware, bookingController.Summary)
	bookingGroup.Get("/:id", middleware.JWTMiddleware, bookingController.BookingDetails)
}
