package bookingController

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"shata-admin/database"
	"shata-admin/middleware"
	"shata-admin/models"
	bookingValidator "shata-admin/validators/booking"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

// bookingWindow resolves a named date filter into an inclusive event-date
// range anchored on today. Returns ok=false for "all" (no restriction).
func bookingWindow(filter string, today time.Time) (time.Time, time.Time, bool) {
	day := now.New(today)
	switch filter {
	case "thisWeek":
		return day.BeginningOfDay(), day.BeginningOfDay().AddDate(0, 0, 7), true
	case "nextWeek":
		return day.BeginningOfDay().AddDate(0, 0, 7), day.BeginningOfDay().AddDate(0, 0, 14), true
	case "thisMonth":
		return day.BeginningOfDay(), day.BeginningOfDay().AddDate(0, 1, 0), true
	case "nextMonth":
		start := day.BeginningOfDay().AddDate(0, 1, 0)
		return start, start.AddDate(0, 1, 0), true
	}
	return time.Time{}, time.Time{}, false
}

// hasService reports whether a booking's JSON services list contains the
// requested service, case-insensitively.
func hasService(b *models.Booking, service string) bool {
	if service == "" {
		return true
	}
	var services []string
	if err := json.Unmarshal(b.Services, &services); err != nil {
		return false
	}
	for _, s := range services {
		if strings.EqualFold(s, service) {
			return true
		}
	}
	return false
}

// BookingList returns bookings filtered by event-date window, service and
// planner, sorted by event date.
func BookingList(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validateBookingList").(*bookingValidator.ListRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db.Model(&models.Booking{})

	if from, to, bounded := bookingWindow(reqData.DateFilter, time.Now()); bounded {
		db = db.Where("event_date >= ? AND event_date < ?", from, to)
	}
	if reqData.Planner != "" {
		db = db.Where("partner_name = ?", reqData.Planner)
	}

	order := "event_date desc"
	if reqData.Sort == "oldest" {
		order = "event_date asc"
	}

	var bookings []models.Booking
	if err := db.Order(order).Find(&bookings).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch booking list!", nil)
	}

	// Services live in a JSON column; filter after the fetch.
	if reqData.Service != "" {
		filtered := bookings[:0]
		for i := range bookings {
			if hasService(&bookings[i], reqData.Service) {
				filtered = append(filtered, bookings[i])
			}
		}
		bookings = filtered
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Booking List.", bookings)
}

// BookingDetails returns one booking together with its customer.
func BookingDetails(c *fiber.Ctx) error {
	bookingID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid booking id!", nil)
	}

	var booking models.Booking
	if err := database.Database.Db.First(&booking, uint(bookingID)).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Booking not found!", nil)
	}

	var user models.User
	database.Database.Db.First(&user, booking.UserID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Booking details.", fiber.Map{
		"booking": booking,
		"client":  user,
	})
}

// Summary backs the dashboard tiles: total customers plus booking counts per
// status.
func Summary(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalUsers, booked, confirmed, cancelled int64

	if err := db.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch summary!", nil)
	}
	db.Model(&models.Booking{}).Where("status = ?", models.BookingPending).Count(&booked)
	db.Model(&models.Booking{}).Where("status = ?", models.BookingConfirmed).Count(&confirmed)
	db.Model(&models.Booking{}).Where("status = ?", models.BookingCancelled).Count(&cancelled)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Summary.", fiber.Map{
		"totalUsers":      totalUsers,
		"bookedEvents":    booked,
		"confirmedEvents": confirmed,
		"cancelledEvents": cancelled,
	})
}
