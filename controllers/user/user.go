package userController

import (
	"time"

	"shata-admin/database"
	"shata-admin/middleware"
	"shata-admin/models"
	userValidator "shata-admin/validators/user"
	"shata-admin/verification"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

// eventGroups splits confirmed bookings by where the event date falls
// relative to today.
type eventGroups struct {
	Upcoming  []models.Booking `json:"upcoming"`
	Ongoing   []models.Booking `json:"ongoing"`
	Completed []models.Booking `json:"completed"`
}

// groupConfirmedBookings buckets confirmed bookings into upcoming, ongoing
// (event day is today) and completed.
func groupConfirmedBookings(bookings []models.Booking, today time.Time) eventGroups {
	day := now.New(today).BeginningOfDay()
	groups := eventGroups{
		Upcoming:  []models.Booking{},
		Ongoing:   []models.Booking{},
		Completed: []models.Booking{},
	}
	for _, b := range bookings {
		if b.EventDate.IsZero() {
			groups.Completed = append(groups.Completed, b)
			continue
		}
		eventDay := now.New(b.EventDate).BeginningOfDay()
		switch {
		case eventDay.After(day):
			groups.Upcoming = append(groups.Upcoming, b)
		case eventDay.Equal(day):
			groups.Ongoing = append(groups.Ongoing, b)
		default:
			groups.Completed = append(groups.Completed, b)
		}
	}
	return groups
}

type userView struct {
	User      models.User      `json:"user"`
	Pending   []models.Booking `json:"pending"`
	Visited   []models.Booking `json:"visited"`
	Confirmed eventGroups      `json:"confirmed"`
	Cancelled []models.Booking `json:"cancelled"`
}

// UserList returns end customers matching the search query, each with their
// bookings grouped by status.
func UserList(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validateUserList").(*userValidator.ListRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var users []models.User
	if err := db.Order("created_at desc").Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch user list!", nil)
	}

	matched := make([]models.User, 0, len(users))
	for _, u := range users {
		if verification.MatchesQuery(reqData.Search, u.FullName, u.Email, u.Phone) {
			matched = append(matched, u)
		}
	}

	total := len(matched)
	offset := (*reqData.Page - 1) * (*reqData.Limit)
	if offset > total {
		offset = total
	}
	end := offset + *reqData.Limit
	if end > total {
		end = total
	}
	matched = matched[offset:end]

	today := time.Now()
	views := make([]userView, 0, len(matched))
	for _, u := range matched {
		var bookings []models.Booking
		if err := db.Where("user_id = ?", u.ID).Find(&bookings).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch bookings!", nil)
		}

		view := userView{
			User:      u,
			Pending:   []models.Booking{},
			Visited:   []models.Booking{},
			Cancelled: []models.Booking{},
		}
		var confirmed []models.Booking
		for _, b := range bookings {
			switch b.Status {
			case models.BookingPending:
				view.Pending = append(view.Pending, b)
			case models.BookingVisited:
				view.Visited = append(view.Visited, b)
			case models.BookingConfirmed:
				confirmed = append(confirmed, b)
			case models.BookingCancelled:
				view.Cancelled = append(view.Cancelled, b)
			}
		}
		view.Confirmed = groupConfirmedBookings(confirmed, today)
		views = append(views, view)
	}

	response := map[string]interface{}{
		"users": views,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  *reqData.Page,
			"limit": *reqData.Limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User List.", response)
}
