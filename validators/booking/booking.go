package bookingValidator

import (
	"shata-admin/middleware"

	"github.com/gofiber/fiber/v2"
)

var validDateFilters = map[string]bool{
	"all":       true,
	"thisWeek":  true,
	"nextWeek":  true,
	"thisMonth": true,
	"nextMonth": true,
}

type ListRequest struct {
	DateFilter string `query:"dateFilter"`
	Service    string `query:"service"`
	Planner    string `query:"planner"`
	Sort       string `query:"sort"`
}

func List() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ListRequest)
		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		if reqData.DateFilter == "" {
			reqData.DateFilter = "all"
		}
		if !validDateFilters[reqData.DateFilter] {
			errors["dateFilter"] = "Date filter must be one of all, thisWeek, nextWeek, thisMonth, nextMonth!"
		}

		if reqData.Sort == "" {
			reqData.Sort = "newest"
		}
		if reqData.Sort != "newest" && reqData.Sort != "oldest" {
			errors["sort"] = "Sort must be newest or oldest!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validateBookingList", reqData)
		return c.Next()
	}
}
