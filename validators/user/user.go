package userValidator

import (
	"shata-admin/middleware"

	"github.com/gofiber/fiber/v2"
)

type ListRequest struct {
	Search string `query:"search"`
	Page   *int   `query:"page"`
	Limit  *int   `query:"limit"`
}

func List() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ListRequest)
		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		if reqData.Page == nil {
			page := 1
			reqData.Page = &page
		} else if *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if reqData.Limit == nil {
			limit := 20
			reqData.Limit = &limit
		} else if *reqData.Limit < 1 {
			errors["limit"] = "Limit must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validateUserList", reqData)
		return c.Next()
	}
}
