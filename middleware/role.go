package middleware

import (
	"shata-admin/database"
	"shata-admin/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RequireRole returns a middleware that checks the calling operator still
// holds the required role. The token claim is not trusted on its own because
// roles can be revoked between logins.
func RequireRole(requiredRole string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		adminID, ok := c.Locals("adminId").(uint)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  false,
				"message": "Unauthorized: Admin ID not found",
				"data":    nil,
			})
		}

		var admin models.Admin
		err := database.Database.Db.Where("id = ? AND role = ? AND is_deleted = false",
			adminID, requiredRole).First(&admin).Error

		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
					"status":  false,
					"message": "You do not have permission to access this resource!",
					"data":    nil,
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"status":  false,
				"message": "Server error while checking permissions!",
				"data":    nil,
			})
		}

		return c.Next()
	}
}
