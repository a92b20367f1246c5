package authController

import (
	"crypto/subtle"
	"log"
	"time"

	"shata-admin/config"
	"shata-admin/database"
	"shata-admin/middleware"
	"shata-admin/models"
	authValidator "shata-admin/validators/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const sessionTTL = 24 * time.Hour

// Login authenticates an operator and issues a standard session token.
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validateLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var admin models.Admin
	if err := db.Where("email = ? AND is_deleted = false", reqData.Email).First(&admin).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	if admin.IsBlocked {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Account is blocked. Contact the super admin!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(reqData.Password)); err != nil {
		db.Model(&admin).Update("failed_login_attempts", admin.FailedLoginAttempts+1)
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	token, err := middleware.GenerateJWT(admin.ID, admin.Name, admin.Role, admin.Email, false, sessionTTL)
	if err != nil {
		log.Printf("Error generating JWT: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	db.Model(&admin).Updates(map[string]interface{}{
		"last_login":            time.Now(),
		"failed_login_attempts": 0,
	})

	admin.Password = ""
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"token": token,
		"admin": admin,
	})
}

// Override runs the privilege challenge. A matching key upgrades the session:
// the server issues a fresh short-lived token carrying the override claim and
// records an audit row. A wrong key changes nothing about the session.
func Override(c *fiber.Ctx) error {
	adminID, ok := c.Locals("adminId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validateOverride").(*authValidator.OverrideRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var admin models.Admin
	if err := db.Where("id = ? AND is_deleted = false", adminID).First(&admin).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Admin not found!", nil)
	}

	configured := config.AppConfig.OverrideKey
	if configured == "" ||
		subtle.ConstantTimeCompare([]byte(reqData.Key), []byte(configured)) != 1 {
		log.Printf("Override challenge failed for admin %d", admin.ID)
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid override key!", nil)
	}

	ttl := time.Duration(config.AppConfig.OverrideTTLMinutes) * time.Minute
	token, err := middleware.GenerateJWT(admin.ID, admin.Name, admin.Role, admin.Email, true, ttl)
	if err != nil {
		log.Printf("Error generating override JWT: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	grant := models.OverrideGrant{
		SessionID: uuid.NewString(),
		AdminID:   admin.ID,
		GrantedAt: time.Now(),
		ExpiresAt: time.Now().Add(ttl),
	}
	if err := db.Create(&grant).Error; err != nil {
		// The grant row is audit only; the upgrade still stands.
		log.Printf("Error recording override grant: %v", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Override granted.", fiber.Map{
		"token":     token,
		"expiresAt": grant.ExpiresAt,
	})
}
