package superAdminController

import (
	"log"

	"shata-admin/config"
	"shata-admin/database"
	"shata-admin/middleware"
	"shata-admin/models"
	authValidator "shata-admin/validators/auth"
	userValidator "shata-admin/validators/user"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// RegisterOperator creates a new operator account. Super admin only.
func RegisterOperator(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validateRegisterOperator").(*authValidator.RegisterOperatorRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	// Check if email already exists
	if err := db.Where("email = ?", reqData.Email).First(&models.Admin{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newAdmin := models.Admin{
		Name:     reqData.Name,
		Email:    reqData.Email,
		Password: string(hashedPassword),
		Role:     "OPERATOR",
	}

	if err := db.Create(&newAdmin).Error; err != nil {
		log.Printf("Error saving operator to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register operator!", nil)
	}

	newAdmin.Password = ""
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Operator registered successfully.", newAdmin)
}

// OperatorList returns operator accounts, excluding super admins.
func OperatorList(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validateUserList").(*userValidator.ListRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	offset := (*reqData.Page - 1) * (*reqData.Limit)

	var admins []models.Admin
	var total int64

	db := database.Database.Db

	if err := db.
		Where("is_deleted = ? AND role != ?", false, "SUPER-ADMIN").
		Offset(offset).
		Limit(*reqData.Limit).
		Find(&admins).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch operator list!", nil)
	}

	db.Model(&models.Admin{}).
		Where("is_deleted = ? AND role != ?", false, "SUPER-ADMIN").
		Count(&total)

	for i := range admins {
		admins[i].Password = ""
	}

	response := map[string]interface{}{
		"operators": admins,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  *reqData.Page,
			"limit": *reqData.Limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Operator List.", response)
}
