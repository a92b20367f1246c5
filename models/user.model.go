package models

import (
	"gorm.io/gorm"
)

// User is a marketplace end customer. The console only lists them together
// with their bookings; accounts are managed by the customer-facing app.
type User struct {
	gorm.Model
	FullName string `gorm:"default:''" json:"fullName"`
	Email    string `gorm:"default:''" json:"email"`
	Phone    string `gorm:"default:''" json:"phone"`
}
