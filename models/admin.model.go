package models

import (
	"time"

	"gorm.io/gorm"
)

type Admin struct {
	gorm.Model
	Name                string    `gorm:"default:''" json:"name"`
	Email               string    `gorm:"unique;not null" json:"email"`
	Password            string    `gorm:"not null" json:"-"`
	Role                string    `gorm:"default:'OPERATOR'" json:"role"` // OPERATOR, SUPER-ADMIN
	LastLogin           time.Time `gorm:"default:NULL" json:"lastLogin"`
	FailedLoginAttempts int       `gorm:"default:0" json:"-"`
	IsBlocked           bool      `gorm:"default:false" json:"isBlocked"`
	IsDeleted           bool      `gorm:"default:false" json:"-"`
}
