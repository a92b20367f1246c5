package models

import (
	"time"

	"gorm.io/gorm"
)

// OverrideGrant is the audit record written whenever an operator passes the
// override challenge. The privilege itself travels in the session token; this
// row only records who held it and for how long.
type OverrideGrant struct {
	gorm.Model
	SessionID string    `gorm:"uniqueIndex;not null" json:"sessionId"`
	AdminID   uint      `json:"adminId"`
	GrantedAt time.Time `json:"grantedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}
