package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Booking statuses as used by the customer app.
const (
	BookingPending   = "pending"
	BookingVisited   = "visited"
	BookingConfirmed = "confirmEvent"
	BookingCancelled = "Cancel"
)

type Booking struct {
	gorm.Model
	UserID      uint           `json:"userId"`
	EventType   string         `gorm:"default:''" json:"eventType"`
	PartnerName string         `gorm:"default:''" json:"partnerName"`
	Location    string         `gorm:"default:''" json:"location"`
	People      int            `gorm:"default:0" json:"people"`
	Budget      float64        `gorm:"default:0" json:"budget"`
	Services    datatypes.JSON `json:"services"`
	DateFrom    time.Time      `json:"dateFrom"`  // when the booking was placed
	EventDate   time.Time      `json:"eventDate"` // when the event happens
	Status      string         `gorm:"default:'pending'" json:"status"`
}
