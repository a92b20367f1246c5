package userController

import (
	"testing"
	"time"

	"shata-admin/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupConfirmedBookings(t *testing.T) {
	today := time.Date(2025, 3, 9, 18, 0, 0, 0, time.UTC)

	bookings := []models.Booking{
		{EventType: "Wedding Celebration", EventDate: time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC)},
		{EventType: "Corporate Gala", EventDate: time.Date(2025, 3, 9, 9, 0, 0, 0, time.UTC)},
		{EventType: "Birthday Party", EventDate: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)},
		{EventType: "Undated"},
	}

	groups := groupConfirmedBookings(bookings, today)

	require.Len(t, groups.Upcoming, 1)
	assert.Equal(t, "Wedding Celebration", groups.Upcoming[0].EventType)

	require.Len(t, groups.Ongoing, 1)
	assert.Equal(t, "Corporate Gala", groups.Ongoing[0].EventType, "same-day events are ongoing regardless of hour")

	// Past and undated bookings both count as completed.
	require.Len(t, groups.Completed, 2)
}

func TestGroupConfirmedBookingsEmpty(t *testing.T) {
	groups := groupConfirmedBookings(nil, time.Now())
	assert.NotNil(t, groups.Upcoming)
	assert.NotNil(t, groups.Ongoing)
	assert.NotNil(t, groups.Completed)
	assert.Empty(t, groups.Upcoming)
}
