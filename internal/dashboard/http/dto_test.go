package http

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roomify/roomify-backend/internal/dashboard"
)

func TestOccupancyRate(t *testing.T) {
	assert.Equal(t, "0.00", OccupancyRate(0, 0), "empty inventory must not divide by zero")
	assert.Equal(t, "0.00", OccupancyRate(0, 10))
	assert.Equal(t, "66.67", OccupancyRate(2, 3))
	assert.Equal(t, "100.00", OccupancyRate(5, 5))
	assert.Equal(t, "12.50", OccupancyRate(1, 8))
}

func TestNewStatsResponse(t *testing.T) {
	resp := NewStatsResponse(&dashboard.Stats{
		TotalRevenue:           500,
		TotalBookings:          8,
		TotalCompletedBookings: 3,
		CurrentOccupancy:       dashboard.Occupancy{OccupiedRooms: 1, TotalRooms: 4},
		DailyActivity:          dashboard.DailyActivity{CheckInsToday: 2, CheckOutsToday: 1},
		RoomStatus: []dashboard.RoomStatusCount{
			{Status: "Available", Count: 3},
			{Status: "Occupied", Count: 1},
		},
	})

	assert.Equal(t, 500.0, resp.TotalRevenue)
	assert.Equal(t, "25.00", resp.CurrentOccupancy.Rate)
	assert.Equal(t, 2, resp.DailyActivity.CheckInsToday)
	assert.Len(t, resp.RoomStatus, 2)
	assert.Equal(t, "Occupied", resp.RoomStatus[1].Status)
}
