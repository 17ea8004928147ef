package http

import (
	"fmt"

	"github.com/roomify/roomify-backend/internal/dashboard"
)

type OccupancyResponse struct {
	OccupiedRooms int    `json:"occupiedRooms"`
	TotalRooms    int    `json:"totalRooms"`
	Rate          string `json:"rate"`
}

type DailyActivityResponse struct {
	CheckInsToday  int `json:"checkInsToday"`
	CheckOutsToday int `json:"checkOutsToday"`
}

type RoomStatusResponse struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type StatsResponse struct {
	TotalRevenue           float64               `json:"totalRevenue"`
	TotalBookings          int                   `json:"totalBookings"`
	TotalCompletedBookings int                   `json:"totalCompletedBookings"`
	CurrentOccupancy       OccupancyResponse     `json:"currentOccupancy"`
	DailyActivity          DailyActivityResponse `json:"dailyActivity"`
	RoomStatus             []RoomStatusResponse  `json:"roomStatus"`
}

func NewStatsResponse(s *dashboard.Stats) StatsResponse {
	statuses := make([]RoomStatusResponse, 0, len(s.RoomStatus))
	for _, rs := range s.RoomStatus {
		statuses = append(statuses, RoomStatusResponse{Status: rs.Status, Count: rs.Count})
	}
	return StatsResponse{
		TotalRevenue:           s.TotalRevenue,
		TotalBookings:          s.TotalBookings,
		TotalCompletedBookings: s.TotalCompletedBookings,
		CurrentOccupancy: OccupancyResponse{
			OccupiedRooms: s.CurrentOccupancy.OccupiedRooms,
			TotalRooms:    s.CurrentOccupancy.TotalRooms,
			Rate:          OccupancyRate(s.CurrentOccupancy.OccupiedRooms, s.CurrentOccupancy.TotalRooms),
		},
		DailyActivity: DailyActivityResponse{
			CheckInsToday:  s.DailyActivity.CheckInsToday,
			CheckOutsToday: s.DailyActivity.CheckOutsToday,
		},
		RoomStatus: statuses,
	}
}

// OccupancyRate formats the occupancy percentage with two decimals.
// An empty inventory reads as "0.00" rather than dividing by zero.
func OccupancyRate(occupied, total int) string {
	if total == 0 {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", float64(occupied)/float64(total)*100)
}
