package dashboard

// Occupancy reports how many rooms are occupied out of the total inventory.
type Occupancy struct {
	OccupiedRooms int
	TotalRooms    int
}

// DailyActivity counts the check-ins and check-outs performed today.
type DailyActivity struct {
	CheckInsToday  int
	CheckOutsToday int
}

// RoomStatusCount is one slice of the room inventory grouped by status.
type RoomStatusCount struct {
	Status string
	Count  int
}

// Stats is the aggregated KPI snapshot shown on the admin dashboard.
type Stats struct {
	TotalRevenue           float64
	TotalBookings          int
	TotalCompletedBookings int
	CurrentOccupancy       Occupancy
	DailyActivity          DailyActivity
	RoomStatus             []RoomStatusCount
}
