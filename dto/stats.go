package dto

// RoomStats là thống kê tổng hợp cho bảng rooms
type RoomStats struct {
	TotalRooms     int64   `json:"total_rooms"`
	AvailableRooms int64   `json:"available_rooms"`
	FeaturedRooms  int64   `json:"featured_rooms"`
	AvgPrice       float64 `json:"avg_price"`
	MaxPrice       int     `json:"max_price"`
	MinPrice       int     `json:"min_price"`
	AvgRating      float64 `json:"avg_rating"`
}

// BookingStats là thống kê tổng hợp cho bảng bookings
type BookingStats struct {
	TotalBookings     int64   `json:"total_bookings"`
	ConfirmedBookings int64   `json:"confirmed_bookings"`
	CheckedInBookings int64   `json:"checked_in_bookings"`
	CancelledBookings int64   `json:"cancelled_bookings"`
	TotalRevenue      int64   `json:"total_revenue"`
	AvgBookingPrice   float64 `json:"avg_booking_price"`
	FirstBooking      string  `json:"first_booking,omitempty"`
	LastBooking       string  `json:"last_booking,omitempty"`
}

// PopularRoom là room xếp hạng theo số booking
type PopularRoom struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Price        int    `json:"price"`
	BookingCount int64  `json:"booking_count"`
	Revenue      int64  `json:"revenue"`
}

// StatsResponse gom toàn bộ thống kê
type StatsResponse struct {
	Timestamp      string            `json:"timestamp"`
	Rooms          RoomStats         `json:"rooms"`
	Bookings       BookingStats      `json:"bookings"`
	RecentBookings []BookingResponse `json:"recent_bookings"`
	PopularRooms   []PopularRoom     `json:"popular_rooms"`
}
