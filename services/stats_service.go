package services

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"hotel-api/config"
	"hotel-api/dto"
	apperrors "hotel-api/errors"
	"hotel-api/models"
)

// StatsService tổng hợp số liệu phòng và booking
type StatsService struct {
	db  *gorm.DB
	rdb *redis.Client
}

// NewStatsService tạo StatsService mới
func NewStatsService(db *gorm.DB, rdb *redis.Client) *StatsService {
	return &StatsService{db: db, rdb: rdb}
}

type bookingStatsRow struct {
	TotalBookings     int64
	ConfirmedBookings int64
	CheckedInBookings int64
	CancelledBookings int64
	TotalRevenue      int64
	AvgBookingPrice   float64
	FirstBooking      *time.Time
	LastBooking       *time.Time
}

// Summary trả về toàn bộ thống kê, cache Redis 1 phút
func (s *StatsService) Summary() (*dto.StatsResponse, error) {
	if s.rdb != nil {
		var cached dto.StatsResponse
		if err := GetFromRedis(config.Ctx, s.rdb, CacheKeyStats, &cached); err == nil {
			return &cached, nil
		}
	}

	var roomStats dto.RoomStats
	err := s.db.Model(&models.Room{}).
		Select(`COUNT(*) AS total_rooms,
			COALESCE(SUM(CASE WHEN available THEN 1 ELSE 0 END), 0) AS available_rooms,
			COALESCE(SUM(CASE WHEN featured THEN 1 ELSE 0 END), 0) AS featured_rooms,
			COALESCE(AVG(price), 0) AS avg_price,
			COALESCE(MAX(price), 0) AS max_price,
			COALESCE(MIN(price), 0) AS min_price,
			COALESCE(AVG(rating), 0) AS avg_rating`).
		Scan(&roomStats).Error
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Không lấy được thống kê phòng", err)
	}

	var bookingRow bookingStatsRow
	err = s.db.Model(&models.Booking{}).
		Select(`COUNT(*) AS total_bookings,
			COALESCE(SUM(CASE WHEN status = 'confirmed' THEN 1 ELSE 0 END), 0) AS confirmed_bookings,
			COALESCE(SUM(CASE WHEN status = 'checked_in' THEN 1 ELSE 0 END), 0) AS checked_in_bookings,
			COALESCE(SUM(CASE WHEN status = 'cancelled' THEN 1 ELSE 0 END), 0) AS cancelled_bookings,
			COALESCE(SUM(total_price), 0) AS total_revenue,
			COALESCE(AVG(total_price), 0) AS avg_booking_price,
			MIN(created_at) AS first_booking,
			MAX(created_at) AS last_booking`).
		Scan(&bookingRow).Error
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Không lấy được thống kê booking", err)
	}

	bookingStats := dto.BookingStats{
		TotalBookings:     bookingRow.TotalBookings,
		ConfirmedBookings: bookingRow.ConfirmedBookings,
		CheckedInBookings: bookingRow.CheckedInBookings,
		CancelledBookings: bookingRow.CancelledBookings,
		TotalRevenue:      bookingRow.TotalRevenue,
		AvgBookingPrice:   bookingRow.AvgBookingPrice,
	}
	if bookingRow.FirstBooking != nil {
		bookingStats.FirstBooking = bookingRow.FirstBooking.Format(time.RFC3339)
	}
	if bookingRow.LastBooking != nil {
		bookingStats.LastBooking = bookingRow.LastBooking.Format(time.RFC3339)
	}

	var recent []models.Booking
	err = s.db.Preload("Room").Order("created_at DESC").Limit(5).Find(&recent).Error
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Không lấy được booking gần đây", err)
	}
	recentResponses := make([]dto.BookingResponse, 0, len(recent))
	for i := range recent {
		recentResponses = append(recentResponses, ToBookingResponse(&recent[i]))
	}

	var popular []dto.PopularRoom
	err = s.db.Model(&models.Room{}).
		Select(`rooms.id, rooms.name, rooms.price,
			COUNT(bookings.id) AS booking_count,
			COALESCE(SUM(bookings.total_price), 0) AS revenue`).
		Joins("LEFT JOIN bookings ON bookings.room_id = rooms.id").
		Group("rooms.id, rooms.name, rooms.price").
		Order("booking_count DESC").
		Limit(5).
		Scan(&popular).Error
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Không lấy được phòng được đặt nhiều", err)
	}

	stats := &dto.StatsResponse{
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
		Rooms:          roomStats,
		Bookings:       bookingStats,
		RecentBookings: recentResponses,
		PopularRooms:   popular,
	}

	if s.rdb != nil {
		_ = SetToRedis(config.Ctx, s.rdb, CacheKeyStats, stats, time.Minute)
	}
	return stats, nil
}
