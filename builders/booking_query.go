package builders

import (
	"net/url"
	"time"

	"gorm.io/gorm"

	"hotel-api/dto"
)

const defaultBookingPerPage = 20

// BookingQuery gom các filter/pagination cho danh sách booking
type BookingQuery struct {
	Status     *string
	RoomID     *uint
	GuestEmail *string
	StartDate  *time.Time
	EndDate    *time.Time
	Page       int
	PerPage    int

	startRaw string
	endRaw   string
}

// ParseBookingQuery đọc query params; ngày sai định dạng thì bỏ qua filter đó
func ParseBookingQuery(values url.Values) *BookingQuery {
	q := &BookingQuery{
		Status:     parseStringPtr(values.Get("status")),
		RoomID:     parseUintPtr(values.Get("room_id")),
		GuestEmail: parseStringPtr(values.Get("guest_email")),
	}

	if raw := values.Get("start_date"); raw != "" {
		if parsed, err := time.Parse("2006-01-02", raw); err == nil {
			q.StartDate = &parsed
			q.startRaw = raw
		}
	}
	if raw := values.Get("end_date"); raw != "" {
		if parsed, err := time.Parse("2006-01-02", raw); err == nil {
			q.EndDate = &parsed
			q.endRaw = raw
		}
	}

	q.Page, q.PerPage = parsePagination(values, defaultBookingPerPage)
	return q
}

func (q *BookingQuery) Offset() int {
	return (q.Page - 1) * q.PerPage
}

// Apply gắn các điều kiện WHERE, mọi filter là AND
func (q *BookingQuery) Apply(tx *gorm.DB) *gorm.DB {
	if q.Status != nil {
		tx = tx.Where("bookings.status = ?", *q.Status)
	}
	if q.RoomID != nil {
		tx = tx.Where("bookings.room_id = ?", *q.RoomID)
	}
	if q.GuestEmail != nil {
		tx = tx.Where("bookings.guest_email LIKE ?", "%"+*q.GuestEmail+"%")
	}
	if q.StartDate != nil {
		tx = tx.Where("bookings.check_in >= ?", *q.StartDate)
	}
	if q.EndDate != nil {
		tx = tx.Where("bookings.check_out <= ?", *q.EndDate)
	}
	return tx
}

// Filters echo lại filter đã áp dụng cho response
func (q *BookingQuery) Filters() dto.BookingFilters {
	filters := dto.BookingFilters{
		Status:     q.Status,
		RoomID:     q.RoomID,
		GuestEmail: q.GuestEmail,
	}
	if q.startRaw != "" {
		filters.StartDate = &q.startRaw
	}
	if q.endRaw != "" {
		filters.EndDate = &q.endRaw
	}
	return filters
}
