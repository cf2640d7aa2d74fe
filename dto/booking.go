package dto

import "time"

// CreateBookingRequest là DTO cho request tạo booking.
// Ngày dùng định dạng YYYY-MM-DD, giá luôn do server tính.
type CreateBookingRequest struct {
	RoomID          uint   `json:"room_id" binding:"required"`
	GuestName       string `json:"guest_name" binding:"required"`
	GuestEmail      string `json:"guest_email" binding:"required,email"`
	GuestPhone      string `json:"guest_phone"`
	CheckIn         string `json:"check_in" binding:"required,bookdate"`
	CheckOut        string `json:"check_out" binding:"required,bookdate"`
	Guests          int    `json:"guests" binding:"omitempty,gt=0"`
	PaymentMethod   string `json:"payment_method"`
	SpecialRequests string `json:"special_requests"`
}

// UpdateBookingRequest chỉ cho sửa các field thuộc về khách.
// Phòng và ngày là bất biến sau khi tạo để giữ invariant giá và conflict.
type UpdateBookingRequest struct {
	GuestName       *string `json:"guest_name"`
	GuestEmail      *string `json:"guest_email" binding:"omitempty,email"`
	GuestPhone      *string `json:"guest_phone"`
	Guests          *int    `json:"guests" binding:"omitempty,gt=0"`
	SpecialRequests *string `json:"special_requests"`
}

// UpdateBookingStatusRequest là DTO cho chuyển trạng thái booking
type UpdateBookingStatusRequest struct {
	Status        string `json:"status" binding:"required"`
	PaymentStatus string `json:"payment_status"`
}

// BookingFilters echo lại các filter đã áp dụng
type BookingFilters struct {
	Status     *string `json:"status"`
	RoomID     *uint   `json:"room_id"`
	GuestEmail *string `json:"guest_email"`
	StartDate  *string `json:"start_date"`
	EndDate    *string `json:"end_date"`
}

// BookingResponse là booking kèm thông tin phòng đã join
type BookingResponse struct {
	ID              uint      `json:"id"`
	RoomID          uint      `json:"room_id"`
	RoomName        string    `json:"room_name"`
	RoomPrice       int       `json:"room_price"`
	GuestName       string    `json:"guest_name"`
	GuestEmail      string    `json:"guest_email"`
	GuestPhone      string    `json:"guest_phone,omitempty"`
	CheckIn         string    `json:"check_in"`
	CheckOut        string    `json:"check_out"`
	Nights          int       `json:"nights"`
	Guests          int       `json:"guests"`
	TotalPrice      int       `json:"total_price"`
	Status          string    `json:"status"`
	PaymentStatus   string    `json:"payment_status"`
	PaymentMethod   string    `json:"payment_method"`
	SpecialRequests string    `json:"special_requests,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// AvailabilityResponse là kết quả check-availability
type AvailabilityResponse struct {
	RoomID    uint   `json:"room_id"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
	Available bool   `json:"available"`
	Message   string `json:"message"`
}
