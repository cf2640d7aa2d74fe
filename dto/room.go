package dto

import "hotel-api/models"

// CreateRoomRequest là DTO cho request tạo room
type CreateRoomRequest struct {
	Name        string   `json:"name" binding:"required"`
	Type        string   `json:"type"`
	Price       int      `json:"price" binding:"required,gt=0"`
	Description string   `json:"description"`
	Capacity    *int     `json:"capacity" binding:"omitempty,gt=0"`
	Amenities   []string `json:"amenities"`
	Images      []string `json:"images"`
	Available   *bool    `json:"available"`
	Featured    *bool    `json:"featured"`
	Rating      *float64 `json:"rating" binding:"omitempty,gte=0,lte=5"`
}

// UpdateRoomRequest là DTO cho request cập nhật room, field nào nil thì giữ nguyên
type UpdateRoomRequest struct {
	Name        *string  `json:"name"`
	Type        *string  `json:"type"`
	Price       *int     `json:"price"`
	Description *string  `json:"description"`
	Capacity    *int     `json:"capacity"`
	Amenities   []string `json:"amenities"`
	Images      []string `json:"images"`
	Available   *bool    `json:"available"`
	Featured    *bool    `json:"featured"`
	Rating      *float64 `json:"rating"`
}

// RoomFilters echo lại các filter đã áp dụng trong response danh sách
type RoomFilters struct {
	MinPrice  *int    `json:"min_price"`
	MaxPrice  *int    `json:"max_price"`
	Type      *string `json:"type"`
	Capacity  *int    `json:"capacity"`
	Featured  *bool   `json:"featured"`
	Available *bool   `json:"available"`
}

// AvailableRoomResponse là room kèm tổng giá tính sẵn cho khoảng ngày được hỏi
type AvailableRoomResponse struct {
	models.Room
	TotalPrice int    `json:"total_price"`
	Nights     int    `json:"nights"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
}
