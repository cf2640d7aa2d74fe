package dto

import "hotel-api/models"

// ScoredRoom là room kèm điểm phù hợp khi search mờ
type ScoredRoom struct {
	Room  models.Room `json:"room"`
	Score int         `json:"score"`
}

// SearchResponse là kết quả search gộp rooms và bookings
type SearchResponse struct {
	Query    string            `json:"query"`
	Rooms    []models.Room     `json:"rooms"`
	Bookings []BookingResponse `json:"bookings"`
	Counts   SearchCounts      `json:"counts"`
}

// SearchCounts đếm số kết quả từng loại
type SearchCounts struct {
	Rooms    int `json:"rooms"`
	Bookings int `json:"bookings"`
}
