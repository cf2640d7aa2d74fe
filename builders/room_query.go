package builders

import (
	"net/url"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"hotel-api/dto"
)

// roomSortColumns là allow-list cột sort; chỉ các fragment cố định này được
// nối vào ORDER BY, không bao giờ nội suy chuỗi từ caller.
var roomSortColumns = map[string]string{
	"price":      "price",
	"capacity":   "capacity",
	"rating":     "rating",
	"name":       "name",
	"created_at": "created_at",
}

const (
	defaultRoomPerPage = 10
	maxPerPage         = 100
)

// RoomQuery gom các filter/sort/pagination cho danh sách phòng.
// Mọi filter là AND; filter vắng mặt thì bỏ qua, riêng available mặc định
// chỉ lấy phòng đang mở bán.
type RoomQuery struct {
	MinPrice  *int
	MaxPrice  *int
	Type      *string
	Capacity  *int
	Featured  *bool
	Available *bool
	SortBy    string
	SortOrder string
	Page      int
	PerPage   int
}

// ParseRoomQuery đọc query params, ép kiểu và chuẩn hóa về giá trị an toàn
func ParseRoomQuery(values url.Values) *RoomQuery {
	q := &RoomQuery{
		MinPrice:  parseIntPtr(values.Get("min_price")),
		MaxPrice:  parseIntPtr(values.Get("max_price")),
		Type:      parseStringPtr(values.Get("type")),
		Capacity:  parseIntPtr(values.Get("capacity")),
		Featured:  parseBoolPtr(values.Get("featured")),
		Available: parseBoolPtr(values.Get("available")),
		SortBy:    values.Get("sort_by"),
		SortOrder: values.Get("sort_order"),
	}

	if q.Available == nil {
		available := true
		q.Available = &available
	}

	q.Page, q.PerPage = parsePagination(values, defaultRoomPerPage)
	q.normalizeSort()
	return q
}

// normalizeSort đưa sort_by/sort_order về allow-list, fallback price asc
func (q *RoomQuery) normalizeSort() {
	if _, ok := roomSortColumns[q.SortBy]; !ok {
		q.SortBy = "price"
	}
	q.SortOrder = strings.ToLower(q.SortOrder)
	if q.SortOrder != "desc" {
		q.SortOrder = "asc"
	}
}

// Offset luôn không âm nhờ page/perPage đã được ép về dương
func (q *RoomQuery) Offset() int {
	return (q.Page - 1) * q.PerPage
}

// OrderClause trả về fragment ORDER BY từ allow-list
func (q *RoomQuery) OrderClause() string {
	column := roomSortColumns[q.SortBy]
	if q.SortOrder == "desc" {
		return column + " DESC"
	}
	return column + " ASC"
}

// Apply gắn các điều kiện WHERE vào query, không gồm sort/pagination
// để tái dùng cho câu đếm tổng.
func (q *RoomQuery) Apply(tx *gorm.DB) *gorm.DB {
	if q.MinPrice != nil {
		tx = tx.Where("price >= ?", *q.MinPrice)
	}
	if q.MaxPrice != nil {
		tx = tx.Where("price <= ?", *q.MaxPrice)
	}
	if q.Type != nil {
		tx = tx.Where("type = ?", *q.Type)
	}
	if q.Capacity != nil {
		tx = tx.Where("capacity >= ?", *q.Capacity)
	}
	if q.Featured != nil {
		tx = tx.Where("featured = ?", *q.Featured)
	}
	if q.Available != nil {
		tx = tx.Where("available = ?", *q.Available)
	}
	return tx
}

// Filters echo lại filter đã áp dụng cho response
func (q *RoomQuery) Filters() dto.RoomFilters {
	return dto.RoomFilters{
		MinPrice:  q.MinPrice,
		MaxPrice:  q.MaxPrice,
		Type:      q.Type,
		Capacity:  q.Capacity,
		Featured:  q.Featured,
		Available: q.Available,
	}
}

func parseIntPtr(raw string) *int {
	if raw == "" {
		return nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &value
}

func parseUintPtr(raw string) *uint {
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil
	}
	u := uint(value)
	return &u
}

func parseStringPtr(raw string) *string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	return &raw
}

func parseBoolPtr(raw string) *bool {
	switch strings.ToLower(raw) {
	case "1", "true":
		value := true
		return &value
	case "0", "false":
		value := false
		return &value
	}
	return nil
}

// parsePagination ép page/per_page về số dương, không bao giờ cho offset âm
func parsePagination(values url.Values, defaultPerPage int) (int, int) {
	page := 1
	if parsed, err := strconv.Atoi(values.Get("page")); err == nil && parsed > 0 {
		page = parsed
	}

	perPage := defaultPerPage
	if parsed, err := strconv.Atoi(values.Get("per_page")); err == nil && parsed > 0 {
		perPage = parsed
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	return page, perPage
}
