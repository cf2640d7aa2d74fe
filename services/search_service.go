package services

import (
	"sort"
	"strconv"
	"strings"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"gorm.io/gorm"

	"hotel-api/dto"
	apperrors "hotel-api/errors"
	"hotel-api/models"
)

const searchLimit = 10

// SearchService tìm kiếm rooms và bookings theo từ khóa
type SearchService struct {
	db *gorm.DB
}

// NewSearchService tạo SearchService mới
func NewSearchService(db *gorm.DB) *SearchService {
	return &SearchService{db: db}
}

// normalizeQuery bỏ dấu tiếng Việt và hạ chữ thường để so khớp
func normalizeQuery(s string) string {
	return strings.ToLower(strings.TrimSpace(unidecode.Unidecode(s)))
}

// Search gộp kết quả rooms và bookings cho một từ khóa.
// Rooms khớp substring trước, thiếu mới bù bằng fuzzy match theo tên.
func (s *SearchService) Search(query string) (*dto.SearchResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.NewAppError(apperrors.ErrCodeRequiredField, "Thiếu từ khóa tìm kiếm", nil)
	}

	rooms, err := s.searchRooms(query)
	if err != nil {
		return nil, err
	}

	bookings, err := s.searchBookings(query)
	if err != nil {
		return nil, err
	}

	return &dto.SearchResponse{
		Query:    query,
		Rooms:    rooms,
		Bookings: bookings,
		Counts: dto.SearchCounts{
			Rooms:    len(rooms),
			Bookings: len(bookings),
		},
	}, nil
}

func (s *SearchService) searchRooms(query string) ([]models.Room, error) {
	pattern := "%" + query + "%"

	var rooms []models.Room
	err := s.db.
		Where("name ILIKE ? OR description ILIKE ?", pattern, pattern).
		Order("featured DESC, price ASC").
		Limit(searchLimit).
		Find(&rooms).Error
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Không tìm kiếm được phòng", err)
	}

	if len(rooms) >= searchLimit {
		return rooms, nil
	}

	fuzzy, err := s.fuzzyRooms(query, rooms)
	if err != nil {
		return nil, err
	}
	for _, r := range fuzzy {
		if len(rooms) >= searchLimit {
			break
		}
		rooms = append(rooms, r)
	}
	return rooms, nil
}

// fuzzyRooms bù kết quả bằng closest match trên tên đã bỏ dấu
func (s *SearchService) fuzzyRooms(query string, already []models.Room) ([]models.Room, error) {
	var all []models.Room
	if err := s.db.Find(&all).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Không tìm kiếm được phòng", err)
	}

	seen := make(map[uint]bool, len(already))
	for _, r := range already {
		seen[r.ID] = true
	}

	byName := make(map[string]models.Room, len(all))
	names := make([]string, 0, len(all))
	for _, r := range all {
		if seen[r.ID] {
			continue
		}
		key := normalizeQuery(r.Name)
		byName[key] = r
		names = append(names, key)
	}
	if len(names) == 0 {
		return nil, nil
	}

	normalized := normalizeQuery(query)
	cm := closestmatch.New(names, []int{2, 3, 4})

	scored := make([]dto.ScoredRoom, 0, searchLimit)
	for _, name := range cm.ClosestN(normalized, searchLimit) {
		if name == "" {
			continue
		}
		distance := levenshtein.DistanceForStrings(
			[]rune(normalized), []rune(name), levenshtein.DefaultOptions)
		// Khoảng cách quá nửa độ dài tên thì coi như không liên quan
		if distance > len([]rune(name))/2 {
			continue
		}
		scored = append(scored, dto.ScoredRoom{Room: byName[name], Score: distance})
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score < scored[j].Score })

	rooms := make([]models.Room, 0, len(scored))
	for _, sr := range scored {
		rooms = append(rooms, sr.Room)
	}
	return rooms, nil
}

func (s *SearchService) searchBookings(query string) ([]dto.BookingResponse, error) {
	pattern := "%" + query + "%"

	tx := s.db.Preload("Room").
		Where("guest_name ILIKE ? OR guest_email ILIKE ?", pattern, pattern)
	if id, err := strconv.Atoi(query); err == nil && id > 0 {
		tx = s.db.Preload("Room").
			Where("guest_name ILIKE ? OR guest_email ILIKE ? OR id = ?", pattern, pattern, id)
	}

	var bookings []models.Booking
	if err := tx.Order("created_at DESC").Limit(searchLimit).Find(&bookings).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Không tìm kiếm được booking", err)
	}

	responses := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		responses = append(responses, ToBookingResponse(&bookings[i]))
	}
	return responses, nil
}
