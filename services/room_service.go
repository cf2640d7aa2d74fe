package services

import (
	"errors"
	"time"

	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"hotel-api/builders"
	"hotel-api/config"
	"hotel-api/dto"
	apperrors "hotel-api/errors"
	"hotel-api/models"
	"hotel-api/services/logger"
	"hotel-api/validator"
)

// RoomService xử lý logic liên quan đến phòng
type RoomService struct {
	db     *gorm.DB
	rdb    *redis.Client
	logger logger.Logger
}

// NewRoomService tạo RoomService mới
func NewRoomService(db *gorm.DB, rdb *redis.Client, log logger.Logger) *RoomService {
	return &RoomService{db: db, rdb: rdb, logger: log}
}

// List trả về danh sách phòng theo filter/sort/pagination cùng tổng số
// bản ghi trước khi phân trang.
func (s *RoomService) List(q *builders.RoomQuery) ([]models.Room, int64, error) {
	var total int64
	if err := q.Apply(s.db.Model(&models.Room{})).Count(&total).Error; err != nil {
		return nil, 0, apperrors.NewAppError(apperrors.ErrCodeDBError, "Không lấy được danh sách phòng", err)
	}

	var rooms []models.Room
	err := q.Apply(s.db.Model(&models.Room{})).
		Order(q.OrderClause()).
		Limit(q.PerPage).
		Offset(q.Offset()).
		Find(&rooms).Error
	if err != nil {
		return nil, 0, apperrors.NewAppError(apperrors.ErrCodeDBError, "Không lấy được danh sách phòng", err)
	}

	return rooms, total, nil
}

// GetByID lấy phòng theo id
func (s *RoomService) GetByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.db.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "Phòng không tồn tại", err)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Không lấy được phòng", err)
	}
	return &room, nil
}

// ListAvailable trả về các phòng còn trống trong khoảng ngày cho số khách yêu cầu.
// Phòng đang tắt available hoặc sức chứa nhỏ hơn số khách bị loại bất kể ngày.
func (s *RoomService) ListAvailable(checkIn, checkOut time.Time, guests int) ([]models.Room, error) {
	busyIDs, err := BusyRoomIDs(s.db, checkIn, checkOut)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Không kiểm tra được phòng bận", err)
	}

	tx := s.db.Model(&models.Room{}).
		Where("available = ?", true).
		Where("capacity >= ?", guests)
	if len(busyIDs) > 0 {
		tx = tx.Where("id NOT IN ?", busyIDs)
	}

	var rooms []models.Room
	if err := tx.Order("price ASC").Find(&rooms).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Không lấy được phòng trống", err)
	}
	return rooms, nil
}

// Create tạo phòng mới
func (s *RoomService) Create(req *dto.CreateRoomRequest) (*models.Room, error) {
	if err := validator.ValidateCreateRoom(req); err != nil {
		return nil, err
	}

	room := models.Room{
		Name:        req.Name,
		Type:        req.Type,
		Price:       req.Price,
		Description: req.Description,
		Capacity:    2,
		Amenities:   pq.StringArray(req.Amenities),
		Images:      pq.StringArray(req.Images),
		Available:   true,
		Rating:      4.5,
	}
	if req.Capacity != nil {
		room.Capacity = *req.Capacity
	}
	if req.Available != nil {
		room.Available = *req.Available
	}
	if req.Featured != nil {
		room.Featured = *req.Featured
	}
	if req.Rating != nil {
		room.Rating = *req.Rating
	}

	if err := room.Validate(); err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeValidation, err.Error(), nil)
	}

	if err := s.db.Create(&room).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Không tạo được phòng", err)
	}

	s.logger.Info("Đã tạo phòng id=%d name=%q", room.ID, room.Name)
	InvalidateListCaches(config.Ctx, s.rdb)
	return &room, nil
}

// Update cập nhật phòng, chỉ các cột trong danh sách cho phép
func (s *RoomService) Update(id uint, req *dto.UpdateRoomRequest) (*models.Room, error) {
	if err := validator.ValidateUpdateRoom(req); err != nil {
		return nil, err
	}

	room, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Type != nil {
		updates["type"] = *req.Type
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Capacity != nil {
		updates["capacity"] = *req.Capacity
	}
	if req.Amenities != nil {
		updates["amenities"] = pq.StringArray(req.Amenities)
	}
	if req.Images != nil {
		updates["images"] = pq.StringArray(req.Images)
	}
	if req.Available != nil {
		updates["available"] = *req.Available
	}
	if req.Featured != nil {
		updates["featured"] = *req.Featured
	}
	if req.Rating != nil {
		updates["rating"] = *req.Rating
	}

	if len(updates) > 0 {
		if err := s.db.Model(room).Updates(updates).Error; err != nil {
			return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Không cập nhật được phòng", err)
		}
	}

	s.logger.Info("Đã cập nhật phòng id=%d", id)
	InvalidateListCaches(config.Ctx, s.rdb)
	return s.GetByID(id)
}

// Delete xóa phòng. Phòng còn bất kỳ booking nào (kể cả đã cancel)
// thì từ chối để giữ lịch sử; chỉ phòng sạch booking mới xóa cứng được.
func (s *RoomService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}

	var bookingCount int64
	if err := s.db.Model(&models.Booking{}).Where("room_id = ?", id).Count(&bookingCount).Error; err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "Không kiểm tra được booking của phòng", err)
	}
	if bookingCount > 0 {
		return apperrors.NewAppError(apperrors.ErrCodeHasDependents,
			"Phòng đang có booking, không thể xóa", nil)
	}

	if err := s.db.Delete(&models.Room{}, id).Error; err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeDBError, "Không xóa được phòng", err)
	}

	s.logger.Info("Đã xóa phòng id=%d", id)
	InvalidateListCaches(config.Ctx, s.rdb)
	return nil
}

// AppendImage gắn thêm URL ảnh vào phòng
func (s *RoomService) AppendImage(id uint, url string) (*models.Room, error) {
	room, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	room.Images = append(room.Images, url)
	if err := s.db.Model(room).Update("images", room.Images).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Không lưu được ảnh phòng", err)
	}

	InvalidateListCaches(config.Ctx, s.rdb)
	return room, nil
}
