package services

import (
	"errors"

	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotel-api/builders"
	"hotel-api/config"
	"hotel-api/constants"
	"hotel-api/dto"
	apperrors "hotel-api/errors"
	"hotel-api/models"
	"hotel-api/services/logger"
	"hotel-api/validator"
)

// BookingService xử lý logic đặt phòng
type BookingService struct {
	db          *gorm.DB
	rdb         *redis.Client
	ws          *melody.Melody
	logger      logger.Logger
	maxStayDays int
}

// NewBookingService tạo BookingService mới
func NewBookingService(db *gorm.DB, rdb *redis.Client, ws *melody.Melody, log logger.Logger, maxStayDays int) *BookingService {
	return &BookingService{db: db, rdb: rdb, ws: ws, logger: log, maxStayDays: maxStayDays}
}

// ToBookingResponse map booking (đã preload Room) sang response có field phòng join sẵn
func ToBookingResponse(b *models.Booking) dto.BookingResponse {
	return dto.BookingResponse{
		ID:              b.ID,
		RoomID:          b.RoomID,
		RoomName:        b.Room.Name,
		RoomPrice:       b.Room.Price,
		GuestName:       b.GuestName,
		GuestEmail:      b.GuestEmail,
		GuestPhone:      b.GuestPhone,
		CheckIn:         b.CheckIn.Format(validator.DateLayout),
		CheckOut:        b.CheckOut.Format(validator.DateLayout),
		Nights:          b.Nights,
		Guests:          b.Guests,
		TotalPrice:      b.TotalPrice,
		Status:          b.Status,
		PaymentStatus:   b.PaymentStatus,
		PaymentMethod:   b.PaymentMethod,
		SpecialRequests: b.SpecialRequests,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// Create tạo booking mới. Toàn bộ kiểm tra phòng, kiểm tra trùng lịch và
// insert chạy trong một transaction, dòng phòng bị khóa FOR UPDATE để hai
// request đặt trùng không thể cùng qua bước kiểm tra.
func (s *BookingService) Create(req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	checkIn, checkOut, err := validator.ValidateDateRange(req.CheckIn, req.CheckOut, s.maxStayDays)
	if err != nil {
		return nil, err
	}

	guests := req.Guests
	if guests <= 0 {
		guests = 1
	}
	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "credit_card"
	}

	var booking models.Booking
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, req.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewAppError(apperrors.ErrCodeRoomUnavailable,
					"Phòng không tồn tại hoặc không nhận đặt", err)
			}
			return apperrors.NewAppError(apperrors.ErrCodeDBError, "Không đọc được phòng", err)
		}
		if !room.Available {
			return apperrors.NewAppError(apperrors.ErrCodeRoomUnavailable,
				"Phòng không tồn tại hoặc không nhận đặt", nil)
		}
		if room.Capacity < guests {
			return apperrors.NewAppError(apperrors.ErrCodeValidation,
				"Số khách vượt quá sức chứa của phòng", nil)
		}

		conflicts, err := CountConflicts(tx, room.ID, checkIn, checkOut)
		if err != nil {
			return apperrors.NewAppError(apperrors.ErrCodeDBError, "Không kiểm tra được trùng lịch", err)
		}
		if conflicts > 0 {
			return apperrors.NewAppError(apperrors.ErrCodeDateConflict,
				"Phòng đã được đặt trong khoảng ngày này", nil)
		}

		booking = models.Booking{
			RoomID:          room.ID,
			GuestName:       req.GuestName,
			GuestEmail:      req.GuestEmail,
			GuestPhone:      req.GuestPhone,
			CheckIn:         checkIn,
			CheckOut:        checkOut,
			Nights:          BillableNights(checkIn, checkOut),
			Guests:          guests,
			TotalPrice:      TotalPrice(room.Price, checkIn, checkOut),
			Status:          constants.BookingStatusConfirmed,
			PaymentStatus:   constants.PaymentStatusPending,
			PaymentMethod:   paymentMethod,
			SpecialRequests: req.SpecialRequests,
		}
		return tx.Create(&booking).Error
	})
	if err != nil {
		if apperrors.GetAppError(err) != nil {
			return nil, err
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Không tạo được booking", err)
	}

	s.logger.Info("Booking mới id=%d room=%d guest=%q", booking.ID, booking.RoomID, booking.GuestName)
	InvalidateListCaches(config.Ctx, s.rdb)
	BroadcastBookingEvent(s.ws, "booking.created", &booking)

	return s.GetByID(booking.ID)
}

// List trả về danh sách booking (join phòng) theo filter, mới nhất trước
func (s *BookingService) List(q *builders.BookingQuery) ([]dto.BookingResponse, int64, error) {
	var total int64
	if err := q.Apply(s.db.Model(&models.Booking{})).Count(&total).Error; err != nil {
		return nil, 0, apperrors.NewAppError(apperrors.ErrCodeDBError, "Không lấy được danh sách booking", err)
	}

	var bookings []models.Booking
	err := q.Apply(s.db.Model(&models.Booking{})).
		Preload("Room").
		Order("bookings.created_at DESC").
		Limit(q.PerPage).
		Offset(q.Offset()).
		Find(&bookings).Error
	if err != nil {
		return nil, 0, apperrors.NewAppError(apperrors.ErrCodeDBError, "Không lấy được danh sách booking", err)
	}

	responses := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		responses = append(responses, ToBookingResponse(&bookings[i]))
	}
	return responses, total, nil
}

// GetByID lấy booking theo id, kèm thông tin phòng
func (s *BookingService) GetByID(id uint) (*dto.BookingResponse, error) {
	booking, err := s.getModel(id)
	if err != nil {
		return nil, err
	}
	resp := ToBookingResponse(booking)
	return &resp, nil
}

func (s *BookingService) getModel(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.Preload("Room").First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeNotFound, "Booking không tồn tại", err)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Không đọc được booking", err)
	}
	return &booking, nil
}

// UpdateGuestFields chỉ cập nhật các field thuộc về khách.
// Phòng và ngày giữ nguyên sau khi tạo để không phá invariant giá/conflict.
func (s *BookingService) UpdateGuestFields(id uint, req *dto.UpdateBookingRequest) (*dto.BookingResponse, error) {
	booking, err := s.getModel(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.GuestName != nil {
		updates["guest_name"] = *req.GuestName
	}
	if req.GuestEmail != nil {
		updates["guest_email"] = *req.GuestEmail
	}
	if req.GuestPhone != nil {
		updates["guest_phone"] = *req.GuestPhone
	}
	if req.Guests != nil {
		if booking.Room.Capacity < *req.Guests {
			return nil, apperrors.NewAppError(apperrors.ErrCodeValidation,
				"Số khách vượt quá sức chứa của phòng", nil)
		}
		updates["guests"] = *req.Guests
	}
	if req.SpecialRequests != nil {
		updates["special_requests"] = *req.SpecialRequests
	}

	if len(updates) > 0 {
		if err := s.db.Model(booking).Updates(updates).Error; err != nil {
			return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Không cập nhật được booking", err)
		}
	}

	return s.GetByID(id)
}

// UpdateStatus chuyển trạng thái booking theo state machine.
// Chuyển sai luồng (kể cả ra khỏi cancelled/completed) bị từ chối.
func (s *BookingService) UpdateStatus(id uint, req *dto.UpdateBookingStatusRequest) (*dto.BookingResponse, error) {
	if !constants.IsValidBookingStatus(req.Status) {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidStatus,
			"Trạng thái booking không hợp lệ", nil)
	}
	if req.PaymentStatus != "" && !constants.IsValidPaymentStatus(req.PaymentStatus) {
		return nil, apperrors.NewAppError(apperrors.ErrCodeInvalidStatus,
			"Trạng thái thanh toán không hợp lệ", nil)
	}

	booking, err := s.getModel(id)
	if err != nil {
		return nil, err
	}

	from := booking.Status
	if !constants.CanTransition(from, req.Status) {
		return nil, apperrors.NewAppError(apperrors.ErrCodeBadTransition,
			"Không thể chuyển trạng thái từ "+from+" sang "+req.Status, nil)
	}

	updates := map[string]interface{}{"status": req.Status}
	if req.PaymentStatus != "" {
		updates["payment_status"] = req.PaymentStatus
	}
	if err := s.db.Model(booking).Updates(updates).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Không cập nhật được trạng thái", err)
	}

	s.logger.Info("Booking id=%d chuyển trạng thái %s -> %s", id, from, req.Status)
	InvalidateListCaches(config.Ctx, s.rdb)
	return s.GetByID(id)
}

// Cancel là soft delete: booking chuyển sang cancelled, không bao giờ xóa
// dòng vật lý để giữ lịch sử. Khoảng ngày của nó trả lại cho khách khác.
func (s *BookingService) Cancel(id uint) (*dto.BookingResponse, error) {
	booking, err := s.getModel(id)
	if err != nil {
		return nil, err
	}

	if !constants.CanTransition(booking.Status, constants.BookingStatusCancelled) {
		return nil, apperrors.NewAppError(apperrors.ErrCodeBadTransition,
			"Booking ở trạng thái "+booking.Status+" không hủy được", nil)
	}

	if err := s.db.Model(booking).Update("status", constants.BookingStatusCancelled).Error; err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Không hủy được booking", err)
	}

	s.logger.Info("Booking id=%d đã hủy", id)
	InvalidateListCaches(config.Ctx, s.rdb)
	BroadcastBookingEvent(s.ws, "booking.cancelled", booking)
	return s.GetByID(id)
}

// CheckAvailability kiểm tra một phòng còn trống trong khoảng ngày không
func (s *BookingService) CheckAvailability(roomID uint, checkInRaw, checkOutRaw string) (*dto.AvailabilityResponse, error) {
	checkIn, checkOut, err := validator.ValidateDateRange(checkInRaw, checkOutRaw, s.maxStayDays)
	if err != nil {
		return nil, err
	}

	var room models.Room
	if err := s.db.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewAppError(apperrors.ErrCodeRoomUnavailable,
				"Phòng không tồn tại hoặc không nhận đặt", err)
		}
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Không đọc được phòng", err)
	}
	if !room.Available {
		return nil, apperrors.NewAppError(apperrors.ErrCodeRoomUnavailable,
			"Phòng không tồn tại hoặc không nhận đặt", nil)
	}

	conflicts, err := CountConflicts(s.db, roomID, checkIn, checkOut)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "Không kiểm tra được trùng lịch", err)
	}

	resp := &dto.AvailabilityResponse{
		RoomID:    roomID,
		CheckIn:   checkInRaw,
		CheckOut:  checkOutRaw,
		Available: conflicts == 0,
	}
	if resp.Available {
		resp.Message = "Có thể đặt phòng"
	} else {
		resp.Message = "Khoảng ngày này đã có khách đặt"
	}
	return resp, nil
}
