package validator

import (
	"strconv"
	"strings"
	"time"

	"hotel-api/dto"
	"hotel-api/errors"
)

// DateLayout là định dạng ngày duy nhất của API.
// Ngày được hiểu là ngày lịch, không có giờ, parse theo UTC.
const DateLayout = "2006-01-02"

// ParseDate parse chuỗi ngày YYYY-MM-DD
func ParseDate(raw string) (time.Time, error) {
	parsed, err := time.Parse(DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidDate,
			"Định dạng ngày sai, vui lòng dùng YYYY-MM-DD", err)
	}
	return parsed, nil
}

// Today trả về ngày hiện tại theo UTC, đã cắt bỏ giờ
func Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// ValidateDateRange kiểm tra khoảng ngày đặt phòng:
// check-in không ở quá khứ, check-out phải sau check-in,
// tổng số đêm không vượt maxDays.
func ValidateDateRange(checkInRaw, checkOutRaw string, maxDays int) (time.Time, time.Time, error) {
	checkIn, err := ParseDate(checkInRaw)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	checkOut, err := ParseDate(checkOutRaw)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	if checkIn.Before(Today()) {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidDate,
			"Ngày nhận phòng không được là ngày quá khứ", nil)
	}
	if !checkOut.After(checkIn) {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidDate,
			"Ngày trả phòng phải sau ngày nhận phòng", nil)
	}
	if int(checkOut.Sub(checkIn).Hours()/24) > maxDays {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidDate,
			"Số đêm lưu trú không được vượt quá "+strconv.Itoa(maxDays)+" đêm", nil)
	}

	return checkIn, checkOut, nil
}

// ValidateCreateRoom kiểm tra payload tạo phòng ngoài phần binding tag đã lo
func ValidateCreateRoom(req *dto.CreateRoomRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên phòng không được để trống", nil)
	}
	if req.Price <= 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Giá phòng phải là số dương", nil)
	}
	if req.Capacity != nil && *req.Capacity <= 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Sức chứa phải là số dương", nil)
	}
	return nil
}

// ValidateUpdateRoom kiểm tra payload cập nhật phòng
func ValidateUpdateRoom(req *dto.UpdateRoomRequest) error {
	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		if trimmed == "" {
			return errors.NewAppError(errors.ErrCodeRequiredField, "Tên phòng không được để trống", nil)
		}
		req.Name = &trimmed
	}
	if req.Price != nil && *req.Price <= 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Giá phòng phải là số dương", nil)
	}
	if req.Capacity != nil && *req.Capacity <= 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Sức chứa phải là số dương", nil)
	}
	if req.Rating != nil && (*req.Rating < 0 || *req.Rating > 5) {
		return errors.NewAppError(errors.ErrCodeValidation, "Rating phải nằm trong khoảng 0-5", nil)
	}
	return nil
}
