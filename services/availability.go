package services

import (
	"time"

	"gorm.io/gorm"

	"hotel-api/constants"
	"hotel-api/models"
)

// Overlaps kiểm tra hai khoảng nửa hở [aIn, aOut) và [bIn, bOut) có giao nhau không.
// Checkout và check-in cùng ngày không tính là trùng.
func Overlaps(aIn, aOut, bIn, bOut time.Time) bool {
	return aIn.Before(bOut) && bIn.Before(aOut)
}

// CountConflicts đếm số booking đang giữ phòng trùng với khoảng [checkIn, checkOut).
// Chỉ các trạng thái trong constants.ConflictStatuses được tính;
// booking đã cancel trả phòng lại cho khách khác.
func CountConflicts(tx *gorm.DB, roomID uint, checkIn, checkOut time.Time) (int64, error) {
	var count int64
	err := tx.Model(&models.Booking{}).
		Where("room_id = ?", roomID).
		Where("status IN ?", constants.ConflictStatuses).
		Where("check_in < ? AND check_out > ?", checkOut, checkIn).
		Count(&count).Error
	return count, err
}

// BusyRoomIDs trả về id các phòng có booking giữ chỗ trong khoảng ngày
func BusyRoomIDs(tx *gorm.DB, checkIn, checkOut time.Time) ([]uint, error) {
	var ids []uint
	err := tx.Model(&models.Booking{}).
		Distinct("room_id").
		Where("status IN ?", constants.ConflictStatuses).
		Where("check_in < ? AND check_out > ?", checkOut, checkIn).
		Pluck("room_id", &ids).Error
	return ids, err
}
