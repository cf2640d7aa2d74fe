package jobs

import (
	"log"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"hotel-api/constants"
	"hotel-api/models"
	"hotel-api/services"
	"hotel-api/validator"
)

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, db *gorm.DB, m *melody.Melody) error {
	// 0h mỗi ngày: chốt các booking đã trả phòng thành completed
	_, err := c.AddFunc("0 0 * * *", func() {
		if err := CompleteFinishedBookings(db, m); err != nil {
			log.Printf("Lỗi chốt booking đã trả phòng: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}

// CompleteFinishedBookings chuyển các booking checked_out có ngày trả phòng
// đã qua sang completed. Chỉ checked_out mới đủ điều kiện, đúng state machine.
func CompleteFinishedBookings(db *gorm.DB, m *melody.Melody) error {
	today := validator.Today()

	var finished []models.Booking
	err := db.Where("status = ? AND check_out < ?", constants.BookingStatusCheckedOut, today).
		Find(&finished).Error
	if err != nil {
		return err
	}
	if len(finished) == 0 {
		return nil
	}

	ids := make([]uint, 0, len(finished))
	for _, b := range finished {
		ids = append(ids, b.ID)
	}

	err = db.Model(&models.Booking{}).
		Where("id IN ?", ids).
		Update("status", constants.BookingStatusCompleted).Error
	if err != nil {
		return err
	}

	log.Printf("Đã chốt %d booking sang completed", len(finished))
	for i := range finished {
		finished[i].Status = constants.BookingStatusCompleted
		services.BroadcastBookingEvent(m, "booking.completed", &finished[i])
	}
	return nil
}
