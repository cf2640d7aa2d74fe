package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hotel-api/models"
	"hotel-api/response"
)

// SystemController xử lý các endpoint hệ thống: home, ping, health
type SystemController struct {
	db      *gorm.DB
	version string
}

// NewSystemController tạo SystemController mới
func NewSystemController(db *gorm.DB, version string) *SystemController {
	return &SystemController{db: db, version: version}
}

// Home trả về tài liệu tóm tắt các endpoint của API
func (ctl *SystemController) Home(c *gin.Context) {
	response.Raw(c, http.StatusOK, gin.H{
		"name":    "Hotel Booking API",
		"version": ctl.version,
		"endpoints": gin.H{
			"rooms": gin.H{
				"list":      "GET /api/rooms",
				"detail":    "GET /api/rooms/:id",
				"available": "GET /api/rooms/available?check_in=&check_out=&guests=",
				"create":    "POST /api/rooms (admin)",
				"update":    "PUT /api/rooms/:id (admin)",
				"delete":    "DELETE /api/rooms/:id (admin)",
				"images":    "POST /api/rooms/:id/images (admin)",
			},
			"bookings": gin.H{
				"create":       "POST /api/bookings",
				"list":         "GET /api/bookings",
				"detail":       "GET /api/bookings/:id",
				"update":       "PUT /api/bookings/:id",
				"status":       "PUT /api/bookings/:id/status",
				"cancel":       "DELETE /api/bookings/:id (admin)",
				"availability": "GET /api/bookings/check-availability?room_id=&check_in=&check_out=",
			},
			"other": gin.H{
				"login":  "POST /api/login",
				"stats":  "GET /api/stats",
				"search": "GET /api/search?q=",
				"health": "GET /api/health",
				"ws":     "GET /ws",
			},
		},
	})
}

// Ping kiểm tra server còn sống
func (ctl *SystemController) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// Health kiểm tra kết nối DB và đếm số dòng chính.
// Store lỗi thì trả 500 kèm trạng thái unhealthy.
func (ctl *SystemController) Health(c *gin.Context) {
	timestamp := time.Now().UTC().Format(time.RFC3339)

	sqlDB, err := ctl.db.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":    "unhealthy",
			"database":  "disconnected",
			"timestamp": timestamp,
		})
		return
	}

	var roomCount, bookingCount int64
	if err := ctl.db.Model(&models.Room{}).Count(&roomCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":    "unhealthy",
			"database":  "error",
			"timestamp": timestamp,
		})
		return
	}
	if err := ctl.db.Model(&models.Booking{}).Count(&bookingCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":    "unhealthy",
			"database":  "error",
			"timestamp": timestamp,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"database":  "connected",
		"rooms":     roomCount,
		"bookings":  bookingCount,
		"timestamp": timestamp,
	})
}
