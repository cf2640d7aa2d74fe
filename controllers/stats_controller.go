package controllers

import (
	"github.com/gin-gonic/gin"

	"hotel-api/response"
	"hotel-api/services"
)

// StatsController xử lý endpoint /api/stats
type StatsController struct {
	stats *services.StatsService
}

// NewStatsController tạo StatsController mới
func NewStatsController(stats *services.StatsService) *StatsController {
	return &StatsController{stats: stats}
}

// Summary trả về thống kê tổng hợp phòng và booking
func (ctl *StatsController) Summary(c *gin.Context) {
	stats, err := ctl.stats.Summary()
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.Success(c, stats)
}
