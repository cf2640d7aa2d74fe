package controllers

import (
	"github.com/gin-gonic/gin"

	"hotel-api/response"
	"hotel-api/services"
)

// SearchController xử lý endpoint /api/search
type SearchController struct {
	search *services.SearchService
}

// NewSearchController tạo SearchController mới
func NewSearchController(search *services.SearchService) *SearchController {
	return &SearchController{search: search}
}

// Search tìm rooms và bookings theo từ khóa q
func (ctl *SearchController) Search(c *gin.Context) {
	result, err := ctl.search.Search(c.Query("q"))
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.Success(c, result)
}
