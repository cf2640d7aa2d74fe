package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "hotel-api/errors"
)

// Response định nghĩa cấu trúc response chung
type Response struct {
	Status     string      `json:"status"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Filters    interface{} `json:"filters,omitempty"`
}

// Pagination định nghĩa cấu trúc phân trang
type Pagination struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
}

// NewPagination tính total_pages = ceil(total / perPage)
func NewPagination(page, perPage int, total int64) *Pagination {
	totalPages := (total + int64(perPage) - 1) / int64(perPage)
	return &Pagination{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}
}

// Success trả về response thành công
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Status: "success",
		Data:   data,
	})
}

// SuccessWithMessage trả về response thành công kèm message
func SuccessWithMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

// Created trả về response 201 cho tài nguyên mới tạo
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

// SuccessWithPagination trả về response thành công có phân trang và filter echo
func SuccessWithPagination(c *gin.Context, data interface{}, pagination *Pagination, filters interface{}) {
	c.JSON(http.StatusOK, Response{
		Status:     "success",
		Data:       data,
		Pagination: pagination,
		Filters:    filters,
	})
}

// Raw trả về payload tự do nhưng vẫn giữ discriminator status
func Raw(c *gin.Context, code int, payload gin.H) {
	if _, ok := payload["status"]; !ok {
		payload["status"] = "success"
	}
	c.JSON(code, payload)
}

// BadRequest trả về response lỗi bad request
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Status:  "error",
		Message: message,
	})
}

// Unauthorized trả về response chưa xác thực
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Cần quyền quản trị"
	}
	c.JSON(http.StatusUnauthorized, Response{
		Status:  "error",
		Message: message,
	})
}

// NotFound trả về response không tìm thấy
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Không tìm thấy tài nguyên"
	}
	c.JSON(http.StatusNotFound, Response{
		Status:  "error",
		Message: message,
	})
}

// Conflict trả về response conflict (409)
func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, Response{
		Status:  "error",
		Message: message,
	})
}

// ServerError trả về response lỗi server, không lộ chi tiết nội bộ
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{
		Status:  "error",
		Message: "Lỗi server",
	})
}

// FromAppError map AppError sang response theo taxonomy lỗi.
// Lỗi DB không map được sẽ thành 500 với message chung.
func FromAppError(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	if appErr == nil {
		ServerError(c)
		return
	}

	status := appErr.HTTPStatus()
	if status == http.StatusInternalServerError {
		ServerError(c)
		return
	}

	c.JSON(status, Response{
		Status:  "error",
		Message: appErr.Message,
	})
}
