package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-api/builders"
	"hotel-api/dto"
	"hotel-api/response"
	"hotel-api/services"
)

// BookingController xử lý các endpoint /api/bookings
type BookingController struct {
	bookings *services.BookingService
}

// NewBookingController tạo BookingController mới
func NewBookingController(bookings *services.BookingService) *BookingController {
	return &BookingController{bookings: bookings}
}

// Create tạo booking mới, giá và số đêm do server tính
func (ctl *BookingController) Create(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}

	booking, err := ctl.bookings.Create(&req)
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.Created(c, "Đặt phòng thành công", booking)
}

// List trả về danh sách booking theo filter, mới nhất trước
func (ctl *BookingController) List(c *gin.Context) {
	q := builders.ParseBookingQuery(c.Request.URL.Query())

	bookings, total, err := ctl.bookings.List(q)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	response.SuccessWithPagination(c, bookings,
		response.NewPagination(q.Page, q.PerPage, total), q.Filters())
}

// Get trả về một booking theo id
func (ctl *BookingController) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	booking, err := ctl.bookings.GetByID(id)
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.Success(c, booking)
}

// Update sửa các field thuộc về khách; phòng và ngày giữ nguyên
func (ctl *BookingController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}

	booking, err := ctl.bookings.UpdateGuestFields(id, &req)
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.SuccessWithMessage(c, "Đã cập nhật booking", booking)
}

// UpdateStatus chuyển trạng thái booking theo state machine
func (ctl *BookingController) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}

	booking, err := ctl.bookings.UpdateStatus(id, &req)
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.SuccessWithMessage(c, "Đã chuyển trạng thái booking", booking)
}

// Delete hủy booking (admin). Soft delete, bản ghi giữ nguyên với status cancelled.
func (ctl *BookingController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	booking, err := ctl.bookings.Cancel(id)
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.SuccessWithMessage(c, "Đã hủy booking", booking)
}

// CheckAvailability kiểm tra một phòng trống trong khoảng ngày
func (ctl *BookingController) CheckAvailability(c *gin.Context) {
	roomID, err := strconv.ParseUint(c.Query("room_id"), 10, 32)
	if err != nil || roomID == 0 {
		response.BadRequest(c, "room_id không hợp lệ")
		return
	}

	result, err := ctl.bookings.CheckAvailability(uint(roomID), c.Query("check_in"), c.Query("check_out"))
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.Success(c, result)
}
