package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"hotel-api/builders"
	"hotel-api/config"
	"hotel-api/dto"
	"hotel-api/models"
	"hotel-api/response"
	"hotel-api/services"
	"hotel-api/validator"
)

// RoomController xử lý các endpoint /api/rooms
type RoomController struct {
	rooms *services.RoomService
	rdb   *redis.Client
}

// NewRoomController tạo RoomController mới
func NewRoomController(rooms *services.RoomService, rdb *redis.Client) *RoomController {
	return &RoomController{rooms: rooms, rdb: rdb}
}

// cachedRoomList là payload cache cho listing mặc định
type cachedRoomList struct {
	Rooms []models.Room `json:"rooms"`
	Total int64         `json:"total"`
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		response.BadRequest(c, "ID không hợp lệ")
		return 0, false
	}
	return uint(id), true
}

// List trả về danh sách phòng theo filter/sort/pagination.
// Request không có query param nào thì đi qua cache Redis.
func (ctl *RoomController) List(c *gin.Context) {
	q := builders.ParseRoomQuery(c.Request.URL.Query())
	useCache := ctl.rdb != nil && c.Request.URL.RawQuery == ""

	if useCache {
		var cached cachedRoomList
		if err := services.GetFromRedis(config.Ctx, ctl.rdb, services.CacheKeyRooms, &cached); err == nil {
			response.SuccessWithPagination(c, cached.Rooms,
				response.NewPagination(q.Page, q.PerPage, cached.Total), q.Filters())
			return
		}
	}

	rooms, total, err := ctl.rooms.List(q)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	if useCache {
		_ = services.SetToRedis(config.Ctx, ctl.rdb, services.CacheKeyRooms,
			cachedRoomList{Rooms: rooms, Total: total}, 5*time.Minute)
	}

	response.SuccessWithPagination(c, rooms,
		response.NewPagination(q.Page, q.PerPage, total), q.Filters())
}

// Get trả về một phòng theo id
func (ctl *RoomController) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	room, err := ctl.rooms.GetByID(id)
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.Success(c, room)
}

// Available trả về các phòng còn trống trong khoảng ngày, kèm tổng giá tính sẵn
func (ctl *RoomController) Available(c *gin.Context) {
	checkInRaw := c.Query("check_in")
	checkOutRaw := c.Query("check_out")
	if checkInRaw == "" || checkOutRaw == "" {
		response.BadRequest(c, "check_in và check_out là bắt buộc")
		return
	}

	guests := 1
	if parsed, err := strconv.Atoi(c.Query("guests")); err == nil && parsed > 0 {
		guests = parsed
	}

	checkIn, checkOut, err := validator.ValidateDateRange(checkInRaw, checkOutRaw, config.MaxStayDays())
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	rooms, err := ctl.rooms.ListAvailable(checkIn, checkOut, guests)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	nights := services.BillableNights(checkIn, checkOut)
	results := make([]dto.AvailableRoomResponse, 0, len(rooms))
	for _, room := range rooms {
		results = append(results, dto.AvailableRoomResponse{
			Room:       room,
			TotalPrice: services.TotalPrice(room.Price, checkIn, checkOut),
			Nights:     nights,
			CheckIn:    checkInRaw,
			CheckOut:   checkOutRaw,
		})
	}

	response.Success(c, results)
}

// Create tạo phòng mới (admin)
func (ctl *RoomController) Create(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}

	room, err := ctl.rooms.Create(&req)
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.Created(c, "Đã tạo phòng", room)
}

// Update cập nhật phòng (admin), chỉ các cột cho phép
func (ctl *RoomController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}

	room, err := ctl.rooms.Update(id, &req)
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.SuccessWithMessage(c, "Đã cập nhật phòng", room)
}

// Delete xóa phòng (admin); phòng còn booking thì trả 409
func (ctl *RoomController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctl.rooms.Delete(id); err != nil {
		response.FromAppError(c, err)
		return
	}
	response.SuccessWithMessage(c, "Đã xóa phòng", nil)
}

// UploadImage nhận file ảnh, đẩy lên Cloudinary rồi gắn URL vào phòng (admin)
func (ctl *RoomController) UploadImage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		response.BadRequest(c, "Thiếu file ảnh")
		return
	}

	url, err := services.UploadRoomImage(c.Request.Context(), file)
	if err != nil {
		response.FromAppError(c, err)
		return
	}

	room, err := ctl.rooms.AppendImage(id, url)
	if err != nil {
		response.FromAppError(c, err)
		return
	}
	response.SuccessWithMessage(c, "Đã thêm ảnh phòng", room)
}
