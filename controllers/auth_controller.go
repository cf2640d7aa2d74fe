package controllers

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hotel-api/config"
	"hotel-api/dto"
	"hotel-api/models"
	"hotel-api/response"
	"hotel-api/services"
)

// AuthController xử lý đăng nhập admin
type AuthController struct {
	db *gorm.DB
}

// NewAuthController tạo AuthController mới
func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{db: db}
}

// Login hỗ trợ hai dạng: chỉ password (so với secret admin) hoặc
// email + password (so với bảng users). Đăng nhập admin thành công
// thì trả kèm token Bearer.
func (ctl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Thiếu password")
		return
	}

	if req.Email == "" {
		ctl.loginWithSecret(c, req.Password)
		return
	}
	ctl.loginWithUser(c, req.Email, req.Password)
}

func (ctl *AuthController) loginWithSecret(c *gin.Context, password string) {
	sum := sha256.Sum256([]byte(password))
	given := hex.EncodeToString(sum[:])
	if subtle.ConstantTimeCompare([]byte(given), []byte(config.AdminPasswordHash())) != 1 {
		response.Unauthorized(c, "Sai mật khẩu")
		return
	}

	token, err := services.IssueAdminToken(0)
	if err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, dto.LoginResponse{IsAdmin: true, Token: token})
}

func (ctl *AuthController) loginWithUser(c *gin.Context, email, password string) {
	var user models.User
	if err := ctl.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Unauthorized(c, "Email hoặc mật khẩu không đúng")
			return
		}
		response.ServerError(c)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		response.Unauthorized(c, "Email hoặc mật khẩu không đúng")
		return
	}

	resp := dto.LoginResponse{IsAdmin: user.IsAdmin}
	if user.IsAdmin {
		token, err := services.IssueAdminToken(user.ID)
		if err != nil {
			response.ServerError(c)
			return
		}
		resp.Token = token
	}
	response.Success(c, resp)
}
