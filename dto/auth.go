package dto

// LoginRequest hỗ trợ cả form cũ (chỉ password) lẫn email + password
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse trả về token nếu là admin
type LoginResponse struct {
	IsAdmin bool   `json:"is_admin"`
	Token   string `json:"token,omitempty"`
}
