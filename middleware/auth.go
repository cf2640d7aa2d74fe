package middleware

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-api/config"
	"hotel-api/errors"
	"hotel-api/response"
	"hotel-api/services"
)

// AdminIdentity là danh tính admin sau khi xác thực thành công
type AdminIdentity struct {
	UserID uint
	Via    string
}

// Authorizer xác thực request admin, trả về danh tính hoặc lỗi.
// Cho phép thay cơ chế xác thực mà không sửa middleware.
type Authorizer interface {
	Authorize(c *gin.Context) (*AdminIdentity, error)
}

// SecretAuthorizer so khớp secret qua query `password` hoặc header X-API-Key
type SecretAuthorizer struct {
	hash string
}

// NewSecretAuthorizer đọc hash admin từ config
func NewSecretAuthorizer() *SecretAuthorizer {
	return &SecretAuthorizer{hash: config.AdminPasswordHash()}
}

func (a *SecretAuthorizer) Authorize(c *gin.Context) (*AdminIdentity, error) {
	secret := c.Query("password")
	if secret == "" {
		secret = c.GetHeader("X-API-Key")
	}
	if secret == "" {
		return nil, errors.NewAppError(errors.ErrCodeUnauthorized, "Cần quyền quản trị", nil)
	}

	sum := sha256.Sum256([]byte(secret))
	given := hex.EncodeToString(sum[:])
	if subtle.ConstantTimeCompare([]byte(given), []byte(a.hash)) != 1 {
		return nil, errors.NewAppError(errors.ErrCodeUnauthorized, "Sai mật khẩu quản trị", nil)
	}
	return &AdminIdentity{Via: "secret"}, nil
}

// TokenAuthorizer xác thực Bearer token ký bằng secret của server
type TokenAuthorizer struct{}

// NewTokenAuthorizer tạo TokenAuthorizer mới
func NewTokenAuthorizer() *TokenAuthorizer {
	return &TokenAuthorizer{}
}

func (a *TokenAuthorizer) Authorize(c *gin.Context) (*AdminIdentity, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, errors.NewAppError(errors.ErrCodeUnauthorized, "Cần quyền quản trị", nil)
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	claims, err := services.ParseAdminToken(tokenString)
	if err != nil {
		return nil, err
	}
	return &AdminIdentity{UserID: claims.UserID, Via: "token"}, nil
}

// ChainAuthorizer thử lần lượt từng authorizer, đậu cái nào dùng cái đó
type ChainAuthorizer struct {
	authorizers []Authorizer
}

// NewChainAuthorizer gom nhiều authorizer thành một
func NewChainAuthorizer(authorizers ...Authorizer) *ChainAuthorizer {
	return &ChainAuthorizer{authorizers: authorizers}
}

func (a *ChainAuthorizer) Authorize(c *gin.Context) (*AdminIdentity, error) {
	var lastErr error
	for _, auth := range a.authorizers {
		identity, err := auth.Authorize(c)
		if err == nil {
			return identity, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = errors.NewAppError(errors.ErrCodeUnauthorized, "Cần quyền quản trị", nil)
	}
	return nil, lastErr
}

// AdminRequired chặn request chưa xác thực admin
func AdminRequired(authorizer Authorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := authorizer.Authorize(c)
		if err != nil {
			message := ""
			if appErr := errors.GetAppError(err); appErr != nil {
				message = appErr.Message
			}
			response.Unauthorized(c, message)
			c.Abort()
			return
		}

		c.Set("adminID", identity.UserID)
		c.Set("authVia", identity.Via)
		c.Next()
	}
}
