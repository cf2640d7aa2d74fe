package services

import (
	"time"

	"github.com/dgrijalva/jwt-go"

	"hotel-api/config"
	"hotel-api/errors"
)

// AdminClaims là claims trong token admin
type AdminClaims struct {
	UserID  uint `json:"userid"`
	IsAdmin bool `json:"is_admin"`
	jwt.StandardClaims
}

// IssueAdminToken ký token admin có hạn 24h
func IssueAdminToken(userID uint) (string, error) {
	claims := AdminClaims{
		UserID:  userID,
		IsAdmin: true,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(24 * time.Hour).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.SecretKey()))
}

// ParseAdminToken xác thực chữ ký và trả về claims.
// Token không verify được hoặc hết hạn đều bị từ chối.
func ParseAdminToken(tokenString string) (*AdminClaims, error) {
	claims := &AdminClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Thuật toán ký không hợp lệ", nil)
		}
		return []byte(config.SecretKey()), nil
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Token không hợp lệ", err)
	}
	if !token.Valid || !claims.IsAdmin {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Token không hợp lệ", nil)
	}
	return claims, nil
}
