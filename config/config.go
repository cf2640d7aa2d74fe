package config

import (
	"crypto/sha256"
	"encoding/hex"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/joho/godotenv"
)

var Cloudinary *cloudinary.Cloudinary

// LoadEnv nạp biến môi trường từ tệp .env nếu có
func LoadEnv() error {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}
	return nil
}

// GetEnv đọc biến môi trường, rỗng thì trả về def
func GetEnv(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

// GetEnvInt đọc biến môi trường dạng int, lỗi thì trả về def
func GetEnvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return value
}

// SecretKey dùng để ký JWT cho admin token
func SecretKey() string {
	return GetEnv("SECRET_KEY", "dev-secret-key")
}

// AdminPasswordHash trả về SHA-256 hex của mật khẩu admin được cấu hình.
// So sánh luôn đi qua hash, không giữ plaintext trong bộ nhớ lâu hơn cần thiết.
func AdminPasswordHash() string {
	sum := sha256.Sum256([]byte(GetEnv("ADMIN_PASSWORD", "admin123")))
	return hex.EncodeToString(sum[:])
}

// MaxStayDays là số đêm tối đa cho một booking
func MaxStayDays() int {
	return GetEnvInt("MAX_STAY_DAYS", 30)
}

// ConnectCloudinary khởi tạo Cloudinary client để upload ảnh phòng.
// Không cấu hình thì bỏ qua, endpoint upload ảnh sẽ báo lỗi rõ ràng.
func ConnectCloudinary() {
	cloudName := GetEnv("CLOUDINARY_CLOUD_NAME", "")
	apiKey := GetEnv("CLOUDINARY_API_KEY", "")
	apiSecret := GetEnv("CLOUDINARY_API_SECRET", "")
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		log.Println("Cloudinary chưa được cấu hình, bỏ qua")
		return
	}

	var err error
	Cloudinary, err = cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		log.Fatalf("Lỗi khi khởi tạo Cloudinary: %v", err)
	}
	log.Println("Kết nối Cloudinary thành công")
}
