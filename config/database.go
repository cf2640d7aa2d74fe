package config

import (
	"fmt"
	"log"
	"time"

	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"hotel-api/constants"
	"hotel-api/models"
)

var DB *gorm.DB

func buildDSN() string {
	host := GetEnv("DB_HOST", "127.0.0.1")
	user := GetEnv("DB_USER", "postgres")
	password := GetEnv("DB_PASSWORD", "postgres")
	name := GetEnv("DB_NAME", "hotel_db")
	port := GetEnv("DB_PORT", "5432")
	sslmode := GetEnv("DB_SSLMODE", "disable")

	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		host, user, password, name, port, sslmode)
}

// ConnectDB kết nối Postgres và chạy migrate + seed
func ConnectDB() error {
	var err error
	DB, err = gorm.Open(postgres.Open(buildDSN()), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("fail to connect to db: %w", err)
	}

	if err := DB.AutoMigrate(
		&models.User{},
		&models.Room{},
		&models.Booking{},
	); err != nil {
		return fmt.Errorf("fail to migrate tables: %w", err)
	}

	SeedDatabase()

	log.Println("Kết nối database thành công")
	return nil
}

func mustParseDate(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		log.Fatalf("Error parsing date for seeding (%s): %v", value, err)
	}
	return t
}

// SeedDatabase chèn dữ liệu mẫu, bỏ qua nếu bảng đã có dữ liệu
func SeedDatabase() {
	// ---------------- Admin user ----------------
	var userCount int64
	DB.Model(&models.User{}).Count(&userCount)
	if userCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(GetEnv("ADMIN_PASSWORD", "admin123")), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default admin password: %v", err)
		} else {
			admin := models.User{
				Email:        "admin@hotel.local",
				PasswordHash: string(hash),
				Name:         "Admin User",
				IsAdmin:      true,
			}
			if err := DB.Create(&admin).Error; err != nil {
				log.Printf("warning: failed to create default admin: %v", err)
			} else {
				log.Println("Default admin seeded")
			}
		}
	}

	// ---------------- Rooms ----------------
	var roomCount int64
	DB.Model(&models.Room{}).Count(&roomCount)
	if roomCount == 0 {
		rooms := []models.Room{
			{Name: "Deluxe Sea View Double", Type: "double", Price: 4200, Capacity: 2,
				Description: "Ban công hướng biển 180 độ, bao gồm ăn sáng và trà chiều",
				Amenities:   pq.StringArray{"wifi", "breakfast", "sea_view", "bathtub"},
				Images:      pq.StringArray{"room1.jpg", "room2.jpg"},
				Available:   true, Featured: true, Rating: 4.8},
			{Name: "Executive Suite", Type: "suite", Price: 6800, Capacity: 2,
				Description: "Phòng khách và khu làm việc riêng, quyền lợi executive lounge",
				Amenities:   pq.StringArray{"wifi", "breakfast", "executive_lounge", "workspace"},
				Images:      pq.StringArray{"suite1.jpg"},
				Available:   true, Featured: true, Rating: 4.9},
			{Name: "Family Connecting Room", Type: "family", Price: 8500, Capacity: 4,
				Description: "Hai phòng thông nhau, phù hợp gia đình",
				Amenities:   pq.StringArray{"wifi", "breakfast", "family", "connecting"},
				Images:      pq.StringArray{"family1.jpg"},
				Available:   true, Featured: false, Rating: 4.7},
			{Name: "Standard Twin", Type: "twin", Price: 2800, Capacity: 2,
				Description: "Hai giường đơn, thiết kế tối giản",
				Amenities:   pq.StringArray{"wifi", "tv", "desk"},
				Images:      pq.StringArray{"standard1.jpg"},
				Available:   true, Featured: false, Rating: 4.3},
			{Name: "Business Single", Type: "single", Price: 2200, Capacity: 1,
				Description: "Không gian làm việc hiệu quả, mạng tốc độ cao",
				Amenities:   pq.StringArray{"wifi", "workspace", "coffee"},
				Images:      pq.StringArray{"business1.jpg"},
				Available:   true, Featured: false, Rating: 4.4},
			{Name: "Presidential Suite", Type: "suite", Price: 18800, Capacity: 2,
				Description: "Quản gia riêng, sân hiên và bồn sục riêng",
				Amenities:   pq.StringArray{"wifi", "butler", "jacuzzi", "terrace", "luxury"},
				Images:      pq.StringArray{"president1.jpg", "president2.jpg"},
				Available:   true, Featured: true, Rating: 5.0},
		}
		if err := DB.Create(&rooms).Error; err != nil {
			log.Printf("warning: failed to seed rooms: %v", err)
		} else {
			log.Println("Rooms seeded")
		}

		bookings := []models.Booking{
			{RoomID: rooms[0].ID, GuestName: "Trần Đại Minh", GuestEmail: "minh@example.com", GuestPhone: "0912345678",
				CheckIn: mustParseDate("2024-01-15"), CheckOut: mustParseDate("2024-01-18"),
				Nights: 3, Guests: 2, TotalPrice: 12600,
				Status: constants.BookingStatusConfirmed, PaymentStatus: constants.PaymentStatusPaid},
			{RoomID: rooms[2].ID, GuestName: "Lâm Tiểu Mỹ", GuestEmail: "my@example.com", GuestPhone: "0922333444",
				CheckIn: mustParseDate("2024-01-20"), CheckOut: mustParseDate("2024-01-25"),
				Nights: 5, Guests: 4, TotalPrice: 42500,
				Status: constants.BookingStatusConfirmed, PaymentStatus: constants.PaymentStatusPending},
			{RoomID: rooms[4].ID, GuestName: "Vương Kiến Quốc", GuestEmail: "quoc@example.com", GuestPhone: "0933555777",
				CheckIn: mustParseDate("2024-02-01"), CheckOut: mustParseDate("2024-02-03"),
				Nights: 2, Guests: 1, TotalPrice: 4400,
				Status: constants.BookingStatusCompleted, PaymentStatus: constants.PaymentStatusPaid},
		}
		if err := DB.Create(&bookings).Error; err != nil {
			log.Printf("warning: failed to seed bookings: %v", err)
		} else {
			log.Println("Bookings seeded")
		}
	}
}
