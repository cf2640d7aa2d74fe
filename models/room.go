package models

import (
	"fmt"
	"time"

	"github.com/lib/pq"
)

type Room struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"not null"`
	Type        string         `json:"type" gorm:"index"`
	Price       int            `json:"price" gorm:"not null"`
	Description string         `json:"description"`
	Capacity    int            `json:"capacity" gorm:"default:2"`
	Amenities   pq.StringArray `json:"amenities" gorm:"type:text[]"`
	Images      pq.StringArray `json:"images" gorm:"type:text[]"`
	Available   bool           `json:"available" gorm:"default:true"`
	Featured    bool           `json:"featured" gorm:"default:false"`
	Rating      float64        `json:"rating" gorm:"default:4.5"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`

	Bookings []Booking `json:"-" gorm:"foreignKey:RoomID"`
}

// Validate kiểm tra invariant của Room: price > 0, capacity > 0
func (r *Room) Validate() error {
	if r.Price <= 0 {
		return fmt.Errorf("invalid price: %d, must be positive", r.Price)
	}
	if r.Capacity <= 0 {
		return fmt.Errorf("invalid capacity: %d, must be positive", r.Capacity)
	}
	if r.Rating < 0 || r.Rating > 5 {
		return fmt.Errorf("invalid rating: %.1f, must be between 0 and 5", r.Rating)
	}
	return nil
}
