package models

import (
	"time"

	"hotel-api/constants"
)

type Booking struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	RoomID          uint      `json:"roomId" gorm:"index;not null"`
	Room            Room      `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	GuestName       string    `json:"guestName" gorm:"not null"`
	GuestEmail      string    `json:"guestEmail" gorm:"index;not null"`
	GuestPhone      string    `json:"guestPhone,omitempty"`
	CheckIn         time.Time `json:"checkIn" gorm:"index;not null"`
	CheckOut        time.Time `json:"checkOut" gorm:"index;not null"`
	Nights          int       `json:"nights"`
	Guests          int       `json:"guests" gorm:"default:1"`
	TotalPrice      int       `json:"totalPrice"`
	Status          string    `json:"status" gorm:"size:32;default:confirmed;index"`
	PaymentStatus   string    `json:"paymentStatus" gorm:"size:32;default:pending"`
	PaymentMethod   string    `json:"paymentMethod" gorm:"size:32;default:credit_card"`
	SpecialRequests string    `json:"specialRequests,omitempty"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// IsTerminal cho biết booking đã ở trạng thái cuối chưa
func (b *Booking) IsTerminal() bool {
	return b.Status == constants.BookingStatusCancelled || b.Status == constants.BookingStatusCompleted
}

// HoldsRoom cho biết booking này có đang giữ phòng (tính vào conflict) không
func (b *Booking) HoldsRoom() bool {
	for _, s := range constants.ConflictStatuses {
		if b.Status == s {
			return true
		}
	}
	return false
}
