package services

import (
	"encoding/json"
	"log"

	"github.com/olahol/melody"

	"hotel-api/models"
	"hotel-api/validator"
)

// BookingEvent là payload đẩy qua websocket cho dashboard
type BookingEvent struct {
	Event      string `json:"event"`
	BookingID  uint   `json:"booking_id"`
	RoomID     uint   `json:"room_id"`
	GuestName  string `json:"guest_name"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	TotalPrice int    `json:"total_price"`
	Status     string `json:"status"`
}

// BroadcastBookingEvent đẩy sự kiện booking tới mọi client /ws.
// Lỗi broadcast chỉ log, không bao giờ làm fail request.
func BroadcastBookingEvent(m *melody.Melody, event string, b *models.Booking) {
	if m == nil {
		return
	}

	payload, err := json.Marshal(BookingEvent{
		Event:      event,
		BookingID:  b.ID,
		RoomID:     b.RoomID,
		GuestName:  b.GuestName,
		CheckIn:    b.CheckIn.Format(validator.DateLayout),
		CheckOut:   b.CheckOut.Format(validator.DateLayout),
		TotalPrice: b.TotalPrice,
		Status:     b.Status,
	})
	if err != nil {
		log.Printf("Lỗi marshal booking event: %v", err)
		return
	}

	if err := m.Broadcast(payload); err != nil {
		log.Printf("Lỗi broadcast booking event: %v", err)
	}
}
