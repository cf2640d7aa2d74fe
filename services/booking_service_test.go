package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hotel-api/constants"
	"hotel-api/models"
)

func TestToBookingResponse(t *testing.T) {
	booking := models.Booking{
		ID:     12,
		RoomID: 3,
		Room: models.Room{
			ID:    3,
			Name:  "Executive Suite",
			Price: 6800,
		},
		GuestName:     "Trần Đại Minh",
		GuestEmail:    "minh@example.com",
		CheckIn:       date("2026-09-10"),
		CheckOut:      date("2026-09-13"),
		Nights:        3,
		Guests:        2,
		TotalPrice:    20400,
		Status:        constants.BookingStatusConfirmed,
		PaymentStatus: constants.PaymentStatusPending,
		PaymentMethod: "credit_card",
	}

	resp := ToBookingResponse(&booking)

	assert.Equal(t, uint(12), resp.ID)
	assert.Equal(t, "Executive Suite", resp.RoomName)
	assert.Equal(t, 6800, resp.RoomPrice)
	assert.Equal(t, "2026-09-10", resp.CheckIn)
	assert.Equal(t, "2026-09-13", resp.CheckOut)
	assert.Equal(t, 20400, resp.TotalPrice)
	assert.Equal(t, constants.BookingStatusConfirmed, resp.Status)
}

func TestBroadcastBookingEventNilHub(t *testing.T) {
	booking := models.Booking{ID: 1, CheckIn: date("2026-09-10"), CheckOut: date("2026-09-12")}
	// Hub chưa khởi tạo thì bỏ qua, không panic
	assert.NotPanics(t, func() {
		BroadcastBookingEvent(nil, "booking.created", &booking)
	})
}
