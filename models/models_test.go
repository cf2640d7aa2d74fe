package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hotel-api/constants"
)

func TestRoomValidate(t *testing.T) {
	room := Room{Name: "Deluxe", Price: 4200, Capacity: 2, Rating: 4.5}
	assert.NoError(t, room.Validate())

	room.Price = 0
	assert.Error(t, room.Validate())

	room = Room{Name: "Deluxe", Price: 4200, Capacity: 0, Rating: 4.5}
	assert.Error(t, room.Validate())

	room = Room{Name: "Deluxe", Price: 4200, Capacity: 2, Rating: 5.5}
	assert.Error(t, room.Validate())

	room = Room{Name: "Deluxe", Price: 4200, Capacity: 2, Rating: 0}
	assert.NoError(t, room.Validate())
}

func TestBookingIsTerminal(t *testing.T) {
	booking := Booking{Status: constants.BookingStatusConfirmed}
	assert.False(t, booking.IsTerminal())

	booking.Status = constants.BookingStatusCancelled
	assert.True(t, booking.IsTerminal())

	booking.Status = constants.BookingStatusCompleted
	assert.True(t, booking.IsTerminal())
}

func TestBookingHoldsRoom(t *testing.T) {
	for status, want := range map[string]bool{
		constants.BookingStatusConfirmed:  true,
		constants.BookingStatusCheckedIn:  true,
		constants.BookingStatusCheckedOut: false,
		constants.BookingStatusCompleted:  false,
		constants.BookingStatusCancelled:  false,
	} {
		booking := Booking{Status: status}
		assert.Equal(t, want, booking.HoldsRoom(), status)
	}
}
