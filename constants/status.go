package constants

// Booking status
const (
	BookingStatusConfirmed  = "confirmed"
	BookingStatusCheckedIn  = "checked_in"
	BookingStatusCheckedOut = "checked_out"
	BookingStatusCompleted  = "completed"
	BookingStatusCancelled  = "cancelled"
)

// Payment status
const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
)

// bookingTransitions định nghĩa state machine cho booking status.
// cancelled và completed là trạng thái cuối, không chuyển tiếp được nữa.
var bookingTransitions = map[string][]string{
	BookingStatusConfirmed:  {BookingStatusCheckedIn, BookingStatusCancelled},
	BookingStatusCheckedIn:  {BookingStatusCheckedOut, BookingStatusCancelled},
	BookingStatusCheckedOut: {BookingStatusCompleted},
	BookingStatusCompleted:  {},
	BookingStatusCancelled:  {},
}

// ConflictStatuses là các trạng thái được tính khi kiểm tra trùng lịch.
// Chính sách: chỉ confirmed và checked_in giữ phòng; cancelled, checked_out
// và completed không chặn booking mới.
var ConflictStatuses = []string{BookingStatusConfirmed, BookingStatusCheckedIn}

// IsValidBookingStatus kiểm tra status có hợp lệ không
func IsValidBookingStatus(status string) bool {
	_, ok := bookingTransitions[status]
	return ok
}

// IsValidPaymentStatus kiểm tra payment status có hợp lệ không
func IsValidPaymentStatus(status string) bool {
	switch status {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusRefunded:
		return true
	}
	return false
}

// CanTransition kiểm tra có được phép chuyển từ from sang to không
func CanTransition(from, to string) bool {
	for _, next := range bookingTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
