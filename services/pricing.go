package services

import "time"

// Nights tính số đêm giữa hai ngày lịch
func Nights(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}

// BillableNights là số đêm tính tiền, tối thiểu 1.
// Sàn 1 đêm là contract an toàn: kể cả khi một khoảng ngày cùng ngày hay
// đảo ngược lọt qua validation thì tiền phòng vẫn không bao giờ là 0 hay âm.
func BillableNights(checkIn, checkOut time.Time) int {
	nights := Nights(checkIn, checkOut)
	if nights < 1 {
		return 1
	}
	return nights
}

// TotalPrice = giá mỗi đêm × số đêm tính tiền
func TotalPrice(nightlyRate int, checkIn, checkOut time.Time) int {
	return nightlyRate * BillableNights(checkIn, checkOut)
}
