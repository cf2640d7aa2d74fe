package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func TestNights(t *testing.T) {
	assert.Equal(t, 3, Nights(date("2026-09-10"), date("2026-09-13")))
	assert.Equal(t, 1, Nights(date("2026-09-10"), date("2026-09-11")))
	assert.Equal(t, 0, Nights(date("2026-09-10"), date("2026-09-10")))
	assert.Equal(t, -2, Nights(date("2026-09-12"), date("2026-09-10")))
}

func TestBillableNightsFloor(t *testing.T) {
	// Không bao giờ dưới 1 đêm, kể cả khoảng ngày rỗng hay đảo ngược
	assert.Equal(t, 1, BillableNights(date("2026-09-10"), date("2026-09-10")))
	assert.Equal(t, 1, BillableNights(date("2026-09-12"), date("2026-09-10")))
	assert.Equal(t, 5, BillableNights(date("2026-09-10"), date("2026-09-15")))
}

func TestTotalPrice(t *testing.T) {
	assert.Equal(t, 12600, TotalPrice(4200, date("2026-01-15"), date("2026-01-18")))
	assert.Equal(t, 4200, TotalPrice(4200, date("2026-01-15"), date("2026-01-16")))
	// Sàn 1 đêm giữ tổng tiền luôn dương
	assert.Equal(t, 4200, TotalPrice(4200, date("2026-01-15"), date("2026-01-15")))
}
