package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                 string
		aIn, aOut, bIn, bOut string
		want                 bool
	}{
		{"trùng hoàn toàn", "2026-09-10", "2026-09-13", "2026-09-10", "2026-09-13", true},
		{"giao một phần", "2026-09-10", "2026-09-13", "2026-09-12", "2026-09-15", true},
		{"bao trùm", "2026-09-10", "2026-09-20", "2026-09-12", "2026-09-14", true},
		{"trùng một đêm", "2026-09-10", "2026-09-13", "2026-09-12", "2026-09-13", true},
		{"rời nhau hẳn", "2026-09-10", "2026-09-13", "2026-09-20", "2026-09-22", false},
		// Khoảng nửa hở: trả phòng và nhận phòng cùng ngày không trùng
		{"checkout trùng checkin", "2026-09-10", "2026-09-13", "2026-09-13", "2026-09-15", false},
		{"checkin trùng checkout", "2026-09-13", "2026-09-15", "2026-09-10", "2026-09-13", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(date(tt.aIn), date(tt.aOut), date(tt.bIn), date(tt.bOut))
			assert.Equal(t, tt.want, got)
		})
	}
}
