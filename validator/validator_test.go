package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-api/dto"
	"hotel-api/errors"
)

func futureDate(days int) string {
	return Today().AddDate(0, 0, days).Format(DateLayout)
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2026-09-10")
	require.NoError(t, err)
	assert.Equal(t, 2026, parsed.Year())
	assert.Equal(t, time.September, parsed.Month())
	assert.Equal(t, 10, parsed.Day())

	// Khoảng trắng thừa vẫn parse được
	_, err = ParseDate(" 2026-09-10 ")
	assert.NoError(t, err)

	for _, raw := range []string{"", "10/09/2026", "2026-13-01", "not-a-date"} {
		_, err := ParseDate(raw)
		require.Error(t, err, raw)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrCodeInvalidDate, appErr.Code)
	}
}

func TestValidateDateRange(t *testing.T) {
	checkIn, checkOut, err := ValidateDateRange(futureDate(1), futureDate(4), 30)
	require.NoError(t, err)
	assert.Equal(t, 3, int(checkOut.Sub(checkIn).Hours()/24))

	// Hôm nay là ngày nhận phòng hợp lệ
	_, _, err = ValidateDateRange(futureDate(0), futureDate(2), 30)
	assert.NoError(t, err)
}

func TestValidateDateRangeRejects(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
	}{
		{"check-in quá khứ", futureDate(-1), futureDate(2)},
		{"check-out trước check-in", futureDate(5), futureDate(3)},
		{"check-out trùng check-in", futureDate(5), futureDate(5)},
		{"quá số đêm tối đa", futureDate(1), futureDate(32)},
		{"check-in sai định dạng", "sai", futureDate(3)},
		{"check-out sai định dạng", futureDate(1), "sai"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ValidateDateRange(tt.checkIn, tt.checkOut, 30)
			require.Error(t, err)
			appErr := errors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, errors.ErrCodeInvalidDate, appErr.Code)
		})
	}
}

func TestValidateDateRangeMaxDaysBoundary(t *testing.T) {
	// Đúng bằng giới hạn thì qua, hơn một đêm thì bị chặn
	_, _, err := ValidateDateRange(futureDate(1), futureDate(31), 30)
	assert.NoError(t, err)

	_, _, err = ValidateDateRange(futureDate(1), futureDate(32), 30)
	assert.Error(t, err)
}

func TestValidateCreateRoom(t *testing.T) {
	capacity := 2
	req := &dto.CreateRoomRequest{Name: "  Deluxe  ", Price: 4200, Capacity: &capacity}
	require.NoError(t, ValidateCreateRoom(req))
	assert.Equal(t, "Deluxe", req.Name)

	assert.Error(t, ValidateCreateRoom(&dto.CreateRoomRequest{Name: "   ", Price: 4200}))
	assert.Error(t, ValidateCreateRoom(&dto.CreateRoomRequest{Name: "Deluxe", Price: 0}))
	assert.Error(t, ValidateCreateRoom(&dto.CreateRoomRequest{Name: "Deluxe", Price: -100}))

	zero := 0
	assert.Error(t, ValidateCreateRoom(&dto.CreateRoomRequest{Name: "Deluxe", Price: 4200, Capacity: &zero}))
}

func TestValidateUpdateRoom(t *testing.T) {
	assert.NoError(t, ValidateUpdateRoom(&dto.UpdateRoomRequest{}))

	name := "  Suite  "
	req := &dto.UpdateRoomRequest{Name: &name}
	require.NoError(t, ValidateUpdateRoom(req))
	assert.Equal(t, "Suite", *req.Name)

	empty := "  "
	assert.Error(t, ValidateUpdateRoom(&dto.UpdateRoomRequest{Name: &empty}))

	badPrice := -1
	assert.Error(t, ValidateUpdateRoom(&dto.UpdateRoomRequest{Price: &badPrice}))

	badRating := 5.1
	assert.Error(t, ValidateUpdateRoom(&dto.UpdateRoomRequest{Rating: &badRating}))

	okRating := 5.0
	assert.NoError(t, ValidateUpdateRoom(&dto.UpdateRoomRequest{Rating: &okRating}))
}
