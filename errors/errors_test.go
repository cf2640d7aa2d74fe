package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorError(t *testing.T) {
	appErr := NewAppError(ErrCodeNotFound, "Phòng không tồn tại", nil)
	assert.Equal(t, "[NOT_FOUND] Phòng không tồn tại", appErr.Error())

	wrapped := NewAppError(ErrCodeDBError, "Không đọc được phòng", errors.New("connection refused"))
	assert.Contains(t, wrapped.Error(), "connection refused")
}

func TestGetAppError(t *testing.T) {
	appErr := NewAppError(ErrCodeConflict, "Trùng lịch", nil)
	assert.Equal(t, appErr, GetAppError(appErr))

	// Tìm được AppError qua chuỗi wrap
	wrapped := fmt.Errorf("lớp ngoài: %w", appErr)
	assert.Equal(t, appErr, GetAppError(wrapped))

	assert.Nil(t, GetAppError(errors.New("plain error")))
	assert.Nil(t, GetAppError(nil))
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("gốc")
	appErr := NewAppError(ErrCodeDBError, "bọc", cause)
	assert.True(t, errors.Is(appErr, cause))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want int
	}{
		{ErrCodeValidation, http.StatusBadRequest},
		{ErrCodeRequiredField, http.StatusBadRequest},
		{ErrCodeInvalidFormat, http.StatusBadRequest},
		{ErrCodeInvalidDate, http.StatusBadRequest},
		{ErrCodeInvalidStatus, http.StatusBadRequest},
		{ErrCodeBadTransition, http.StatusBadRequest},
		{ErrCodeDateConflict, http.StatusBadRequest},
		{ErrCodeRoomUnavailable, http.StatusBadRequest},
		{ErrCodeUnauthorized, http.StatusUnauthorized},
		{ErrCodeInvalidToken, http.StatusUnauthorized},
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeConflict, http.StatusConflict},
		{ErrCodeHasDependents, http.StatusConflict},
		{ErrCodeDBError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		appErr := NewAppError(tt.code, "msg", nil)
		require.Equal(t, tt.want, appErr.HTTPStatus(), string(tt.code))
	}
}
