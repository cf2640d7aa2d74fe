package config

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvMissingFileIsNotFatal(t *testing.T) {
	// Không có .env thì chạy tiếp bằng biến môi trường có sẵn.
	// LoadEnv là điểm nạp .env duy nhất của app, gọi từ InitApp.
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer os.Chdir(cwd)

	assert.NoError(t, LoadEnv())
}

func TestGetEnv(t *testing.T) {
	t.Setenv("HOTEL_TEST_KEY", "  value  ")
	assert.Equal(t, "value", GetEnv("HOTEL_TEST_KEY", "def"))
	assert.Equal(t, "def", GetEnv("HOTEL_TEST_KEY_MISSING", "def"))
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("HOTEL_TEST_INT", "45")
	assert.Equal(t, 45, GetEnvInt("HOTEL_TEST_INT", 30))

	t.Setenv("HOTEL_TEST_INT", "abc")
	assert.Equal(t, 30, GetEnvInt("HOTEL_TEST_INT", 30))
}

func TestMaxStayDays(t *testing.T) {
	t.Setenv("MAX_STAY_DAYS", "")
	assert.Equal(t, 30, MaxStayDays())

	t.Setenv("MAX_STAY_DAYS", "14")
	assert.Equal(t, 14, MaxStayDays())
}

func TestAdminPasswordHash(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "s3cret")
	sum := sha256.Sum256([]byte("s3cret"))
	assert.Equal(t, hex.EncodeToString(sum[:]), AdminPasswordHash())
}
