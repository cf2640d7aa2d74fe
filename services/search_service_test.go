package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeQuery(t *testing.T) {
	assert.Equal(t, "phong doi", normalizeQuery("Phòng Đôi"))
	assert.Equal(t, "deluxe sea view", normalizeQuery("  Deluxe Sea View  "))
	assert.Equal(t, "", normalizeQuery("   "))
}
