package builders

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoomQueryDefaults(t *testing.T) {
	q := ParseRoomQuery(url.Values{})

	assert.Nil(t, q.MinPrice)
	assert.Nil(t, q.MaxPrice)
	assert.Nil(t, q.Type)
	assert.Nil(t, q.Capacity)
	assert.Nil(t, q.Featured)
	require.NotNil(t, q.Available)
	assert.True(t, *q.Available)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, defaultRoomPerPage, q.PerPage)
	assert.Equal(t, "price ASC", q.OrderClause())
	assert.Equal(t, 0, q.Offset())
}

func TestParseRoomQueryFilters(t *testing.T) {
	values := url.Values{}
	values.Set("min_price", "2000")
	values.Set("max_price", "9000")
	values.Set("type", "suite")
	values.Set("capacity", "2")
	values.Set("featured", "true")
	values.Set("available", "0")
	values.Set("sort_by", "rating")
	values.Set("sort_order", "DESC")
	values.Set("page", "3")
	values.Set("per_page", "25")

	q := ParseRoomQuery(values)

	require.NotNil(t, q.MinPrice)
	assert.Equal(t, 2000, *q.MinPrice)
	require.NotNil(t, q.MaxPrice)
	assert.Equal(t, 9000, *q.MaxPrice)
	require.NotNil(t, q.Type)
	assert.Equal(t, "suite", *q.Type)
	require.NotNil(t, q.Featured)
	assert.True(t, *q.Featured)
	require.NotNil(t, q.Available)
	assert.False(t, *q.Available)
	assert.Equal(t, "rating DESC", q.OrderClause())
	assert.Equal(t, 50, q.Offset())

	filters := q.Filters()
	assert.Equal(t, q.MinPrice, filters.MinPrice)
	assert.Equal(t, q.Type, filters.Type)
}

func TestParseRoomQuerySortAllowList(t *testing.T) {
	// Cột lạ không bao giờ lọt vào ORDER BY
	for _, sortBy := range []string{"id; DROP TABLE rooms", "password", "", "PRICE"} {
		values := url.Values{}
		values.Set("sort_by", sortBy)
		values.Set("sort_order", "asc; --")

		q := ParseRoomQuery(values)
		assert.Equal(t, "price ASC", q.OrderClause(), sortBy)
	}
}

func TestParsePaginationClamping(t *testing.T) {
	values := url.Values{}
	values.Set("page", "-5")
	values.Set("per_page", "0")
	q := ParseRoomQuery(values)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, defaultRoomPerPage, q.PerPage)
	assert.Equal(t, 0, q.Offset())

	values.Set("page", "abc")
	values.Set("per_page", "10000")
	q = ParseRoomQuery(values)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, maxPerPage, q.PerPage)
}

func TestParseBoolPtr(t *testing.T) {
	for _, raw := range []string{"1", "true", "TRUE"} {
		value := parseBoolPtr(raw)
		require.NotNil(t, value, raw)
		assert.True(t, *value)
	}
	for _, raw := range []string{"0", "false", "False"} {
		value := parseBoolPtr(raw)
		require.NotNil(t, value, raw)
		assert.False(t, *value)
	}
	for _, raw := range []string{"", "yes", "2"} {
		assert.Nil(t, parseBoolPtr(raw), raw)
	}
}
