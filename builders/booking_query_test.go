package builders

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBookingQueryDefaults(t *testing.T) {
	q := ParseBookingQuery(url.Values{})

	assert.Nil(t, q.Status)
	assert.Nil(t, q.RoomID)
	assert.Nil(t, q.GuestEmail)
	assert.Nil(t, q.StartDate)
	assert.Nil(t, q.EndDate)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, defaultBookingPerPage, q.PerPage)
}

func TestParseBookingQueryFilters(t *testing.T) {
	values := url.Values{}
	values.Set("status", "confirmed")
	values.Set("room_id", "7")
	values.Set("guest_email", "minh@example.com")
	values.Set("start_date", "2026-09-01")
	values.Set("end_date", "2026-09-30")

	q := ParseBookingQuery(values)

	require.NotNil(t, q.Status)
	assert.Equal(t, "confirmed", *q.Status)
	require.NotNil(t, q.RoomID)
	assert.Equal(t, uint(7), *q.RoomID)
	require.NotNil(t, q.GuestEmail)
	require.NotNil(t, q.StartDate)
	require.NotNil(t, q.EndDate)

	filters := q.Filters()
	require.NotNil(t, filters.StartDate)
	assert.Equal(t, "2026-09-01", *filters.StartDate)
	require.NotNil(t, filters.EndDate)
	assert.Equal(t, "2026-09-30", *filters.EndDate)
}

func TestParseBookingQueryIgnoresBadValues(t *testing.T) {
	values := url.Values{}
	values.Set("room_id", "abc")
	values.Set("start_date", "01/09/2026")
	values.Set("end_date", "not-a-date")

	q := ParseBookingQuery(values)

	assert.Nil(t, q.RoomID)
	assert.Nil(t, q.StartDate)
	assert.Nil(t, q.EndDate)

	filters := q.Filters()
	assert.Nil(t, filters.StartDate)
	assert.Nil(t, filters.EndDate)
}
