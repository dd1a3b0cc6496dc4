package services

import (
	"testing"
	"time"

	"bookit/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-05")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("05/01/2024")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestTruncateDate(t *testing.T) {
	loc := time.FixedZone("ICT", 7*3600)
	got := TruncateDate(time.Date(2024, 3, 9, 23, 30, 0, 0, loc))
	assert.Equal(t, time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), got)
}

func TestValidateStay(t *testing.T) {
	assert.NoError(t, validateStay(mustDate(t, "2024-01-01"), mustDate(t, "2024-01-02")))
	assert.ErrorIs(t, validateStay(mustDate(t, "2024-01-02"), mustDate(t, "2024-01-02")), ErrValidation)
	assert.ErrorIs(t, validateStay(mustDate(t, "2024-01-03"), mustDate(t, "2024-01-02")), ErrValidation)
	assert.ErrorIs(t, validateStay(time.Time{}, mustDate(t, "2024-01-02")), ErrValidation)
}

func TestExpandBookedDates(t *testing.T) {
	assert.Empty(t, ExpandBookedDates(nil))

	bookings := []models.Booking{
		{CheckInDate: mustDate(t, "2024-01-05"), CheckOutDate: mustDate(t, "2024-01-08")},
		{CheckInDate: mustDate(t, "2024-01-01"), CheckOutDate: mustDate(t, "2024-01-03")},
		{CheckInDate: mustDate(t, "2024-01-06"), CheckOutDate: mustDate(t, "2024-01-09")},
	}

	got := formatDates(ExpandBookedDates(bookings))
	assert.Equal(t, []string{
		"2024-01-01", "2024-01-02",
		"2024-01-05", "2024-01-06", "2024-01-07", "2024-01-08",
	}, got)
}

func TestHasOverlap_IgnoresCancelled(t *testing.T) {
	bookings := []models.Booking{
		{CheckInDate: mustDate(t, "2024-01-01"), CheckOutDate: mustDate(t, "2024-01-05"), Status: models.BookingCancelled},
	}
	assert.False(t, hasOverlap(bookings, mustDate(t, "2024-01-02"), mustDate(t, "2024-01-04")))

	bookings[0].Status = models.BookingConfirmed
	assert.True(t, hasOverlap(bookings, mustDate(t, "2024-01-02"), mustDate(t, "2024-01-04")))
}

func TestNights(t *testing.T) {
	assert.Equal(t, 3, nights(mustDate(t, "2024-01-05"), mustDate(t, "2024-01-08")))
}

func TestValidateStayLength(t *testing.T) {
	in := mustDate(t, "2024-03-01")
	assert.NoError(t, validateStayLength(in, in.AddDate(0, 0, MaxStayNights)))
	assert.ErrorIs(t, validateStayLength(in, in.AddDate(0, 0, MaxStayNights+1)), ErrValidation)
	assert.ErrorIs(t, validateStayLength(in, mustDate(t, "9999-12-31")), ErrValidation)
	assert.Equal(t, MaxStayNights, nights(in, in.AddDate(0, 0, MaxStayNights)))
}
