package services

import (
	"fmt"
	"sort"
	"time"

	"bookit/models"
)

const DateLayout = "2006-01-02"

// MaxStayNights bounds a single booking.
const MaxStayNights = 365

func ParseDate(value string) (time.Time, error) {
	d, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", ErrValidation, value)
	}
	return d, nil
}

// TruncateDate drops the clock, returning 00:00 UTC of the same calendar day.
func TruncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validateStay(checkIn, checkOut time.Time) error {
	if checkIn.IsZero() || checkOut.IsZero() {
		return fmt.Errorf("%w: check-in and check-out dates are required", ErrValidation)
	}
	if !checkIn.Before(checkOut) {
		return fmt.Errorf("%w: check-in date must be before check-out date", ErrValidation)
	}
	return nil
}

// validateStayLength applies on creation only; availability queries may span
// any valid range.
func validateStayLength(checkIn, checkOut time.Time) error {
	if checkOut.After(checkIn.AddDate(0, 0, MaxStayNights)) {
		return fmt.Errorf("%w: a stay cannot be longer than %d nights", ErrValidation, MaxStayNights)
	}
	return nil
}

// nights expects a bounded stay between two UTC midnights.
func nights(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn) / (24 * time.Hour))
}

// ExpandBookedDates returns every night covered by the bookings, deduplicated
// and in ascending order. The check-out day itself is not included.
func ExpandBookedDates(bookings []models.Booking) []time.Time {
	seen := make(map[time.Time]struct{})
	for _, b := range bookings {
		end := TruncateDate(b.CheckOutDate)
		for d := TruncateDate(b.CheckInDate); d.Before(end); d = d.AddDate(0, 0, 1) {
			seen[d] = struct{}{}
		}
	}

	dates := make([]time.Time, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

func hasOverlap(bookings []models.Booking, checkIn, checkOut time.Time) bool {
	for _, b := range bookings {
		if b.IsConfirmed() && b.Overlaps(checkIn, checkOut) {
			return true
		}
	}
	return false
}
