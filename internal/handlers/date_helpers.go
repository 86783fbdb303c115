package handlers

import "time"

// Booking dates arrive as DD-MM-YYYY and are day-granular. Everything
// is normalized to UTC midnight so the (court, slot, date) comparison
// is a plain equality.
func parseBookingDate(dateStr string) (time.Time, error) {
	t, err := time.Parse("02-01-2006", dateStr)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
