package cache

import "fmt"

// Semantic query keys. Active keys denote data currently backing a rendered
// view; archival queries must not use these helpers.
const KeyUser = "user"

// BookingKey is the detail entry for one booking.
func BookingKey(id int64) string {
	return fmt.Sprintf("booking:%d", id)
}

// RecentBookingsKey lists bookings created in the last n days.
func RecentBookingsKey(lastDays int) string {
	return fmt.Sprintf("bookings:last-%d", lastDays)
}

// RecentStaysKey lists stays starting in the last n days.
func RecentStaysKey(lastDays int) string {
	return fmt.Sprintf("stays:last-%d", lastDays)
}
