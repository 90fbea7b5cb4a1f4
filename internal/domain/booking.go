package domain

import "time"

// Booking is immutable after creation. Price is a snapshot of the flight
// price at booking time and is never re-read from the catalog.
type Booking struct {
	ID            string
	FlightNumber  string
	Destination   string
	Category      FlightCategory
	DepartureDate time.Time
	CreatedAt     time.Time
	Price         int64
}

// Date truncates t to its calendar date (midnight UTC).
func Date(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
