package domain

import "time"

// Reservation is a booked interval in a single room. Start and End are
// absolute instants stored in UTC; local-time reasoning happens only in the
// validation rules and when rendering output.
type Reservation struct {
	ID    string
	Room  string
	Start time.Time
	End   time.Time
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Adjacent intervals sharing a boundary instant do
// not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
