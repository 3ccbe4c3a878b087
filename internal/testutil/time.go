package testutil

import (
	"testing"
	"time"
)

// MustLocation loads an IANA timezone or fails the test.
func MustLocation(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("failed to load location %s: %v", name, err)
	}
	return loc
}

// At builds an instant from local wall-clock components in loc.
func At(loc *time.Location, year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, loc)
}
