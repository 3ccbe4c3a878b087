package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/phuttu/meeting-room-api/internal/domain"
)

// Accepted ISO 8601 layouts. Zoned layouts are tried first; input without an
// offset is wall-clock time in the canonical local zone.
var (
	zonedLayouts = []string{
		time.RFC3339Nano,
		"2006-01-02T15:04Z07:00",
	}
	zonelessLayouts = []string{
		"2006-01-02T15:04:05.999999999",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
	}
)

// ParseTimestamp converts ISO 8601 text into an absolute instant in UTC.
// A trailing "Z" or numeric offset is honored directly; zoneless input is
// interpreted in loc and then converted. Malformed text fails with
// domain.ErrMalformedTimestamp.
func ParseTimestamp(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	for _, layout := range zonelessLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", domain.ErrMalformedTimestamp, s)
}
