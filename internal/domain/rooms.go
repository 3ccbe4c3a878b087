package domain

import "strings"

// Rooms is the fixed set of bookable room identifiers, known at startup and
// immutable for the process lifetime. Identifiers are matched
// case-insensitively and stored uppercase.
type Rooms struct {
	ids []string
	set map[string]struct{}
}

func NewRooms(ids []string) Rooms {
	r := Rooms{set: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		id = strings.ToUpper(strings.TrimSpace(id))
		if id == "" {
			continue
		}
		if _, ok := r.set[id]; ok {
			continue
		}
		r.set[id] = struct{}{}
		r.ids = append(r.ids, id)
	}
	return r
}

// Normalize uppercases id and reports whether it names a known room.
func (r Rooms) Normalize(id string) (string, bool) {
	id = strings.ToUpper(id)
	_, ok := r.set[id]
	return id, ok
}

// IDs returns the room identifiers in configuration order.
func (r Rooms) IDs() []string {
	out := make([]string, len(r.ids))
	copy(out, r.ids)
	return out
}
