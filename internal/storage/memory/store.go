package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/phuttu/meeting-room-api/internal/domain"
)

// Store keeps reservations in memory, one collection per room, created empty
// at startup and never persisted. A single mutex covers all rooms.
type Store struct {
	mu     sync.Mutex
	byRoom map[string][]domain.Reservation
}

// NewStore creates an empty collection for every room in rooms. Room keys are
// expected to be normalized already.
func NewStore(rooms []string) *Store {
	byRoom := make(map[string][]domain.Reservation, len(rooms))
	for _, room := range rooms {
		byRoom[room] = []domain.Reservation{}
	}
	return &Store{byRoom: byRoom}
}

// WithRoom runs fn with the lock held over the room's reservation slice.
// Changes made through the pointer are written back only when fn returns nil,
// so a failed operation leaves the collection untouched. Callers must have
// validated the room key: an unknown key panics.
func (s *Store) WithRoom(ctx context.Context, room string, fn func(reservations *[]domain.Reservation) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	reservations, ok := s.byRoom[room]
	if !ok {
		panic(fmt.Sprintf("memory: unknown room %q, caller must validate room ids", room))
	}

	if err := fn(&reservations); err != nil {
		return err
	}
	s.byRoom[room] = reservations
	return nil
}
