package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/phuttu/meeting-room-api/internal/domain"
)

func TestStore_WithRoom_KeepsMutationsOnSuccess(t *testing.T) {
	t.Parallel()

	store := NewStore([]string{"A", "B"})
	reservation := domain.Reservation{
		ID:    "r1",
		Room:  "A",
		Start: time.Date(2026, 2, 2, 7, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 2, 2, 8, 0, 0, 0, time.UTC),
	}

	err := store.WithRoom(context.Background(), "A", func(reservations *[]domain.Reservation) error {
		*reservations = append(*reservations, reservation)
		return nil
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	err = store.WithRoom(context.Background(), "A", func(reservations *[]domain.Reservation) error {
		if len(*reservations) != 1 || (*reservations)[0].ID != "r1" {
			t.Fatalf("expected stored reservation r1, got %v", *reservations)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestStore_WithRoom_DiscardsMutationsOnError(t *testing.T) {
	t.Parallel()

	store := NewStore([]string{"A"})
	sentinel := errors.New("boom")

	err := store.WithRoom(context.Background(), "A", func(reservations *[]domain.Reservation) error {
		*reservations = append(*reservations, domain.Reservation{ID: "ghost"})
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got %v", err)
	}

	_ = store.WithRoom(context.Background(), "A", func(reservations *[]domain.Reservation) error {
		if len(*reservations) != 0 {
			t.Fatalf("expected no visible mutation after failure, got %v", *reservations)
		}
		return nil
	})
}

func TestStore_WithRoom_RoomsAreIsolated(t *testing.T) {
	t.Parallel()

	store := NewStore([]string{"A", "B"})

	_ = store.WithRoom(context.Background(), "A", func(reservations *[]domain.Reservation) error {
		*reservations = append(*reservations, domain.Reservation{ID: "in-a"})
		return nil
	})

	_ = store.WithRoom(context.Background(), "B", func(reservations *[]domain.Reservation) error {
		if len(*reservations) != 0 {
			t.Fatalf("expected room B untouched, got %v", *reservations)
		}
		return nil
	})
}

func TestStore_WithRoom_UnknownRoomPanics(t *testing.T) {
	t.Parallel()

	store := NewStore([]string{"A"})

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for unknown room key")
		}
	}()
	_ = store.WithRoom(context.Background(), "X", func(*[]domain.Reservation) error {
		return nil
	})
}

func TestStore_WithRoom_CanceledContext(t *testing.T) {
	t.Parallel()

	store := NewStore([]string{"A"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := store.WithRoom(ctx, "A", func(*[]domain.Reservation) error {
		called = true
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if called {
		t.Fatalf("fn must not run once the context is canceled")
	}
}
