package app

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/phuttu/meeting-room-api/internal/clock"
	"github.com/phuttu/meeting-room-api/internal/domain"
)

// ReservationRepository owns the per-room collections and their
// synchronization. WithRoom runs fn with exclusive access to the room's
// reservations; mutations made through the pointer are kept only when fn
// returns nil. The room key must already be normalized and valid — an unknown
// key is a contract violation, not a user error.
type ReservationRepository interface {
	WithRoom(ctx context.Context, room string, fn func(reservations *[]domain.Reservation) error) error
}

// ReservationService runs the validation pipeline and the overlap check, and
// orchestrates the store. All stored instants are UTC; loc is the canonical
// zone used for local-time rules and for interpreting zoneless input.
type ReservationService struct {
	repo  ReservationRepository
	clock clock.Clock
	loc   *time.Location
	rules ruleBounds
}

const (
	defaultBlockSize     = 30 * time.Minute
	defaultMinDuration   = 30 * time.Minute
	defaultMaxDuration   = 8 * time.Hour
	defaultBusinessOpen  = 8 * time.Hour
	defaultBusinessClose = 16 * time.Hour
)

func NewReservationService(repo ReservationRepository, clk clock.Clock, loc *time.Location, opts ...ReservationServiceOption) *ReservationService {
	svc := &ReservationService{
		repo:  repo,
		clock: clk,
		loc:   loc,
		rules: ruleBounds{
			blockSize:     defaultBlockSize,
			minDuration:   defaultMinDuration,
			maxDuration:   defaultMaxDuration,
			businessOpen:  defaultBusinessOpen,
			businessClose: defaultBusinessClose,
		},
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

type ReservationServiceOption func(*ReservationService)

// WithBusinessHours overrides the inclusive booking window, given as offsets
// from local midnight.
func WithBusinessHours(open, close time.Duration) ReservationServiceOption {
	return func(s *ReservationService) {
		if open >= 0 && open < close && close <= 24*time.Hour {
			s.rules.businessOpen = open
			s.rules.businessClose = close
		}
	}
}

// WithBlockSize overrides the alignment grid for reservation endpoints.
func WithBlockSize(d time.Duration) ReservationServiceOption {
	return func(s *ReservationService) {
		if d > 0 {
			s.rules.blockSize = d
		}
	}
}

// WithDurationBounds overrides the minimum and maximum reservation length.
func WithDurationBounds(min, max time.Duration) ReservationServiceOption {
	return func(s *ReservationService) {
		if min > 0 && min <= max {
			s.rules.minDuration = min
			s.rules.maxDuration = max
		}
	}
}

type CreateReservationInput struct {
	Room  string
	Start string
	End   string
}

// CreateReservation parses and validates the requested interval, then inserts
// it if it conflicts with no existing reservation in the room. The conflict
// check and insert run inside the room's critical section, so a failed create
// leaves no partial state behind.
func (s *ReservationService) CreateReservation(ctx context.Context, in CreateReservationInput) (domain.Reservation, error) {
	start, err := ParseTimestamp(in.Start, s.loc)
	if err != nil {
		return domain.Reservation{}, err
	}
	end, err := ParseTimestamp(in.End, s.loc)
	if err != nil {
		return domain.Reservation{}, err
	}

	if err := s.validateInterval(start, end); err != nil {
		return domain.Reservation{}, err
	}

	var created domain.Reservation
	err = s.repo.WithRoom(ctx, in.Room, func(reservations *[]domain.Reservation) error {
		for _, existing := range *reservations {
			if domain.Overlaps(start, end, existing.Start, existing.End) {
				return domain.ErrOverlapConflict
			}
		}
		created = domain.Reservation{
			ID:    uuid.NewString(),
			Room:  in.Room,
			Start: start,
			End:   end,
		}
		*reservations = append(*reservations, created)
		return nil
	})
	if err != nil {
		return domain.Reservation{}, err
	}
	return created, nil
}

// ListReservations returns a snapshot of the room's reservations, past ones
// included, ordered ascending by start instant.
func (s *ReservationService) ListReservations(ctx context.Context, room string) ([]domain.Reservation, error) {
	var out []domain.Reservation
	err := s.repo.WithRoom(ctx, room, func(reservations *[]domain.Reservation) error {
		out = make([]domain.Reservation, len(*reservations))
		copy(out, *reservations)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start.Before(out[j].Start)
	})
	return out, nil
}

// DeleteReservation removes the reservation with the given id from the room.
// Ids are room-scoped: an id that exists only in another room reports
// domain.ErrReservationNotFound.
func (s *ReservationService) DeleteReservation(ctx context.Context, room, id string) error {
	return s.repo.WithRoom(ctx, room, func(reservations *[]domain.Reservation) error {
		for i, r := range *reservations {
			if r.ID == id {
				*reservations = append((*reservations)[:i], (*reservations)[i+1:]...)
				return nil
			}
		}
		return domain.ErrReservationNotFound
	})
}

// Location is the canonical local zone used for rule evaluation and output
// rendering.
func (s *ReservationService) Location() *time.Location {
	return s.loc
}
