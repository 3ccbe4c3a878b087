package app

import (
	"time"

	"github.com/phuttu/meeting-room-api/internal/domain"
)

// ruleBounds holds the tunable limits the validation pipeline enforces.
// Business open/close are offsets from local midnight.
type ruleBounds struct {
	blockSize     time.Duration
	minDuration   time.Duration
	maxDuration   time.Duration
	businessOpen  time.Duration
	businessClose time.Duration
}

// validateInterval runs the business-rule pipeline in a fixed order and
// returns the first failure. Ordering and duration are checked on absolute
// instants; alignment, day containment and business hours on the local-zone
// representation.
func (s *ReservationService) validateInterval(startUTC, endUTC time.Time) error {
	if err := validateOrdering(startUTC, endUTC); err != nil {
		return err
	}
	if err := s.validateNotInPast(startUTC); err != nil {
		return err
	}

	startLocal := startUTC.In(s.loc)
	endLocal := endUTC.In(s.loc)

	if err := s.validateBlockAlignment(startLocal, endLocal); err != nil {
		return err
	}
	if err := s.validateDuration(startUTC, endUTC); err != nil {
		return err
	}
	if err := validateSingleLocalDay(startLocal, endLocal); err != nil {
		return err
	}
	return s.validateBusinessHours(startLocal, endLocal)
}

func validateOrdering(start, end time.Time) error {
	if !start.Before(end) {
		return domain.ErrInvalidInterval
	}
	return nil
}

func (s *ReservationService) validateNotInPast(start time.Time) error {
	// Floor, not round: a start exactly at the current minute is accepted.
	nowFloor := s.clock.Now().Truncate(time.Minute)
	if start.Before(nowFloor) {
		return domain.ErrPastStart
	}
	return nil
}

func (s *ReservationService) validateBlockAlignment(startLocal, endLocal time.Time) error {
	block := s.rules.blockSize
	if minutesOfDay(startLocal)%block != 0 || minutesOfDay(endLocal)%block != 0 {
		return domain.ErrMisalignedBlock
	}
	return nil
}

func (s *ReservationService) validateDuration(start, end time.Time) error {
	d := end.Sub(start)
	if d < s.rules.minDuration {
		return domain.ErrDurationTooShort
	}
	if d > s.rules.maxDuration {
		return domain.ErrDurationTooLong
	}
	return nil
}

func validateSingleLocalDay(startLocal, endLocal time.Time) error {
	y1, m1, d1 := startLocal.Date()
	y2, m2, d2 := endLocal.Date()
	if y1 != y2 || m1 != m2 || d1 != d2 {
		return domain.ErrSpansMultipleDays
	}
	return nil
}

// validateBusinessHours checks both endpoints against the inclusive
// [open, close] window. The closing instant is a legal end but never a legal
// start, so that exclusion is checked separately rather than folded into an
// exclusive upper bound.
func (s *ReservationService) validateBusinessHours(startLocal, endLocal time.Time) error {
	open, close := s.rules.businessOpen, s.rules.businessClose

	startTOD := timeOfDay(startLocal)
	if startTOD < open || startTOD > close {
		return domain.ErrOutsideBusinessHours
	}
	if startTOD == close {
		return domain.ErrStartAtClosing
	}

	endTOD := timeOfDay(endLocal)
	if endTOD < open || endTOD > close {
		return domain.ErrOutsideBusinessHours
	}
	return nil
}

// timeOfDay is the offset from local midnight, seconds included.
func timeOfDay(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second +
		time.Duration(t.Nanosecond())
}

// minutesOfDay ignores seconds, matching the block-alignment contract: only
// the minute component must sit on a block boundary.
func minutesOfDay(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute
}
