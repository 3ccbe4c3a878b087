package domain

import "errors"

var (
	ErrMalformedTimestamp   = errors.New("malformed timestamp")
	ErrInvalidInterval      = errors.New("start time must be before end time")
	ErrPastStart            = errors.New("reservation start time cannot be in the past")
	ErrMisalignedBlock      = errors.New("reservation must start and end on a block boundary")
	ErrDurationTooShort     = errors.New("reservation duration is below the minimum")
	ErrDurationTooLong      = errors.New("reservation duration exceeds the maximum")
	ErrSpansMultipleDays    = errors.New("reservation must fit within a single local day")
	ErrOutsideBusinessHours = errors.New("reservation must be within business hours")
	ErrStartAtClosing       = errors.New("reservation cannot start at closing time")
	ErrOverlapConflict      = errors.New("reservation overlaps with an existing reservation in the same room")
	ErrRoomNotFound         = errors.New("room not found")
	ErrReservationNotFound  = errors.New("reservation not found")
)
