package schedule

import "errors"

var (
	// ErrDayNotFound is returned when an update targets a day that has no table yet.
	ErrDayNotFound = errors.New("day not found")

	ErrInvalidCellState = errors.New("invalid cell state")
	ErrInvalidGroupID   = errors.New("invalid group id")
	ErrInvalidHour      = errors.New("invalid hour key")
	ErrInvalidDayKey    = errors.New("invalid day key")
	ErrInvalidClock     = errors.New("invalid clock time")
	ErrInvalidDate      = errors.New("invalid date")
)
