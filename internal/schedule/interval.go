package schedule

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	HoursPerDay = 24

	minutesPerHour = 60
)

// Interval is an outage range in fractional hours of the day, [From, To).
// To may exceed 24 when the range rolls over to the next day.
type Interval struct {
	From float64
	To   float64
}

// ParseClock converts "HH:MM" into fractional hours. "24:00" is accepted as the end of the day.
func ParseClock(v string) (float64, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(v), ":")
	if !ok || len(mm) != 2 || hh == "" || len(hh) > 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, v)
	}
	hours, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrInvalidClock, v, err)
	}
	minutes, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrInvalidClock, v, err)
	}
	if hours < 0 || hours > HoursPerDay || minutes < 0 || minutes >= minutesPerHour {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, v)
	}
	if hours == HoursPerDay && minutes != 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, v)
	}
	return float64(hours) + float64(minutes)/minutesPerHour, nil
}

// FormatClock renders fractional hours as "HH:MM".
func FormatClock(h float64) string {
	total := int(math.Round(h * minutesPerHour))
	return fmt.Sprintf("%02d:%02d", total/minutesPerHour, total%minutesPerHour)
}

// NewInterval parses a "from HH:MM to HH:MM" pair.
func NewInterval(from, to string) (Interval, error) {
	t1, err := ParseClock(from)
	if err != nil {
		return Interval{}, fmt.Errorf("parse interval start: %w", err)
	}
	t2, err := ParseClock(to)
	if err != nil {
		return Interval{}, fmt.Errorf("parse interval end: %w", err)
	}
	return Interval{From: t1, To: t2}, nil
}

// Split breaks an interval crossing midnight into same-day pieces.
// Empty pieces are dropped.
func (iv Interval) Split() []Interval {
	var pieces []Interval
	switch {
	case iv.To <= iv.From:
		pieces = []Interval{{From: iv.From, To: HoursPerDay}, {From: 0, To: iv.To}}
	case iv.To > HoursPerDay:
		pieces = []Interval{{From: iv.From, To: HoursPerDay}, {From: 0, To: iv.To - HoursPerDay}}
	default:
		pieces = []Interval{iv}
	}

	res := pieces[:0]
	for _, p := range pieces {
		if p.To > p.From && p.From < HoursPerDay {
			res = append(res, p)
		}
	}
	return res
}

// HalfAt reports which halves of hour slot h (1..24) the interval covers.
// The interval must not cross midnight.
func (iv Interval) HalfAt(h int) Half {
	start := float64(h - 1)
	mid := start + 0.5 //nolint:mnd // half an hour
	end := start + 1

	firstOff := iv.From < mid && iv.To > start
	secondOff := iv.From < end && iv.To > mid

	switch {
	case firstOff && secondOff:
		return HalfBoth
	case firstOff:
		return HalfFirst
	case secondOff:
		return HalfSecond
	default:
		return HalfNone
	}
}

func (iv Interval) String() string {
	return FormatClock(iv.From) + "-" + FormatClock(iv.To)
}
