package schedule

import (
	"fmt"
	"strconv"
	"time"
)

const dateLayout = "02.01.2006"

type (
	// Date is a calendar day without a time zone.
	Date struct {
		Year  int
		Month time.Month
		Day   int
	}

	// DayKey is the UNIX timestamp of local midnight of a day.
	DayKey int64
)

// NewDate validates that the day exists in the given month.
func NewDate(year int, month time.Month, day int) (Date, error) {
	d := Date{Year: year, Month: month, Day: day}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, fmt.Errorf("%w: %s", ErrInvalidDate, d)
	}
	return d, nil
}

// ParseDate parses "DD.MM.YYYY".
func ParseDate(v string) (Date, error) {
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q: %w", ErrInvalidDate, v, err)
	}
	return DateOf(t), nil
}

func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

func (d Date) String() string {
	return fmt.Sprintf("%02d.%02d.%04d", d.Day, d.Month, d.Year)
}

func (d Date) Midnight(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Date) Key(loc *time.Location) DayKey {
	return DayKey(d.Midnight(loc).Unix())
}

func (d Date) AddDays(n int) Date {
	return DateOf(time.Date(d.Year, d.Month, d.Day+n, 0, 0, 0, 0, time.UTC))
}

func ParseDayKey(v string) (DayKey, error) {
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDayKey, v)
	}
	return DayKey(n), nil
}

func (k DayKey) String() string {
	return strconv.FormatInt(int64(k), 10)
}

func (k DayKey) Date(loc *time.Location) Date {
	return DateOf(time.Unix(int64(k), 0).In(loc))
}
