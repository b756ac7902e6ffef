package clock

import "time"

// Clock returns wall-clock time in a fixed location. Day boundaries of the
// schedule (midnight keys, today/tomorrow) are computed in that location.
type Clock struct {
	loc *time.Location
}

func New() *Clock {
	return &Clock{loc: time.Local}
}

func NewWithLocation(loc *time.Location) *Clock {
	return &Clock{loc: loc}
}

func (c *Clock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *Clock) Location() *time.Location {
	return c.loc
}

// Midnight returns the start of the day t falls on, in the clock location.
func (c *Clock) Midnight(t time.Time) time.Time {
	return midnight(t, c.loc)
}

type Mock struct {
	value func() time.Time
	loc   *time.Location
}

func NewMock(value time.Time) *Mock {
	return &Mock{
		value: func() time.Time {
			return value
		},
		loc: value.Location(),
	}
}

func NewMockF(value func() time.Time) *Mock {
	return &Mock{
		value: value,
		loc:   value().Location(),
	}
}

func (m *Mock) Now() time.Time {
	return m.value()
}

func (m *Mock) Location() *time.Location {
	return m.loc
}

func (m *Mock) Midnight(t time.Time) time.Time {
	return midnight(t, m.loc)
}

func (m *Mock) Set(t time.Time) {
	m.value = func() time.Time {
		return t
	}
}

func (m *Mock) SetF(value func() time.Time) {
	m.value = value
}

func midnight(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
