package schedule

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// HourMap holds the state of each hour slot of a day. Index 0 is hour "1", i.e. [00:00, 01:00).
type HourMap [HoursPerDay]CellState

// HourChange records a single cell transition.
type HourChange struct {
	Hour int
	From CellState
	To   CellState
}

// NewHourMap returns a map with power available for the whole day.
func NewHourMap() HourMap {
	var m HourMap
	for i := range m {
		m[i] = Yes
	}
	return m
}

// At returns the state of hour slot h (1..24). Unset slots read as Yes.
func (m HourMap) At(h int) CellState {
	if h < 1 || h > HoursPerDay {
		return Yes
	}
	if s := m[h-1]; s != "" {
		return s
	}
	return Yes
}

// Set overwrites hour slot h (1..24).
func (m *HourMap) Set(h int, s CellState) {
	if h < 1 || h > HoursPerDay {
		return
	}
	m[h-1] = s
}

// Mark records an outage interval that does not cross midnight and returns the cells it changed.
func (m *HourMap) Mark(iv Interval) []HourChange {
	var changes []HourChange
	for h := 1; h <= HoursPerDay; h++ {
		half := iv.HalfAt(h)
		if half == HalfNone {
			continue
		}
		before := m.At(h)
		after := before.Apply(half)
		if after == before {
			continue
		}
		m[h-1] = after
		changes = append(changes, HourChange{Hour: h, From: before, To: after})
	}
	return changes
}

// MarkAll splits each interval at midnight and marks every piece.
func (m *HourMap) MarkAll(intervals ...Interval) []HourChange {
	var changes []HourChange
	for _, iv := range intervals {
		for _, piece := range iv.Split() {
			changes = append(changes, m.Mark(piece)...)
		}
	}
	return changes
}

// OutageHours sums confirmed outage time in hours. Possible outages are not counted.
func (m HourMap) OutageHours() float64 {
	var total float64
	for h := 1; h <= HoursPerDay; h++ {
		first, second := m.At(h).halves()
		if first == Off {
			total += 0.5
		}
		if second == Off {
			total += 0.5
		}
	}
	return total
}

func (m HourMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for h := 1; h <= HoursPerDay; h++ {
		if h > 1 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, `"%d":"%s"`, h, m.At(h))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (m *HourMap) UnmarshalJSON(b []byte) error {
	raw := make(map[string]CellState, HoursPerDay)
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("unmarshal hour map: %w", err)
	}

	res := NewHourMap()
	for k, s := range raw {
		h, err := strconv.Atoi(k)
		if err != nil || h < 1 || h > HoursPerDay || strconv.Itoa(h) != k {
			return fmt.Errorf("%w: %q", ErrInvalidHour, k)
		}
		res[h-1] = s
	}
	*m = res
	return nil
}
