package schedule

import (
	"encoding/json"
	"fmt"
)

type (
	// CellState describes power availability within one hour at half-hour granularity.
	CellState string

	// Half is the part of an hour slot covered by an outage interval.
	Half uint8
)

const (
	Yes         CellState = "yes"
	No          CellState = "no"
	Maybe       CellState = "maybe"
	First       CellState = "first"
	Second      CellState = "second"
	MaybeFirst  CellState = "mfirst"
	MaybeSecond CellState = "msecond"
)

const (
	HalfNone Half = iota
	HalfFirst
	HalfSecond
	HalfBoth
)

// CellStates lists every state in the order renderers expect them.
var CellStates = []CellState{Yes, Maybe, No, First, Second, MaybeFirst, MaybeSecond} //nolint:gochecknoglobals // enum

// transitions maps (existing state, incoming outage half) to the resulting state.
// A cell never moves away from an outage it already records.
//
//nolint:gochecknoglobals // lookup table
var transitions = map[CellState]map[Half]CellState{
	Yes:         {HalfFirst: First, HalfSecond: Second, HalfBoth: No},
	No:          {HalfFirst: No, HalfSecond: No, HalfBoth: No},
	Maybe:       {HalfFirst: First, HalfSecond: Second, HalfBoth: No},
	First:       {HalfFirst: First, HalfSecond: No, HalfBoth: No},
	Second:      {HalfFirst: No, HalfSecond: Second, HalfBoth: No},
	MaybeFirst:  {HalfFirst: First, HalfSecond: Second, HalfBoth: No},
	MaybeSecond: {HalfFirst: First, HalfSecond: Second, HalfBoth: No},
}

func (s CellState) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// Apply returns the state of a cell after an outage covering h is recorded on it.
func (s CellState) Apply(h Half) CellState {
	if h == HalfNone {
		return s
	}
	next, ok := transitions[s][h]
	if !ok {
		return s
	}
	return next
}

func (s CellState) String() string {
	return string(s)
}

func ParseCellState(v string) (CellState, error) {
	s := CellState(v)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCellState, v)
	}
	return s, nil
}

func (s *CellState) UnmarshalJSON(b []byte) error {
	var v string
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("unmarshal cell state: %w", err)
	}
	parsed, err := ParseCellState(v)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// halves returns the availability of the first and second half of an hour in that state.
func (s CellState) halves() (Availability, Availability) {
	switch s {
	case No:
		return Off, Off
	case Maybe:
		return PossiblyOff, PossiblyOff
	case First:
		return Off, On
	case Second:
		return On, Off
	case MaybeFirst:
		return PossiblyOff, On
	case MaybeSecond:
		return On, PossiblyOff
	default:
		return On, On
	}
}

func (h Half) String() string {
	switch h {
	case HalfFirst:
		return "first"
	case HalfSecond:
		return "second"
	case HalfBoth:
		return "both"
	default:
		return "none"
	}
}
