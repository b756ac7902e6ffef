package schedule

// Availability is the power state of a half-hour.
type Availability uint8

const (
	On Availability = iota
	PossiblyOff
	Off
)

// Period is a run of consecutive half-hours with the same availability.
type Period struct {
	From  float64
	To    float64
	State Availability
}

func (p Period) String() string {
	return FormatClock(p.From) + " - " + FormatClock(p.To)
}

// Periods joins the day into runs of equal availability at half-hour resolution.
func (m HourMap) Periods() []Period {
	var res []Period
	for h := 1; h <= HoursPerDay; h++ {
		first, second := m.At(h).halves()
		start := float64(h - 1)
		res = appendHalf(res, start, first)
		res = appendHalf(res, start+0.5, second) //nolint:mnd // half an hour
	}
	return res
}

// Outages returns only the periods without guaranteed power.
func (m HourMap) Outages() []Period {
	var res []Period
	for _, p := range m.Periods() {
		if p.State != On {
			res = append(res, p)
		}
	}
	return res
}

func appendHalf(periods []Period, from float64, state Availability) []Period {
	to := from + 0.5 //nolint:mnd // half an hour
	if n := len(periods); n > 0 && periods[n-1].State == state && periods[n-1].To == from {
		periods[n-1].To = to
		return periods
	}
	return append(periods, Period{From: from, To: to, State: state})
}
