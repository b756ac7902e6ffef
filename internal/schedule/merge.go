package schedule

import (
	"fmt"
	"time"
)

type (
	// Update is a partial instruction parsed from a follow-up announcement.
	Update struct {
		Groups    []GroupID
		Intervals []Interval
	}

	// Change is a cell transition caused by an update.
	Change struct {
		Group GroupID
		HourChange
	}
)

// ApplyUpdate merges u into the table stored for target. Absent groups start with power
// available for the whole day. Timestamps are touched only when at least one cell changed.
func (d *Document) ApplyUpdate(u Update, target Date, now time.Time, loc *time.Location) ([]Change, error) {
	key := target.Key(loc)
	table, ok := d.Fact.Data[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s (%s)", ErrDayNotFound, target, key)
	}

	var changes []Change
	for _, g := range u.Groups {
		hours, exists := table[g]
		if !exists {
			hours = NewHourMap()
		}

		cells := hours.MarkAll(u.Intervals...)
		if len(cells) == 0 {
			continue
		}
		table[g] = hours
		for _, c := range cells {
			changes = append(changes, Change{Group: g, HourChange: c})
		}
	}

	if len(changes) > 0 {
		d.Touch(now, loc)
	}
	return changes, nil
}

// Merge overlays fresh day tables onto the stored days that are still current.
// Tables in fresh replace stored tables for the same day; stored days not in keep are dropped.
func (d Days) Merge(fresh Days, keep ...DayKey) Days {
	res := make(Days, len(fresh)+len(keep))
	for _, k := range keep {
		if t, ok := d[k]; ok {
			res[k] = t.Clone()
		}
	}
	for k, t := range fresh {
		res[k] = t.Clone()
	}
	return res
}
