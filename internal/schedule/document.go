package schedule

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"time"
)

const (
	lastUpdatedLayout = "2006-01-02T15:04:05.000Z"
	updateLayout      = "02.01.2006 15:04"
)

type (
	// DayTable holds the hour maps of every group announced for one day.
	DayTable map[GroupID]HourMap

	// Days maps local-midnight keys to day tables.
	Days map[DayKey]DayTable

	Fact struct {
		Data   Days   `json:"data"`
		Update string `json:"update"`
		Today  int64  `json:"today"`
	}

	// Preset is the static lookup block consumed by renderers. A stored block is written
	// back as it was read; the zero value writes the default block.
	Preset struct {
		raw json.RawMessage
	}

	Document struct {
		RegionID    string `json:"regionId"`
		LastUpdated string `json:"lastUpdated"`
		Fact        Fact   `json:"fact"`
		Preset      Preset `json:"preset"`
	}
)

//nolint:gochecknoglobals // static labels
var stateLabels = map[CellState]string{
	Yes:         "Світло є",
	Maybe:       "Можливе відключення",
	No:          "Світла немає",
	First:       "Світла не буде перші 30 хв.",
	Second:      "Світла не буде другі 30 хв",
	MaybeFirst:  "Можливо світла не буде перші 30 хв.",
	MaybeSecond: "Можливо світла не буде другі 30 хв",
}

func NewDocument(regionID string) Document {
	return Document{
		RegionID: regionID,
		Fact: Fact{
			Data: Days{},
		},
	}
}

// Touch stamps the document as written at now.
func (d *Document) Touch(now time.Time, loc *time.Location) {
	d.LastUpdated = now.UTC().Format(lastUpdatedLayout)
	d.Fact.Update = now.In(loc).Format(updateLayout)
}

// Clone returns a deep copy. Hour maps are arrays, so copying the maps is enough.
func (d Document) Clone() Document {
	res := d
	res.Fact.Data = d.Fact.Data.Clone()
	return res
}

func (t DayTable) Groups() []GroupID {
	groups := slices.Collect(maps.Keys(t))
	SortGroups(groups)
	return groups
}

func (t DayTable) Clone() DayTable {
	if t == nil {
		return nil
	}
	return maps.Clone(t)
}

func (t DayTable) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, g := range t.Groups() {
		if i > 0 {
			buf.WriteByte(',')
		}
		hours, err := t[g].MarshalJSON()
		if err != nil {
			return nil, fmt.Errorf("marshal group %s: %w", g, err)
		}
		fmt.Fprintf(&buf, "%q:", g)
		buf.Write(hours)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (t *DayTable) UnmarshalJSON(b []byte) error {
	raw := make(map[string]HourMap)
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("unmarshal day table: %w", err)
	}
	res := make(DayTable, len(raw))
	for k, hours := range raw {
		g, err := ParseGroupID(k)
		if err != nil {
			return err
		}
		res[g] = hours
	}
	*t = res
	return nil
}

// Keys returns day keys in ascending numeric order.
func (d Days) Keys() []DayKey {
	return slices.Sorted(maps.Keys(d))
}

func (d Days) Clone() Days {
	res := make(Days, len(d))
	for k, t := range d {
		res[k] = t.Clone()
	}
	return res
}

// Canonical returns the serialization used to detect changes between two sets of days.
func (d Days) Canonical() ([]byte, error) {
	return json.Marshal(d)
}

// Equal reports whether both sets hold the same days, groups and cells.
func (d Days) Equal(other Days) bool {
	return maps.EqualFunc(d, other, func(a, b DayTable) bool {
		return maps.Equal(a, b)
	})
}

func (d Days) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range d.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		table, err := d[k].MarshalJSON()
		if err != nil {
			return nil, fmt.Errorf("marshal day %s: %w", k, err)
		}
		fmt.Fprintf(&buf, "%q:", k.String())
		buf.Write(table)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (d *Days) UnmarshalJSON(b []byte) error {
	raw := make(map[string]DayTable)
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("unmarshal days: %w", err)
	}
	res := make(Days, len(raw))
	for k, t := range raw {
		key, err := ParseDayKey(k)
		if err != nil {
			return err
		}
		res[key] = t
	}
	*d = res
	return nil
}

func (p Preset) MarshalJSON() ([]byte, error) {
	if len(p.raw) > 0 {
		return p.raw, nil
	}
	return defaultPreset()
}

func defaultPreset() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"time_zone":{`)
	for h := 1; h <= HoursPerDay; h++ {
		if h > 1 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, `"%d":["%02d-%02d","%02d:00","%02d:00"]`, h, h-1, h, h-1, h)
	}
	buf.WriteString(`},"time_type":{`)
	for i, s := range CellStates {
		if i > 0 {
			buf.WriteByte(',')
		}
		label, err := json.Marshal(stateLabels[s])
		if err != nil {
			return nil, fmt.Errorf("marshal label for %s: %w", s, err)
		}
		fmt.Fprintf(&buf, "%q:", s)
		buf.Write(label)
	}
	buf.WriteString(`}}`)
	return buf.Bytes(), nil
}

// UnmarshalJSON keeps the stored block unless it is the default one.
func (p *Preset) UnmarshalJSON(b []byte) error {
	var buf bytes.Buffer
	if err := json.Compact(&buf, b); err != nil {
		return fmt.Errorf("compact preset: %w", err)
	}
	if buf.String() == "null" {
		*p = Preset{}
		return nil
	}

	def, err := defaultPreset()
	if err != nil {
		return err
	}
	if bytes.Equal(buf.Bytes(), def) {
		*p = Preset{}
		return nil
	}
	*p = Preset{raw: buf.Bytes()}
	return nil
}

// Label returns the human-readable description renderers show for a state.
func Label(s CellState) string {
	return stateLabels[s]
}
