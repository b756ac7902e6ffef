package testutil

import (
	"fmt"
	"time"

	"github.com/Roma7-7-7/cek-notifier/internal/dal"
	"github.com/Roma7-7-7/cek-notifier/internal/schedule"
)

//nolint:gochecknoglobals // single-letter cell codes used by the builders
var cellCodes = map[rune]schedule.CellState{
	'Y': schedule.Yes,
	'N': schedule.No,
	'M': schedule.Maybe,
	'F': schedule.First,
	'S': schedule.Second,
	'f': schedule.MaybeFirst,
	's': schedule.MaybeSecond,
}

// Hours builds an hour map from 24 cell codes, hour "1" first:
// Y yes, N no, M maybe, F first, S second, f mfirst, s msecond.
func Hours(codes string) schedule.HourMap {
	runes := []rune(codes)
	if len(runes) != schedule.HoursPerDay {
		panic(fmt.Sprintf("expected %d cell codes, got %d", schedule.HoursPerDay, len(runes)))
	}

	var res schedule.HourMap
	for i, r := range runes {
		state, ok := cellCodes[r]
		if !ok {
			panic(fmt.Sprintf("unknown cell code %q", r))
		}
		res[i] = state
	}
	return res
}

// DayTableBuilder provides fluent API for building test day tables
type DayTableBuilder struct {
	table schedule.DayTable
}

func NewDayTable() *DayTableBuilder {
	return &DayTableBuilder{table: schedule.DayTable{}}
}

// WithGroup sets the hours of a group, see Hours for the code format
func (b *DayTableBuilder) WithGroup(group schedule.GroupID, codes string) *DayTableBuilder {
	b.table[group] = Hours(codes)
	return b
}

func (b *DayTableBuilder) Build() schedule.DayTable {
	return b.table
}

// DocumentBuilder provides fluent API for building test documents
type DocumentBuilder struct {
	doc schedule.Document
	loc *time.Location
}

func NewDocument(loc *time.Location) *DocumentBuilder {
	return &DocumentBuilder{
		doc: schedule.NewDocument("dnipro"),
		loc: loc,
	}
}

// WithDay adds a day table keyed by the local midnight of date ("DD.MM.YYYY")
func (b *DocumentBuilder) WithDay(date string, table schedule.DayTable) *DocumentBuilder {
	b.doc.Fact.Data[MustDate(date).Key(b.loc)] = table
	return b
}

// WithToday sets fact.today to the key of date
func (b *DocumentBuilder) WithToday(date string) *DocumentBuilder {
	b.doc.Fact.Today = int64(MustDate(date).Key(b.loc))
	return b
}

// WithTouched stamps the document as written at now
func (b *DocumentBuilder) WithTouched(now time.Time) *DocumentBuilder {
	b.doc.Touch(now, b.loc)
	return b
}

func (b *DocumentBuilder) Build() schedule.Document {
	return b.doc
}

// PublicationBuilder provides fluent API for building test publications
type PublicationBuilder struct {
	p dal.Publication
}

func NewPublication(chatID int64, date string) *PublicationBuilder {
	return &PublicationBuilder{
		p: dal.Publication{
			ChatID: chatID,
			Date:   MustDate(date),
			SentAt: time.Now(),
		},
	}
}

func (b *PublicationBuilder) WithHash(hash string) *PublicationBuilder {
	b.p.Hash = hash
	return b
}

func (b *PublicationBuilder) WithSentAt(t time.Time) *PublicationBuilder {
	b.p.SentAt = t
	return b
}

func (b *PublicationBuilder) Build() dal.Publication {
	return b.p
}

func MustDate(v string) schedule.Date {
	d, err := schedule.ParseDate(v)
	if err != nil {
		panic(err)
	}
	return d
}
