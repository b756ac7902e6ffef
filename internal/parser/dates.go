package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Roma7-7-7/cek-notifier/internal/schedule"
)

// months maps genitive month names to their numbers.
//
//nolint:gochecknoglobals // fixed vocabulary
var months = map[string]time.Month{
	"січня":     time.January,
	"лютого":    time.February,
	"березня":   time.March,
	"квітня":    time.April,
	"травня":    time.May,
	"червня":    time.June,
	"липня":     time.July,
	"серпня":    time.August,
	"вересня":   time.September,
	"жовтня":    time.October,
	"листопада": time.November,
	"грудня":    time.December,
}

// weekdays holds accusative and genitive weekday forms accepted after "у".
//
//nolint:gochecknoglobals // fixed vocabulary
var weekdays = map[string]struct{}{
	"понеділок": {}, "вівторок": {}, "середу": {}, "четвер": {}, "пʼятницю": {}, "суботу": {}, "неділю": {},
	"понеділка": {}, "вівторка": {}, "середи": {}, "четверга": {}, "пʼятниці": {}, "суботи": {}, "неділі": {},
}

const monthNames = `(січня|лютого|березня|квітня|травня|червня|липня|серпня|вересня|жовтня|листопада|грудня)`

type dateMatcher interface {
	name() string
	match(text string, year int) (schedule.Date, bool)
}

// dateMatchers are tried in order; the first one to produce a valid date wins.
//
//nolint:gochecknoglobals // strategy list
var dateMatchers = []dateMatcher{
	monthMatcher{
		label: "caps_month",
		re:    regexp.MustCompile(`(?i)(\d{1,2})` + ws + `+` + strings.ToUpper(monthNames)),
	},
	weekdayMatcher{
		re: regexp.MustCompile(`(?i)у` + ws + `+([\p{L}ʼ'’]+),` + ws + `+(\d{1,2})` + ws + `+` + monthNames),
	},
	monthMatcher{
		label: "plain_month",
		re:    regexp.MustCompile(`(?i)(\d{1,2})` + ws + `+` + monthNames),
	},
}

// ExtractDate finds the announced calendar day in a post. The year is always taken from now,
// so a post published in December about January resolves to the wrong year.
func (p *Parser) ExtractDate(text string, now time.Time) (schedule.Date, bool) {
	for _, m := range dateMatchers {
		if d, ok := m.match(text, now.Year()); ok {
			p.log.Debug("date extracted", "matcher", m.name(), "date", d.String())
			return d, true
		}
	}
	return schedule.Date{}, false
}

type monthMatcher struct {
	label string
	re    *regexp.Regexp
}

func (m monthMatcher) name() string {
	return m.label
}

func (m monthMatcher) match(text string, year int) (schedule.Date, bool) {
	for _, sm := range m.re.FindAllStringSubmatch(text, -1) {
		if d, ok := buildDate(year, sm[2], sm[1]); ok {
			return d, true
		}
	}
	return schedule.Date{}, false
}

type weekdayMatcher struct {
	re *regexp.Regexp
}

func (m weekdayMatcher) name() string {
	return "weekday"
}

func (m weekdayMatcher) match(text string, year int) (schedule.Date, bool) {
	for _, sm := range m.re.FindAllStringSubmatch(text, -1) {
		if !isWeekday(sm[1]) {
			continue
		}
		if d, ok := buildDate(year, sm[3], sm[2]); ok {
			return d, true
		}
	}
	return schedule.Date{}, false
}

func isWeekday(v string) bool {
	v = strings.ToLower(v)
	v = strings.NewReplacer("'", "ʼ", "’", "ʼ").Replace(v)
	_, ok := weekdays[v]
	return ok
}

func buildDate(year int, monthName, day string) (schedule.Date, bool) {
	month, ok := months[strings.ToLower(monthName)]
	if !ok {
		return schedule.Date{}, false
	}
	n, err := strconv.Atoi(day)
	if err != nil {
		return schedule.Date{}, false
	}
	d, err := schedule.NewDate(year, month, n)
	if err != nil {
		return schedule.Date{}, false
	}
	return d, true
}
