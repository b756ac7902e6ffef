package parser

import (
	"github.com/Roma7-7-7/cek-notifier/internal/schedule"
)

// ParseSchedule builds a day table from a full schedule post. Every "📌 X.Y черги:" declaration
// opens a group whose scope runs to the next declaration, or for the last group to the warning
// footer or end of text. Groups not declared in the post are absent from the result.
func (p *Parser) ParseSchedule(text string) schedule.DayTable {
	declarations := groupDeclarationRegexp.FindAllStringSubmatchIndex(text, -1)
	if len(declarations) == 0 {
		return schedule.DayTable{}
	}

	res := make(schedule.DayTable, len(declarations))
	for i, decl := range declarations {
		number := text[decl[2]:decl[3]]
		group, err := schedule.GroupIDFromNumber(number)
		if err != nil {
			p.log.Warn("skipping group declaration", "number", number, "error", err)
			continue
		}

		start := decl[1]
		end := len(text)
		if i+1 < len(declarations) {
			end = declarations[i+1][0]
		} else if loc := warningRegexp.FindStringIndex(text[start:]); loc != nil {
			end = start + loc[0]
		}

		hours := schedule.NewHourMap()
		for _, iv := range p.intervals(text[start:end], group) {
			hours.MarkAll(iv)
		}
		res[group] = hours
	}

	return res
}

// intervals extracts "з HH:MM до HH:MM" ranges. Malformed ranges are logged and skipped.
func (p *Parser) intervals(text string, group schedule.GroupID) []schedule.Interval {
	var res []schedule.Interval
	for _, m := range intervalRegexp.FindAllStringSubmatch(text, -1) {
		iv, err := schedule.NewInterval(m[1], m[2])
		if err != nil {
			p.log.Warn("skipping malformed interval", "group", group, "from", m[1], "to", m[2], "error", err)
			continue
		}
		res = append(res, iv)
	}
	return res
}
