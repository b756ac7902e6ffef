package service

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"text/template"

	"github.com/Roma7-7-7/cek-notifier/internal/schedule"
)

//nolint:gochecknoglobals // it's template
var messageTemplate = template.Must(template.New("message").Parse(`Графік погодинних відключень:
{{range .Dates}}
📅 {{.Date}}:
{{range .Groups}}Черга {{.Group}}:
{{range .StatusLines}}  {{.Emoji}} {{.Label}}:{{range .Periods}} {{.}};{{end}}
{{else}}  🟢 Без відключень
{{end}}{{end}}{{end}}`))

//nolint:gochecknoglobals // it's template
var errorTemplate = template.Must(template.New("error").Parse(`⚠️ Помилка процесу {{.Process}}:
{{.Error}}`))

type (
	StatusLine struct {
		Emoji   string
		Label   string
		Periods []schedule.Period
	}

	GroupSchedule struct {
		Group       string
		StatusLines []StatusLine
	}

	DateSchedule struct {
		Date   string
		Groups []GroupSchedule
	}

	ScheduleMessage struct {
		Dates []DateSchedule
	}

	// Day is a dated table to render.
	Day struct {
		Date  schedule.Date
		Table schedule.DayTable
	}
)

// RenderSchedule renders the outage periods of every group of the given days.
func RenderSchedule(days ...Day) (string, error) {
	dates := make([]DateSchedule, 0, len(days))
	for _, d := range days {
		dates = append(dates, buildDateSchedule(d.Date, d.Table))
	}
	return renderScheduleMessage(dates)
}

// buildDateSchedule lists every group of the table in (major, minor) order.
func buildDateSchedule(date schedule.Date, table schedule.DayTable) DateSchedule {
	res := DateSchedule{Date: date.String()}
	for _, g := range table.Groups() {
		res.Groups = append(res.Groups, buildGroupSchedule(g, table[g]))
	}
	return res
}

func buildGroupSchedule(group schedule.GroupID, hours schedule.HourMap) GroupSchedule {
	grouped := make(map[schedule.Availability][]schedule.Period)
	for _, p := range hours.Outages() {
		grouped[p.State] = append(grouped[p.State], p)
	}

	res := GroupSchedule{Group: group.Number()}
	for _, line := range []StatusLine{
		{Emoji: "🔴", Label: "Відключено", Periods: grouped[schedule.Off]},
		{Emoji: "🟡", Label: "Можливе відключення", Periods: grouped[schedule.PossiblyOff]},
	} {
		if len(line.Periods) > 0 {
			res.StatusLines = append(res.StatusLines, line)
		}
	}
	return res
}

func renderScheduleMessage(dates []DateSchedule) (string, error) {
	var buf bytes.Buffer
	if err := messageTemplate.Execute(&buf, ScheduleMessage{Dates: dates}); err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}
	return buf.String(), nil
}

func renderErrorMessage(process string, err error) (string, error) {
	var buf bytes.Buffer
	if execErr := errorTemplate.Execute(&buf, struct {
		Process string
		Error   string
	}{Process: process, Error: err.Error()}); execErr != nil {
		return "", fmt.Errorf("execute template: %w", execErr)
	}
	return buf.String(), nil
}

// dayHash identifies the content of a day table.
func dayHash(table schedule.DayTable) (string, error) {
	data, err := table.MarshalJSON()
	if err != nil {
		return "", fmt.Errorf("marshal day table: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
