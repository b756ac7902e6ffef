package parser

import (
	"fmt"
	"regexp"
	"slices"
	"time"

	"github.com/Roma7-7-7/cek-notifier/internal/schedule"
)

// updateGroupPatterns are tried in order; group IDs keep the order they are first seen in.
//
//nolint:gochecknoglobals // compiled once
var updateGroupPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)підчерги` + ws + `+(\d+\.\d+)`),
	regexp.MustCompile(`(?i)черги` + ws + `+(\d+\.\d+)`),
	regexp.MustCompile(`(?i)підчерга` + ws + `+(\d+\.\d+)`),
	regexp.MustCompile(`(?i)черга` + ws + `+(\d+\.\d+)`),
}

// ParseUpdate extracts affected groups and outage intervals from a follow-up post.
//
// "продовжується до HH:MM" starts at now, so parsing the same post later yields a different
// interval. When the end is not after now it is taken to be on the next day.
func (p *Parser) ParseUpdate(text string, now time.Time) (schedule.Update, error) {
	if !IsUpdatePost(text) {
		return schedule.Update{}, ErrNotUpdate
	}

	groups := p.updateGroups(text)
	if len(groups) == 0 {
		p.log.Info("update post without groups")
		return schedule.Update{}, ErrNoGroups
	}

	intervals := p.intervals(text, "")
	for _, m := range continuesUntilRegexp.FindAllStringSubmatch(text, -1) {
		iv, err := continuesUntil(m[1], now)
		if err != nil {
			p.log.Warn("skipping malformed end time", "to", m[1], "error", err)
			continue
		}
		intervals = append(intervals, iv)
	}
	if len(intervals) == 0 {
		p.log.Info("update post without intervals", "groups", groups)
		return schedule.Update{}, ErrNoIntervals
	}

	p.log.Debug("update parsed", "groups", groups, "intervals", len(intervals))
	return schedule.Update{Groups: groups, Intervals: intervals}, nil
}

func (p *Parser) updateGroups(text string) []schedule.GroupID {
	var res []schedule.GroupID
	for _, re := range updateGroupPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			g, err := schedule.GroupIDFromNumber(m[1])
			if err != nil {
				p.log.Warn("skipping group reference", "number", m[1], "error", err)
				continue
			}
			if !slices.Contains(res, g) {
				res = append(res, g)
			}
		}
	}
	return res
}

func continuesUntil(end string, now time.Time) (schedule.Interval, error) {
	to, err := schedule.ParseClock(end)
	if err != nil {
		return schedule.Interval{}, fmt.Errorf("parse end time: %w", err)
	}
	from := float64(now.Hour()) + float64(now.Minute())/60 //nolint:mnd // minutes per hour
	if to <= from {
		to += schedule.HoursPerDay
	}
	return schedule.Interval{From: from, To: to}, nil
}
