// Package parser turns Ukrainian outage announcements into schedule tables and updates.
package parser

import (
	"log/slog"
	"regexp"
)

// ws matches any Unicode space. Channel posts routinely contain non-breaking spaces.
const ws = `[\s\p{Z}]`

//nolint:gochecknoglobals // compiled once
var (
	groupDeclarationRegexp = regexp.MustCompile(`📌\x{FE0F}?` + ws + `*(\d+\.\d+)` + ws + `*черг[аи]:`)
	intervalRegexp         = regexp.MustCompile(`з` + ws + `+(\d{1,2}:\d{2})` + ws + `+до` + ws + `+(\d{1,2}:\d{2})`)
	warningRegexp          = regexp.MustCompile(`Попереджаємо`)
	continuesUntilRegexp   = regexp.MustCompile(`продовжується` + ws + `+до` + ws + `+(\d{1,2}:\d{2})`)
)

type Parser struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Parser {
	return &Parser{
		log: log.With("component", "parser"),
	}
}
