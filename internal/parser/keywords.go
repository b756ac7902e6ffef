package parser

import "strings"

// scheduleKeywords mark posts that announce a full day's rotation.
//
//nolint:gochecknoglobals // fixed vocabulary
var scheduleKeywords = []string{
	"графіки погодинних відключень",
	"ГПВ",
	"години відсутності електропостачання",
	"будуть діяти графіки",
	"планові роботи",
	"відключення електропостачання",
	"графік відключень",
	"застосовуватимуться відключення наступних черг",
	"відключення наступних черг",
	"черга:",
}

// updateKeywords mark short follow-ups that change part of an already announced day.
//
//nolint:gochecknoglobals // fixed vocabulary
var updateKeywords = []string{
	"додатково застосовуватиметься відключення",
	"продовжується до",
	"відключення продовжується",
	"додатково відключення",
	"за командою диспетчерського центру",
	`НЕК "Укренерго"`,
	"НЕК «Укренерго»",
	"підчерги",
	"черги",
}

// IsSchedulePost reports whether text looks like a full schedule announcement.
func IsSchedulePost(text string) bool {
	return containsAny(text, scheduleKeywords)
}

// IsUpdatePost reports whether text looks like an incremental update.
func IsUpdatePost(text string) bool {
	return containsAny(text, updateKeywords)
}

func containsAny(text string, keywords []string) bool {
	if text == "" {
		return false
	}
	lower := strings.ToLower(text)
	for _, k := range keywords {
		if strings.Contains(lower, strings.ToLower(k)) {
			return true
		}
	}
	return false
}
