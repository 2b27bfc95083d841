package scheduling

import (
	"strings"
	"time"
)

// dayVocabulary lists the accepted tokens for each weekday: the English name
// and the Indonesian one.
var dayVocabulary = map[time.Weekday][]string{
	time.Monday:    {"senin", "monday"},
	time.Tuesday:   {"selasa", "tuesday"},
	time.Wednesday: {"rabu", "wednesday"},
	time.Thursday:  {"kamis", "thursday"},
	time.Friday:    {"jumat", "friday"},
	time.Saturday:  {"sabtu", "saturday"},
	time.Sunday:    {"minggu", "sunday"},
}

var dayLookup = buildDayLookup()

func buildDayLookup() map[string]time.Weekday {
	lookup := make(map[string]time.Weekday, 14)
	for weekday, tokens := range dayVocabulary {
		lookup[strings.ToLower(weekday.String())] = weekday
		for _, token := range tokens {
			lookup[token] = weekday
		}
	}
	return lookup
}

// ParseDay resolves a day token, case-insensitively, to its weekday.
func ParseDay(token string) (time.Weekday, bool) {
	weekday, ok := dayLookup[strings.ToLower(strings.TrimSpace(token))]
	return weekday, ok
}

// IsValidDay reports whether token names a weekday in any supported language.
func IsValidDay(token string) bool {
	_, ok := ParseDay(token)
	return ok
}
