package record

import (
	"strconv"
	"strings"
	"time"
)

// DateLayout is the display layout of record dates.
const DateLayout = "02 Jan 2006"

var monthsByAbbrev = map[string]time.Month{
	"jan": time.January,
	"feb": time.February,
	"mar": time.March,
	"apr": time.April,
	"may": time.May,
	"jun": time.June,
	"jul": time.July,
	"aug": time.August,
	"sep": time.September,
	"oct": time.October,
	"nov": time.November,
	"dec": time.December,
}

// ParseDate parses a "<day> <Mon> <year>" date as a UTC calendar day.
//
// The bool is false for malformed input, including days that do not exist in
// the given month.
func ParseDate(value string) (time.Time, bool) {
	fields := strings.Fields(value)
	if len(fields) != 3 {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(fields[0])
	if err != nil || day < 1 || day > 31 {
		return time.Time{}, false
	}
	month, ok := monthsByAbbrev[strings.ToLower(fields[1])]
	if !ok {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(fields[2])
	if err != nil || year < 1 {
		return time.Time{}, false
	}
	parsed := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes 31 Feb into March.
	if parsed.Day() != day {
		return time.Time{}, false
	}
	return parsed, true
}

// FormatDate formats t with DateLayout.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// ParsedDate returns the record's parsed date.
func (r Record) ParsedDate() (time.Time, bool) {
	return ParseDate(r.Details.Date)
}
