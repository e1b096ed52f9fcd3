package table

import (
	"strings"
	"time"

	"github.com/louisbranch/userdash/internal/services/dashboard/record"
	"golang.org/x/text/cases"
)

// Record aliases record.Record for pipeline signatures.
type Record = record.Record

// StatusFilter selects records by status. StatusAll disables the check.
type StatusFilter string

// StatusAll matches every status.
const StatusAll StatusFilter = "ALL"

// ParseStatusFilter parses a status filter value, falling back to StatusAll.
func ParseStatusFilter(value string) StatusFilter {
	status, err := record.ParseStatus(value)
	if err != nil {
		return StatusAll
	}
	return StatusFilter(status)
}

// Matches reports whether status passes the filter.
func (f StatusFilter) Matches(status record.Status) bool {
	if f == "" || f == StatusAll {
		return true
	}
	return record.Status(f) == status
}

// Criteria are the filter inputs. Zero dates mean the bound is not set, so a
// bound of 0001-01-01 cannot be expressed and reads as unbounded.
type Criteria struct {
	Status StatusFilter
	Search string
	From   time.Time
	To     time.Time
}

// HasDateBounds reports whether either date bound is set.
func (c Criteria) HasDateBounds() bool {
	return !c.From.IsZero() || !c.To.IsZero()
}

// IsZero reports whether the criteria let every record through.
func (c Criteria) IsZero() bool {
	return (c.Status == "" || c.Status == StatusAll) &&
		strings.TrimSpace(c.Search) == "" && !c.HasDateBounds()
}

// StartOfDay truncates t to 00:00:00 UTC of its calendar day.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// EndOfDay returns 23:59:59.999 UTC of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Millisecond)
}

// Filter returns the records passing c, in their original relative order.
func Filter(records []Record, c Criteria) []Record {
	matcher := newMatcher(c)
	out := make([]Record, 0, len(records))
	for _, rec := range records {
		if matcher.match(rec) {
			out = append(out, rec)
		}
	}
	return out
}

type matcher struct {
	status    StatusFilter
	search    string
	fold      cases.Caser
	hasBounds bool
	from      time.Time
	to        time.Time
}

func newMatcher(c Criteria) *matcher {
	m := &matcher{
		status:    c.Status,
		fold:      cases.Fold(),
		hasBounds: c.HasDateBounds(),
	}
	m.search = m.fold.String(strings.TrimSpace(c.Search))
	if !c.From.IsZero() {
		m.from = StartOfDay(c.From)
	}
	if !c.To.IsZero() {
		m.to = EndOfDay(c.To)
	}
	return m
}

func (m *matcher) match(rec Record) bool {
	if !m.status.Matches(rec.About.Status) {
		return false
	}
	if m.search != "" && !strings.Contains(m.fold.String(rec.About.Name), m.search) {
		return false
	}
	if !m.hasBounds {
		return true
	}
	date, ok := rec.ParsedDate()
	if !ok {
		return false
	}
	if !m.from.IsZero() && date.Before(m.from) {
		return false
	}
	if !m.to.IsZero() && date.After(m.to) {
		return false
	}
	return true
}
