package table

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortField names the record field used to order the table.
type SortField string

const (
	SortNone      SortField = ""
	SortName      SortField = "name"
	SortEmail     SortField = "email"
	SortDate      SortField = "date"
	SortInvitedBy SortField = "invitedBy"
	SortStatus    SortField = "status"
)

// SortFields returns every sortable field in column order.
func SortFields() []SortField {
	return []SortField{SortName, SortEmail, SortDate, SortInvitedBy, SortStatus}
}

// ParseSortField matches value against the sortable fields, ignoring case.
func ParseSortField(value string) (SortField, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return SortNone, true
	}
	for _, field := range SortFields() {
		if strings.EqualFold(string(field), value) {
			return field, true
		}
	}
	return SortNone, false
}

// Direction is the sort order.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == Desc {
		return Asc
	}
	return Desc
}

// collationTag drives string comparison for every text column.
var collationTag = language.English

// Sort returns records ordered by field and direction. Ties keep their input
// order in both directions; SortNone returns the input order unchanged.
func Sort(records []Record, field SortField, dir Direction) []Record {
	out := slices.Clone(records)
	cmp := comparator(field)
	if cmp == nil {
		return out
	}
	if dir == Desc {
		asc := cmp
		cmp = func(a, b Record) int { return -asc(a, b) }
	}
	slices.SortStableFunc(out, cmp)
	return out
}

func comparator(field SortField) func(a, b Record) int {
	switch field {
	case SortDate:
		return compareDates
	case SortName:
		return compareText(func(r Record) string { return r.About.Name })
	case SortEmail:
		return compareText(func(r Record) string { return r.About.Email })
	case SortInvitedBy:
		return compareText(func(r Record) string { return r.Details.InvitedBy })
	case SortStatus:
		return compareText(func(r Record) string { return string(r.About.Status) })
	default:
		return nil
	}
}

// compareText builds a collating comparator. A collator is not safe for
// concurrent use, so each sort gets its own.
func compareText(key func(Record) string) func(a, b Record) int {
	collator := collate.New(collationTag)
	return func(a, b Record) int {
		return collator.CompareString(key(a), key(b))
	}
}

// compareDates orders by parsed date; unparsable dates sort as the zero time.
func compareDates(a, b Record) int {
	da, _ := a.ParsedDate()
	db, _ := b.ParsedDate()
	return da.Compare(db)
}
