package table

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.einride.tech/aip/ordering"
)

// Query parameter names carrying table state.
const (
	ParamStatus  = "status"
	ParamSearch  = "q"
	ParamFrom    = "from"
	ParamTo      = "to"
	ParamOrderBy = "order_by"
	ParamPage    = "page"
)

// DateParamLayout is the layout of the from/to parameters, as produced by
// HTML date inputs.
const DateParamLayout = "2006-01-02"

// ParseQuery reads table state from query values. Malformed values fall back
// to their defaults instead of failing.
func ParseQuery(values url.Values) State {
	state := DefaultState()
	if values == nil {
		return state
	}

	state.Status = ParseStatusFilter(values.Get(ParamStatus))
	state.Search = strings.TrimSpace(values.Get(ParamSearch))
	state.From = parseDateParam(values.Get(ParamFrom))
	state.To = parseDateParam(values.Get(ParamTo))
	state.Sort, state.Direction = parseOrderBy(values.Get(ParamOrderBy))

	if page, err := strconv.Atoi(strings.TrimSpace(values.Get(ParamPage))); err == nil && page > 0 {
		state.Page = page
	}
	return state
}

// Query encodes s, omitting values equal to their defaults.
func (s State) Query() url.Values {
	values := url.Values{}
	if s.Status != "" && s.Status != StatusAll {
		values.Set(ParamStatus, string(s.Status))
	}
	if search := strings.TrimSpace(s.Search); search != "" {
		values.Set(ParamSearch, search)
	}
	if !s.From.IsZero() {
		values.Set(ParamFrom, s.From.UTC().Format(DateParamLayout))
	}
	if !s.To.IsZero() {
		values.Set(ParamTo, s.To.UTC().Format(DateParamLayout))
	}
	if orderBy := s.OrderBy(); orderBy != "" {
		values.Set(ParamOrderBy, orderBy)
	}
	if s.Page > 1 {
		values.Set(ParamPage, strconv.Itoa(s.Page))
	}
	return values
}

// Encode returns the encoded query string for s.
func (s State) Encode() string {
	return s.Query().Encode()
}

// OrderBy formats the sort as an AIP-132 order_by string.
func (s State) OrderBy() string {
	if s.Sort == SortNone {
		return ""
	}
	if s.Direction == Desc {
		return string(s.Sort) + " desc"
	}
	return string(s.Sort)
}

func parseOrderBy(raw string) (SortField, Direction) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return SortNone, Asc
	}
	var orderBy ordering.OrderBy
	if err := orderBy.UnmarshalString(raw); err != nil {
		return SortNone, Asc
	}
	// Only one active sort key is supported.
	if len(orderBy.Fields) != 1 {
		return SortNone, Asc
	}
	field, ok := ParseSortField(orderBy.Fields[0].Path)
	if !ok || field == SortNone {
		return SortNone, Asc
	}
	if orderBy.Fields[0].Desc {
		return field, Desc
	}
	return field, Asc
}

// parseDateParam reads a YYYY-MM-DD bound. Malformed values and 0001-01-01
// both yield the zero time, which Criteria treats as no bound.
func parseDateParam(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	parsed, err := time.Parse(DateParamLayout, raw)
	if err != nil {
		return time.Time{}
	}
	return parsed
}
