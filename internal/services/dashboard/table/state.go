package table

import "time"

// State is the full set of table controls: filters, sort and page.
//
// Transitions return a new State and never mutate the receiver. Any change
// to a filter or the sort resets the page to 1.
type State struct {
	Criteria
	Sort      SortField
	Direction Direction
	Page      int
}

// DefaultState shows every record, unsorted, on page 1.
func DefaultState() State {
	return State{
		Criteria:  Criteria{Status: StatusAll},
		Direction: Asc,
		Page:      1,
	}
}

// WithSearch sets the name search text.
func (s State) WithSearch(search string) State {
	s.Search = search
	s.Page = 1
	return s
}

// WithStatus sets the status filter.
func (s State) WithStatus(status StatusFilter) State {
	if status == "" {
		status = StatusAll
	}
	s.Status = status
	s.Page = 1
	return s
}

// WithDateFrom sets the inclusive start day; a zero time clears it.
func (s State) WithDateFrom(from time.Time) State {
	if !from.IsZero() {
		from = StartOfDay(from)
	}
	s.From = from
	s.Page = 1
	return s
}

// WithDateTo sets the inclusive end day; a zero time clears it.
func (s State) WithDateTo(to time.Time) State {
	if !to.IsZero() {
		to = StartOfDay(to)
	}
	s.To = to
	s.Page = 1
	return s
}

// ClearFilters drops every filter and keeps the sort.
func (s State) ClearFilters() State {
	s.Criteria = Criteria{Status: StatusAll}
	s.Page = 1
	return s
}

// ToggleSort reverses the direction when field is already active, otherwise
// selects field ascending.
func (s State) ToggleSort(field SortField) State {
	if field != SortNone && s.Sort == field {
		s.Direction = s.Direction.Reverse()
	} else {
		s.Sort = field
		s.Direction = Asc
	}
	s.Page = 1
	return s
}

// FirstPage moves to page 1.
func (s State) FirstPage() State {
	s.Page = 1
	return s
}

// PrevPage moves back one page, stopping at 1.
func (s State) PrevPage(totalPages int) State {
	s.Page = ClampPage(s.Page-1, totalPages)
	return s
}

// NextPage moves forward one page, stopping at totalPages.
func (s State) NextPage(totalPages int) State {
	s.Page = ClampPage(s.Page+1, totalPages)
	return s
}

// LastPage moves to totalPages.
func (s State) LastPage(totalPages int) State {
	s.Page = ClampPage(totalPages, totalPages)
	return s
}

// GoToPage moves to page, clamped into range.
func (s State) GoToPage(page, totalPages int) State {
	s.Page = ClampPage(page, totalPages)
	return s
}

// View is the rendered result of running the pipeline for a State.
type View struct {
	// State has its page clamped to the available range.
	State State
	Page  Page
}

// Apply runs filter, sort and paginate over records.
func Apply(records []Record, s State) View {
	filtered := Filter(records, s.Criteria)
	sorted := Sort(filtered, s.Sort, s.Direction)
	page := Paginate(sorted, s.Page, PageSize)
	s.Page = page.Number
	return View{State: s, Page: page}
}
