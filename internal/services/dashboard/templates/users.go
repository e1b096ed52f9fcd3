package templates

// Element ids shared by the users page and its HTMX responses.
const (
	UsersPanelID     = "users-panel"
	UsersFilterID    = "users-filter"
	UsersOrderByID   = "users-order-by"
	usersPanelTarget = "#" + UsersPanelID
)

// UsersPageView provides data for the users page.
type UsersPageView struct {
	Filter FilterView
	Panel  UsersPanelView
}

// FilterView holds the filter form inputs.
type FilterView struct {
	// Action is the plain form target; TableURL is the HTMX target.
	Action   string
	TableURL string
	Search   string
	Status   string
	From     string
	To       string
	OrderBy  string
	Statuses []SelectOption
	ClearURL string
	// Active reports whether any filter is applied.
	Active bool
}

// SelectOption is one option of a select input.
type SelectOption struct {
	Value    string
	LabelKey string
	Selected bool
}

// UsersPanelView holds the stats, table and pagination swapped by HTMX.
type UsersPanelView struct {
	// Notice is an already localized confirmation message.
	Notice     string
	Stats      []StatCard
	Headers    []HeaderCell
	Rows       []UserRow
	Pagination PaginationView
	// OrderBy is pushed out of band to the filter form when SwapOrderBy is set.
	OrderBy     string
	SwapOrderBy bool
}

// StatCard is one aggregate counter.
type StatCard struct {
	LabelKey    string
	Count       int
	Percent     int
	ShowPercent bool
}

// HeaderCell is one column header. Sortable headers carry a toggle link.
type HeaderCell struct {
	LabelKey string
	Sortable bool
	// Direction is "asc" or "desc" on the active column, empty otherwise.
	Direction string
	Link      Link
}

// Link pairs a plain href with its HTMX fragment URL.
type Link struct {
	Href     string
	HXGet    string
	Disabled bool
}

// UserRow represents a row in the users table.
type UserRow struct {
	ID        string
	Name      string
	Email     string
	Date      string
	InvitedBy string
	Status    string
	Actions   []RowAction
}

// RowAction is a status change button for one row.
type RowAction struct {
	Status string
	URL    string
}

// PaginationView holds page navigation for the table.
type PaginationView struct {
	Number     int
	TotalPages int
	TotalItems int
	First      int
	Last       int
	FirstLink  Link
	PrevLink   Link
	NextLink   Link
	LastLink   Link
}

// StatusBadgeClass maps a status onto its badge style.
func StatusBadgeClass(status string) string {
	switch status {
	case "ACTIVE":
		return "badge badge-success"
	case "INVITED":
		return "badge badge-info"
	case "BLOCKED":
		return "badge badge-error"
	default:
		return "badge"
	}
}

// StatusLabelKey returns the catalog key for a status label.
func StatusLabelKey(status string) string {
	return "users.status." + status
}

// ActionLabelKey returns the catalog key for a status change button.
func ActionLabelKey(status string) string {
	return "users.action." + status
}
