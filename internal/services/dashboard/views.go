package dashboard

import (
	"github.com/louisbranch/userdash/internal/services/dashboard/record"
	"github.com/louisbranch/userdash/internal/services/dashboard/routepath"
	"github.com/louisbranch/userdash/internal/services/dashboard/table"
	"github.com/louisbranch/userdash/internal/services/dashboard/templates"
)

// panelLink points a control at state, both as a page URL and a panel fragment.
func panelLink(state table.State) templates.Link {
	query := state.Encode()
	return templates.Link{
		Href:  routepath.WithQuery(routepath.Users, query),
		HXGet: routepath.WithQuery(routepath.UsersTable, query),
	}
}

func buildFilterView(state table.State) templates.FilterView {
	status := state.Status
	if status == "" {
		status = table.StatusAll
	}
	options := make([]templates.SelectOption, 0, len(record.Statuses())+1)
	options = append(options, templates.SelectOption{
		Value:    string(table.StatusAll),
		LabelKey: "users.filter.status_all",
		Selected: status == table.StatusAll,
	})
	for _, s := range record.Statuses() {
		options = append(options, templates.SelectOption{
			Value:    string(s),
			LabelKey: templates.StatusLabelKey(string(s)),
			Selected: status == table.StatusFilter(s),
		})
	}

	view := templates.FilterView{
		Action:   routepath.Users,
		TableURL: routepath.UsersTable,
		Search:   state.Search,
		Status:   string(status),
		OrderBy:  state.OrderBy(),
		Statuses: options,
		ClearURL: routepath.WithQuery(routepath.Users, state.ClearFilters().Encode()),
		Active:   !state.Criteria.IsZero(),
	}
	if !state.From.IsZero() {
		view.From = state.From.UTC().Format(table.DateParamLayout)
	}
	if !state.To.IsZero() {
		view.To = state.To.UTC().Format(table.DateParamLayout)
	}
	return view
}

func buildStatCards(stats record.Stats) []templates.StatCard {
	return []templates.StatCard{
		{LabelKey: "users.stats.total", Count: stats.Total},
		{LabelKey: "users.stats.active", Count: stats.Active, Percent: stats.ActivePercent, ShowPercent: true},
		{LabelKey: "users.stats.invited", Count: stats.Invited, Percent: stats.InvitedPercent, ShowPercent: true},
		{LabelKey: "users.stats.blocked", Count: stats.Blocked, Percent: stats.BlockedPercent, ShowPercent: true},
	}
}

func buildHeaderCells(state table.State) []templates.HeaderCell {
	fields := table.SortFields()
	cells := make([]templates.HeaderCell, 0, len(fields)+1)
	for _, field := range fields {
		cell := templates.HeaderCell{
			LabelKey: "users.column." + string(field),
			Sortable: true,
			Link:     panelLink(state.ToggleSort(field)),
		}
		if state.Sort == field {
			cell.Direction = string(state.Direction)
		}
		cells = append(cells, cell)
	}
	return append(cells, templates.HeaderCell{LabelKey: "users.column.actions"})
}

func buildUserRows(records []record.Record, state table.State) []templates.UserRow {
	query := state.Encode()
	rows := make([]templates.UserRow, 0, len(records))
	for _, rec := range records {
		actionURL := routepath.WithQuery(routepath.UserStatus(rec.ID), query)
		row := templates.UserRow{
			ID:        rec.ID,
			Name:      rec.About.Name,
			Email:     rec.About.Email,
			Date:      rec.Details.Date,
			InvitedBy: rec.Details.InvitedBy,
			Status:    string(rec.About.Status),
		}
		for _, status := range record.Statuses() {
			if status == rec.About.Status {
				continue
			}
			row.Actions = append(row.Actions, templates.RowAction{Status: string(status), URL: actionURL})
		}
		rows = append(rows, row)
	}
	return rows
}

func buildPagination(view table.View) templates.PaginationView {
	page := view.Page
	state := view.State

	first := panelLink(state.FirstPage())
	first.Disabled = !page.HasPrev()
	prev := panelLink(state.PrevPage(page.TotalPages))
	prev.Disabled = !page.HasPrev()
	next := panelLink(state.NextPage(page.TotalPages))
	next.Disabled = !page.HasNext()
	last := panelLink(state.LastPage(page.TotalPages))
	last.Disabled = !page.HasNext()

	return templates.PaginationView{
		Number:     page.Number,
		TotalPages: page.TotalPages,
		TotalItems: page.TotalItems,
		First:      page.First,
		Last:       page.Last,
		FirstLink:  first,
		PrevLink:   prev,
		NextLink:   next,
		LastLink:   last,
	}
}
