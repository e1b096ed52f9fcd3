package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

const hxPanelSwap = "outerHTML"

// UsersFullPage renders the users page inside the layout.
func UsersFullPage(page PageContext, view UsersPageView) templ.Component {
	return Layout(page, T(page.Loc, "title.users"), UsersPage(view, page.Loc))
}

// UsersPage renders the heading, filter form and panel.
func UsersPage(view UsersPageView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(w)
		hw.open("div", "class", "mb-4")
		hw.element("h1", T(loc, "users.heading"), "class", "text-2xl font-bold")
		hw.element("p", T(loc, "users.subheading"), "class", "text-base-content/70")
		hw.close("div")
		hw.component(ctx, UsersFilter(view.Filter, loc))
		hw.component(ctx, UsersPanel(view.Panel, loc))
		return hw.err
	})
}

// UsersFilter renders the filter form. It lives outside the panel so typing
// is not interrupted by swaps.
func UsersFilter(view FilterView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(w)
		hw.open("form",
			"id", UsersFilterID,
			"class", "flex flex-wrap items-end gap-2 mb-4",
			"method", "get",
			"action", view.Action,
			"hx-get", view.TableURL,
			"hx-target", usersPanelTarget,
			"hx-swap", hxPanelSwap,
			"hx-trigger", "submit, input changed delay:300ms from:find input[name='q'], change from:find select, change from:find input[type='date']",
		)

		hw.open("label", "class", "form-control")
		hw.element("span", T(loc, "users.filter.search"), "class", "label-text")
		hw.void("input",
			"type", "search",
			"name", "q",
			"class", "input input-bordered input-sm",
			"value", view.Search,
			"placeholder", T(loc, "users.filter.search"),
		)
		hw.close("label")

		hw.open("label", "class", "form-control")
		hw.element("span", T(loc, "users.filter.status"), "class", "label-text")
		hw.open("select", "name", "status", "class", "select select-bordered select-sm")
		for _, option := range view.Statuses {
			hw.raw("<option")
			hw.attr("value", option.Value)
			hw.flag("selected", option.Selected)
			hw.raw(">")
			hw.text(T(loc, option.LabelKey))
			hw.close("option")
		}
		hw.close("select")
		hw.close("label")

		writeDateInput(hw, "from", T(loc, "users.filter.from"), view.From)
		writeDateInput(hw, "to", T(loc, "users.filter.to"), view.To)

		hw.component(ctx, orderByInput(view.OrderBy, false))
		hw.element("button", T(loc, "users.filter.apply"), "type", "submit", "class", "btn btn-primary btn-sm")
		if view.Active {
			hw.element("a", T(loc, "users.filter.clear"), "href", view.ClearURL, "class", "btn btn-ghost btn-sm")
		}
		hw.close("form")
		return hw.err
	})
}

func writeDateInput(hw *htmlWriter, name, label, value string) {
	hw.open("label", "class", "form-control")
	hw.element("span", label, "class", "label-text")
	hw.void("input",
		"type", "date",
		"name", name,
		"class", "input input-bordered input-sm",
		"value", value,
	)
	hw.close("label")
}

// orderByInput carries the active sort in the filter form. With swap set it
// replaces the form's copy out of band.
func orderByInput(orderBy string, swap bool) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := newHTMLWriter(w)
		hw.raw("<input")
		hw.attr("type", "hidden")
		hw.attr("id", UsersOrderByID)
		hw.attr("name", "order_by")
		hw.raw(` value="` + templ.EscapeString(orderBy) + `"`)
		if swap {
			hw.attr("hx-swap-oob", "true")
		}
		hw.raw(">")
		return hw.err
	})
}

// UsersPanel renders the stats, table and pagination.
func UsersPanel(view UsersPanelView, loc Localizer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(w)
		hw.open("section", "id", UsersPanelID, "class", "space-y-4")
		if view.Notice != "" {
			hw.open("div", "class", "alert alert-success", "role", "status")
			hw.element("span", view.Notice)
			hw.close("div")
		}
		writeStats(hw, view.Stats, loc)
		writeTable(hw, view, loc)
		writePagination(hw, view.Pagination, loc)
		hw.close("section")
		if view.SwapOrderBy {
			hw.component(ctx, orderByInput(view.OrderBy, true))
		}
		return hw.err
	})
}

func writeStats(hw *htmlWriter, cards []StatCard, loc Localizer) {
	hw.open("div", "class", "stats stats-vertical lg:stats-horizontal shadow w-full")
	for _, card := range cards {
		hw.open("div", "class", "stat")
		hw.element("div", T(loc, card.LabelKey), "class", "stat-title")
		hw.element("div", strconv.Itoa(card.Count), "class", "stat-value")
		if card.ShowPercent {
			hw.element("div", T(loc, "users.stats.percent", card.Percent), "class", "stat-desc")
		}
		hw.close("div")
	}
	hw.close("div")
}

func writeTable(hw *htmlWriter, view UsersPanelView, loc Localizer) {
	hw.open("div", "class", "overflow-x-auto bg-base-100 rounded-box shadow")
	hw.open("table", "class", "table table-zebra")
	hw.open("thead")
	hw.open("tr")
	for _, header := range view.Headers {
		writeHeaderCell(hw, header, loc)
	}
	hw.close("tr")
	hw.close("thead")

	hw.open("tbody")
	if len(view.Rows) == 0 {
		hw.open("tr")
		hw.element("td", T(loc, "users.empty"), "colspan", strconv.Itoa(max(len(view.Headers), 1)), "class", "text-center")
		hw.close("tr")
	}
	for _, row := range view.Rows {
		hw.open("tr", "data-user-id", row.ID)
		hw.element("td", row.Name)
		hw.element("td", row.Email)
		hw.element("td", row.Date)
		hw.element("td", row.InvitedBy)
		hw.open("td")
		hw.element("span", T(loc, StatusLabelKey(row.Status)), "class", StatusBadgeClass(row.Status))
		hw.close("td")
		hw.open("td", "class", "flex gap-1")
		for _, action := range row.Actions {
			hw.open("form",
				"method", "post",
				"action", action.URL,
				"hx-post", action.URL,
				"hx-target", usersPanelTarget,
				"hx-swap", hxPanelSwap,
			)
			hw.void("input", "type", "hidden", "name", "status", "value", action.Status)
			hw.element("button", T(loc, ActionLabelKey(action.Status)), "type", "submit", "class", "btn btn-xs")
			hw.close("form")
		}
		hw.close("td")
		hw.close("tr")
	}
	hw.close("tbody")
	hw.close("table")
	hw.close("div")
}

func writeHeaderCell(hw *htmlWriter, header HeaderCell, loc Localizer) {
	label := T(loc, header.LabelKey)
	if !header.Sortable {
		hw.element("th", label)
		return
	}
	hw.raw("<th")
	switch header.Direction {
	case "asc":
		hw.attr("aria-sort", "ascending")
	case "desc":
		hw.attr("aria-sort", "descending")
	}
	hw.raw(">")
	hw.open("a",
		"href", header.Link.Href,
		"hx-get", header.Link.HXGet,
		"hx-target", usersPanelTarget,
		"hx-swap", hxPanelSwap,
		"class", "link link-hover",
	)
	hw.text(label)
	switch header.Direction {
	case "asc":
		hw.raw(` <span aria-hidden="true">▲</span>`)
		hw.element("span", T(loc, "users.sort.asc"), "class", "sr-only")
	case "desc":
		hw.raw(` <span aria-hidden="true">▼</span>`)
		hw.element("span", T(loc, "users.sort.desc"), "class", "sr-only")
	}
	hw.close("a")
	hw.close("th")
}

func writePagination(hw *htmlWriter, view PaginationView, loc Localizer) {
	hw.open("nav", "class", "flex flex-wrap items-center justify-between gap-2", "aria-label", T(loc, "users.pagination.summary", view.Number, view.TotalPages))
	hw.open("div", "class", "join")
	writePageLink(hw, view.FirstLink, T(loc, "users.pagination.first"))
	writePageLink(hw, view.PrevLink, T(loc, "users.pagination.prev"))
	hw.element("span", T(loc, "users.pagination.summary", view.Number, view.TotalPages), "class", "join-item btn btn-sm btn-disabled")
	writePageLink(hw, view.NextLink, T(loc, "users.pagination.next"))
	writePageLink(hw, view.LastLink, T(loc, "users.pagination.last"))
	hw.close("div")
	if view.TotalItems > 0 {
		hw.element("span", T(loc, "users.pagination.range", view.First, view.Last, view.TotalItems), "class", "text-sm")
	}
	hw.close("nav")
}

func writePageLink(hw *htmlWriter, link Link, label string) {
	if link.Disabled {
		hw.element("button", label, "type", "button", "class", "join-item btn btn-sm", "disabled", "disabled")
		return
	}
	hw.element("a", label,
		"href", link.Href,
		"hx-get", link.HXGet,
		"hx-target", usersPanelTarget,
		"hx-swap", hxPanelSwap,
		"class", "join-item btn btn-sm",
	)
}
