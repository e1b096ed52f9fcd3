package dashboard

import (
	"log"
	"net/http"

	apperrors "github.com/louisbranch/userdash/internal/platform/errors"
	"github.com/louisbranch/userdash/internal/services/dashboard/record"
	"github.com/louisbranch/userdash/internal/services/dashboard/routepath"
	"github.com/louisbranch/userdash/internal/services/dashboard/table"
	"github.com/louisbranch/userdash/internal/services/dashboard/templates"
	"github.com/louisbranch/userdash/internal/services/shared/htmx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/message"
)

// statusFormField carries the requested status on mutation forms.
const statusFormField = "status"

// handleUsersPage renders the users page with filters, stats and table.
func (h *Handler) handleUsersPage(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	if !requireGet(w, r, loc) {
		return
	}

	state := table.ParseQuery(r.URL.Query())
	panel, current := h.usersPanel(state)
	view := templates.UsersPageView{
		Filter: buildFilterView(current),
		Panel:  panel,
	}

	pageCtx := h.pageContext(lang, loc, r)
	title := htmx.TitleTag(templates.ComposePageTitle(loc, loc.Sprintf("title.users")))
	htmx.RenderPage(w, r, templates.UsersFullPage(pageCtx, view), title)
}

// handleUsersTable renders the users panel via HTMX.
func (h *Handler) handleUsersTable(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.localizer(w, r)
	if !requireGet(w, r, loc) {
		return
	}

	_, span := h.tracer.Start(r.Context(), "dashboard.users_table")
	defer span.End()

	state := table.ParseQuery(r.URL.Query())
	panel, current := h.usersPanel(state)
	panel.SwapOrderBy = htmx.IsHTMXRequest(r)
	span.SetAttributes(
		attribute.String("dashboard.order_by", current.OrderBy()),
		attribute.String("dashboard.status_filter", string(current.Status)),
		attribute.Int("dashboard.page", current.Page),
		attribute.Int("dashboard.total_items", panel.Pagination.TotalItems),
	)

	htmx.PushURL(w, r, routepath.WithQuery(routepath.Users, current.Encode()))
	htmx.RenderFragment(w, r, templates.UsersPanel(panel, loc))
}

// handleUpdateStatus changes one user's status from a form submission.
func (h *Handler) handleUpdateStatus(w http.ResponseWriter, r *http.Request, userID string) {
	loc, _ := h.localizer(w, r)
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, loc.Sprintf("error.method_not_allowed"), http.StatusMethodNotAllowed)
		return
	}
	if !requireSameOrigin(w, r, loc) {
		return
	}

	_, span := h.tracer.Start(r.Context(), "dashboard.update_status",
		trace.WithAttributes(attribute.String("user.id", userID)),
	)
	defer span.End()

	if err := r.ParseForm(); err != nil {
		log.Printf("parse status form: %v", err)
		err = apperrors.Wrap(apperrors.CodeFormInvalid, "parse status form", err)
		failSpan(span, err)
		writeError(w, err, loc)
		return
	}
	status, err := record.ParseStatus(r.PostFormValue(statusFormField))
	if err != nil {
		failSpan(span, err)
		writeError(w, err, loc)
		return
	}
	span.SetAttributes(attribute.String("user.status", string(status)))

	updated, err := h.updateStatus(userID, status)
	if err != nil {
		failSpan(span, err)
		writeError(w, err, loc)
		return
	}

	state := table.ParseQuery(r.URL.Query())
	if !htmx.IsHTMXRequest(r) {
		http.Redirect(w, r, routepath.WithQuery(routepath.Users, state.Encode()), http.StatusSeeOther)
		return
	}

	panel, _ := h.usersPanel(state)
	panel.SwapOrderBy = true
	panel.Notice = loc.Sprintf("users.updated", updated.About.Name, loc.Sprintf(templates.StatusLabelKey(string(updated.About.Status))))
	htmx.RenderFragment(w, r, templates.UsersPanel(panel, loc))
}

// usersPanel runs the table pipeline for state over a store snapshot.
// The returned state has its page clamped.
func (h *Handler) usersPanel(state table.State) (templates.UsersPanelView, table.State) {
	var records []record.Record
	if h.store != nil {
		records = h.store.All()
	}
	view := table.Apply(records, state)
	return templates.UsersPanelView{
		Stats:      buildStatCards(record.ComputeStats(records)),
		Headers:    buildHeaderCells(view.State),
		Rows:       buildUserRows(view.Page.Items, view.State),
		Pagination: buildPagination(view),
		OrderBy:    view.State.OrderBy(),
	}, view.State
}

func (h *Handler) updateStatus(userID string, status record.Status) (record.Record, error) {
	if h.store == nil {
		return record.Record{}, record.ErrNotFound
	}
	return h.store.UpdateStatus(userID, status)
}

// writeError responds with the status and localized message for err's code.
func writeError(w http.ResponseWriter, err error, loc *message.Printer) {
	code := apperrors.GetCode(err)
	if code == apperrors.CodeUnknown {
		log.Printf("update user status: %v", err)
	}
	http.Error(w, loc.Sprintf(code.MessageKey()), apperrors.HTTPStatus(err))
}

func failSpan(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
