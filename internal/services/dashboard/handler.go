// Package dashboard serves the user management dashboard over HTTP.
package dashboard

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/louisbranch/userdash/internal/services/dashboard/i18n"
	"github.com/louisbranch/userdash/internal/services/dashboard/record"
	"github.com/louisbranch/userdash/internal/services/dashboard/routepath"
	"github.com/louisbranch/userdash/internal/services/dashboard/templates"
	"github.com/louisbranch/userdash/internal/services/shared/route"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/message"
)

// tracerName scopes dashboard spans.
const tracerName = "github.com/louisbranch/userdash/internal/services/dashboard"

// UserStore supplies and mutates the records shown by the dashboard.
type UserStore interface {
	All() []record.Record
	UpdateStatus(id string, status record.Status) (record.Record, error)
}

// Options configures optional handler dependencies.
type Options struct {
	// TracerProvider defaults to the global provider.
	TracerProvider trace.TracerProvider
}

// Handler routes dashboard requests.
type Handler struct {
	store  UserStore
	tracer trace.Tracer
}

// NewHandler builds the HTTP handler for the dashboard server.
func NewHandler(store UserStore, opts Options) http.Handler {
	provider := opts.TracerProvider
	if provider == nil {
		provider = otel.GetTracerProvider()
	}
	handler := &Handler{
		store:  store,
		tracer: provider.Tracer(tracerName),
	}
	return handler.routes()
}

func (h *Handler) localizer(w http.ResponseWriter, r *http.Request) (*message.Printer, string) {
	tag, persist := i18n.ResolveTag(r)
	if persist {
		i18n.SetLanguageCookie(w, tag)
	}
	return i18n.Printer(tag), tag.String()
}

func (h *Handler) pageContext(lang string, loc *message.Printer, r *http.Request) templates.PageContext {
	return templates.PageContext{
		Lang:         lang,
		Loc:          loc,
		CurrentPath:  r.URL.Path,
		CurrentQuery: r.URL.RawQuery,
	}
}

// routes wires the HTTP routes for the dashboard handler.
func (h *Handler) routes() http.Handler {
	mux := http.NewServeMux()
	mux.Handle(routepath.Root, http.HandlerFunc(h.handleRoot))
	mux.Handle(routepath.Users, http.HandlerFunc(h.handleUsersPage))
	mux.Handle(routepath.UsersTable, http.HandlerFunc(h.handleUsersTable))
	mux.Handle(routepath.UsersPrefix, http.HandlerFunc(h.handleUserRoutes))
	return mux
}

// handleRoot sends the bare root to the users page.
func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != routepath.Root {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, routepath.WithQuery(routepath.Users, r.URL.RawQuery), http.StatusFound)
}

// handleUserRoutes dispatches per-user subroutes.
func (h *Handler) handleUserRoutes(w http.ResponseWriter, r *http.Request) {
	if (r.Method == http.MethodGet || r.Method == http.MethodHead) && route.RedirectTrailingSlash(w, r) {
		return
	}
	parts := splitPathParts(strings.TrimPrefix(r.URL.EscapedPath(), routepath.UsersPrefix))
	if len(parts) == 2 && "/"+parts[1] == routepath.UserStatusSuffix {
		h.handleUpdateStatus(w, r, parts[0])
		return
	}
	http.NotFound(w, r)
}

func requireGet(w http.ResponseWriter, r *http.Request, loc *message.Printer) bool {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return true
	}
	w.Header().Set("Allow", "GET, HEAD")
	http.Error(w, loc.Sprintf("error.method_not_allowed"), http.StatusMethodNotAllowed)
	return false
}

func requireSameOrigin(w http.ResponseWriter, r *http.Request, loc *message.Printer) bool {
	if r == nil {
		http.Error(w, loc.Sprintf("error.csrf_invalid"), http.StatusForbidden)
		return false
	}
	if origin := strings.TrimSpace(r.Header.Get("Origin")); origin != "" {
		if !sameOrigin(origin, r) {
			http.Error(w, loc.Sprintf("error.csrf_invalid"), http.StatusForbidden)
			return false
		}
		return true
	}
	if referer := strings.TrimSpace(r.Referer()); referer != "" {
		if !sameOrigin(referer, r) {
			http.Error(w, loc.Sprintf("error.csrf_invalid"), http.StatusForbidden)
			return false
		}
		return true
	}
	http.Error(w, loc.Sprintf("error.csrf_invalid"), http.StatusForbidden)
	return false
}

func sameOrigin(rawURL string, r *http.Request) bool {
	if rawURL == "" || rawURL == "null" || r == nil {
		return false
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return false
	}
	if !strings.EqualFold(parsed.Host, r.Host) {
		return false
	}
	if parsed.Scheme != "" {
		return strings.EqualFold(parsed.Scheme, requestScheme(r))
	}
	return true
}

func requestScheme(r *http.Request) string {
	if r == nil {
		return "http"
	}
	if proto := strings.TrimSpace(r.Header.Get("X-Forwarded-Proto")); proto != "" {
		parts := strings.Split(proto, ",")
		return strings.ToLower(strings.TrimSpace(parts[0]))
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

// splitPathParts splits an escaped path into unescaped, non-empty segments.
func splitPathParts(path string) []string {
	rawParts := strings.Split(strings.Trim(path, "/"), "/")
	parts := make([]string, 0, len(rawParts))
	for _, part := range rawParts {
		if part == "" {
			continue
		}
		unescaped, err := url.PathUnescape(part)
		if err != nil {
			return nil
		}
		parts = append(parts, unescaped)
	}
	return parts
}
