package route

import (
	"net/http"
	"strings"
)

// RedirectTrailingSlash strips trailing "/" characters from the request path
// and redirects to the canonical form, keeping the query string so table
// state survives the hop.
//
// It returns true when a redirect was written.
func RedirectTrailingSlash(w http.ResponseWriter, r *http.Request) bool {
	if w == nil || r == nil || r.URL == nil {
		return false
	}

	canonical := Canonical(r.URL.Path)
	if canonical == r.URL.Path {
		return false
	}
	if r.URL.RawQuery != "" {
		canonical += "?" + r.URL.RawQuery
	}

	http.Redirect(w, r, canonical, http.StatusMovedPermanently)
	return true
}

// Canonical returns path without trailing slashes. The root stays "/".
func Canonical(path string) string {
	canonical := strings.TrimRight(path, "/")
	if canonical == "" {
		return "/"
	}
	return canonical
}
