// Package htmx renders templ components for plain and HTMX requests.
package htmx

import (
	"bytes"
	"html"
	"net/http"
	"strings"

	"github.com/a-h/templ"
)

const (
	// ResponseHeaderKey is the HTMX request header used to detect partial updates.
	ResponseHeaderKey = "HX-Request"
	// PushURLHeader asks HTMX to push a URL into the browser history.
	PushURLHeader = "HX-Push-Url"
)

// responseBuffer captures component rendering for HTMX responses.
type responseBuffer struct {
	header      http.Header
	statusCode  int
	body        bytes.Buffer
	headerWrote bool
}

func newResponseBuffer() *responseBuffer {
	return &responseBuffer{
		header:     make(http.Header),
		statusCode: http.StatusOK,
	}
}

func (w *responseBuffer) Header() http.Header {
	return w.header
}

func (w *responseBuffer) WriteHeader(status int) {
	if w.headerWrote {
		return
	}
	w.headerWrote = true
	w.statusCode = status
}

func (w *responseBuffer) Write(body []byte) (int, error) {
	return w.body.Write(body)
}

// IsHTMXRequest reports whether the request was initiated by HTMX.
func IsHTMXRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.EqualFold(r.Header.Get(ResponseHeaderKey), "true")
}

// TitleTag formats an escaped `<title>` element.
func TitleTag(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return ""
	}
	return "<title>" + html.EscapeString(title) + "</title>"
}

// PushURL sets the history URL for an HTMX response. Plain requests ignore it.
func PushURL(w http.ResponseWriter, r *http.Request, url string) {
	if w == nil || !IsHTMXRequest(r) || strings.TrimSpace(url) == "" {
		return
	}
	w.Header().Set(PushURLHeader, url)
}

// RenderPage renders a page for normal or HTMX requests.
//
// HTMX requests receive only the <main> content of full, prefixed with
// htmxTitle when the content has no title of its own. Plain requests receive
// full as is.
func RenderPage(w http.ResponseWriter, r *http.Request, full templ.Component, htmxTitle string) {
	if full == nil {
		return
	}
	if !IsHTMXRequest(r) {
		templ.Handler(full).ServeHTTP(w, r)
		return
	}

	capture := newResponseBuffer()
	if err := full.Render(r.Context(), capture); err != nil {
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	body := capture.body.Bytes()
	if mainContent, ok := extractMainContent(body); ok {
		body = mainContent
	}
	body = addTitleIfMissing(body, htmxTitle)
	copyHeaders(w.Header(), capture.Header())
	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
	}
	if capture.statusCode != http.StatusOK {
		w.WriteHeader(capture.statusCode)
	}
	_, _ = w.Write(body)
}

// RenderFragment renders a component on its own for either request kind.
func RenderFragment(w http.ResponseWriter, r *http.Request, fragment templ.Component) {
	if fragment == nil {
		return
	}
	templ.Handler(fragment).ServeHTTP(w, r)
}

func addTitleIfMissing(responseBody []byte, title string) []byte {
	if strings.TrimSpace(title) == "" {
		return responseBody
	}
	if bytes.Contains(bytes.ToLower(responseBody), []byte("<title")) {
		return responseBody
	}
	return append([]byte(title), responseBody...)
}

func copyHeaders(dst, src http.Header) {
	for key, values := range src {
		if strings.EqualFold(key, "Set-Cookie") {
			for _, value := range values {
				dst.Add(key, value)
			}
			continue
		}
		// Single-valued headers should not accumulate duplicates when copied from
		// a temporary response buffer.
		for _, value := range values {
			dst.Set(key, value)
		}
	}
}

func extractMainContent(body []byte) ([]byte, bool) {
	start := bytes.Index(body, []byte("<main"))
	if start < 0 {
		return nil, false
	}
	openClose := bytes.IndexByte(body[start:], '>')
	if openClose < 0 {
		return nil, false
	}
	contentStart := start + openClose + 1
	end := bytes.LastIndex(body[contentStart:], []byte("</main>"))
	if end < 0 {
		return nil, false
	}
	return body[contentStart : contentStart+end], true
}
