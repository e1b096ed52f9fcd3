// Package i18n resolves the dashboard language for a request and returns
// message printers backed by the embedded catalogs.
package i18n

import (
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/userdash/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the user's language preference.
	LangCookieName = "ud_lang"
)

var supportedTags = []language.Tag{
	language.English,
	language.MustParse("pt-BR"),
}

var tagMatcher = language.NewMatcher(supportedTags)

// Catalog messages must be registered before any printer is built.
var _ = catalog.Default()

// LanguageOption is one entry of the language switcher.
type LanguageOption struct {
	Tag    string
	Label  string
	Active bool
}

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

// Default returns the default language tag.
func Default() language.Tag {
	return language.English
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// ResolveTag determines the best language tag for the request.
// The bool indicates whether the lang query param should be persisted as a cookie.
func ResolveTag(r *http.Request) (language.Tag, bool) {
	if r == nil {
		return Default(), false
	}

	if langValue := strings.TrimSpace(r.URL.Query().Get(LangParam)); langValue != "" {
		if tag, ok := ParseTag(langValue); ok {
			return tag, true
		}
	}

	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := ParseTag(cookie.Value); ok {
			return tag, false
		}
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			_, index, confidence := tagMatcher.Match(tags...)
			if confidence != language.No {
				return supportedTags[index], false
			}
		}
	}

	return Default(), false
}

// ParseTag maps value onto a supported tag.
func ParseTag(value string) (language.Tag, bool) {
	parsed, err := language.Parse(strings.TrimSpace(value))
	if err != nil {
		return language.Tag{}, false
	}
	for _, tag := range supportedTags {
		if parsed == tag {
			return tag, true
		}
	}
	// Regional variants collapse onto the supported tag sharing their base.
	base, _ := parsed.Base()
	for _, tag := range supportedTags {
		if tagBase, _ := tag.Base(); tagBase == base {
			return tag, true
		}
	}
	return language.Tag{}, false
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// Labeler formats catalog messages.
type Labeler interface {
	Sprintf(key message.Reference, args ...any) string
}

// LanguageOptions lists the supported languages labelled with loc, marking
// active as selected.
func LanguageOptions(loc Labeler, active string) []LanguageOption {
	activeTag, ok := ParseTag(active)
	if !ok {
		activeTag = Default()
	}
	options := make([]LanguageOption, 0, len(supportedTags))
	for _, tag := range supportedTags {
		options = append(options, LanguageOption{
			Tag:    tag.String(),
			Label:  languageLabel(loc, tag),
			Active: tag == activeTag,
		})
	}
	return options
}

func languageLabel(loc Labeler, tag language.Tag) string {
	key := "core.language." + tag.String()
	if loc == nil {
		return tag.String()
	}
	if label := loc.Sprintf(key); label != key {
		return label
	}
	return tag.String()
}
