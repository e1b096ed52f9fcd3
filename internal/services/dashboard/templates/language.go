package templates

import (
	"net/url"

	dashi18n "github.com/louisbranch/userdash/internal/services/dashboard/i18n"
	"github.com/louisbranch/userdash/internal/services/dashboard/routepath"
)

// LanguageOption represents a supported language option in the dashboard.
type LanguageOption = dashi18n.LanguageOption

// LanguageOptions returns supported language options with active selection.
func LanguageOptions(page PageContext) []LanguageOption {
	return dashi18n.LanguageOptions(page.Loc, page.Lang)
}

// LanguageURL returns the current URL with the language param updated.
func LanguageURL(page PageContext, tag string) string {
	values, err := url.ParseQuery(page.CurrentQuery)
	if err != nil || values == nil {
		values = url.Values{}
	}
	values.Set(dashi18n.LangParam, tag)
	path := page.CurrentPath
	if path == "" {
		path = routepath.Users
	}
	return routepath.WithQuery(path, values.Encode())
}
