package templates

import "strings"

// PageContext provides shared layout context for dashboard pages.
type PageContext struct {
	Lang         string
	Loc          Localizer
	CurrentPath  string
	CurrentQuery string
}

// ComposePageTitle suffixes title with the localized application name.
func ComposePageTitle(loc Localizer, title string) string {
	appName := T(loc, "core.app_name")
	title = strings.TrimSpace(title)
	if title == "" {
		return appName
	}
	if strings.HasSuffix(title, " | "+appName) {
		return title
	}
	return title + " | " + appName
}
