package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/userdash/internal/services/dashboard/routepath"
)

const (
	stylesheetURL = "https://cdn.jsdelivr.net/npm/daisyui@4.12.24/dist/full.min.css"
	htmxScriptURL = "https://unpkg.com/htmx.org@2.0.4"
)

// Layout renders the document shell around content, which lands in <main>.
func Layout(page PageContext, title string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(w)
		hw.raw("<!doctype html>")
		hw.open("html", "lang", page.Lang)
		hw.raw(`<head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		hw.element("title", ComposePageTitle(page.Loc, title))
		hw.void("link", "rel", "stylesheet", "href", stylesheetURL)
		hw.open("script", "src", htmxScriptURL)
		hw.close("script")
		hw.close("head")
		hw.open("body", "class", "min-h-screen bg-base-200")

		hw.open("header", "class", "navbar bg-base-100 shadow")
		hw.open("div", "class", "flex-1")
		hw.element("a", T(page.Loc, "core.app_name"), "class", "btn btn-ghost text-xl", "href", routepath.Users)
		hw.close("div")
		hw.open("nav", "class", "flex-none", "aria-label", T(page.Loc, "core.language"))
		hw.open("ul", "class", "menu menu-horizontal px-1")
		for _, option := range LanguageOptions(page) {
			hw.open("li")
			hw.raw("<a")
			hw.attr("href", LanguageURL(page, option.Tag))
			hw.attr("hreflang", option.Tag)
			if option.Active {
				hw.attr("class", "active")
				hw.attr("aria-current", "true")
			}
			hw.raw(">")
			hw.text(option.Label)
			hw.close("a")
			hw.close("li")
		}
		hw.close("ul")
		hw.close("nav")
		hw.close("header")

		hw.open("main", "id", "main", "class", "container mx-auto p-4")
		hw.component(ctx, content)
		hw.close("main")
		hw.close("body")
		hw.close("html")
		return hw.err
	})
}
