// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/invmgmt/internal/services/shared/htmx"
	"github.com/louisbranch/invmgmt/internal/services/shared/i18nhttp"
	"github.com/louisbranch/invmgmt/internal/services/shared/templates"
	module "github.com/louisbranch/invmgmt/internal/services/web/module"
	"github.com/louisbranch/invmgmt/internal/services/web/platform/httpx"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Page describes a module page response for both full-page and HTMX flows.
type Page struct {
	Title      string
	StatusCode int
	Fragment   templ.Component
}

// WritePage writes a module page inside the application shell. HTMX
// requests receive only the main region and a title element.
func WritePage(w http.ResponseWriter, r *http.Request, deps module.Dependencies, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}

	opts := LayoutOptions(w, r, deps, page.Title)
	ctx := templ.WithChildren(httpx.RequestContext(r), page.Fragment)

	var buf bytes.Buffer
	if htmx.IsHTMXRequest(r) {
		buf.WriteString(htmx.TitleTag(templates.DocumentTitle(opts)))
		if err := templates.MainContent(opts).Render(ctx, &buf); err != nil {
			return err
		}
	} else if err := templates.AppLayout(opts).Render(ctx, &buf); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Add("Vary", htmx.RequestHeaderKey)
	w.WriteHeader(statusCode)
	_, err := w.Write(buf.Bytes())
	return err
}

// LayoutOptions resolves the request language and builds the shell options
// for one page.
func LayoutOptions(w http.ResponseWriter, r *http.Request, deps module.Dependencies, title string) templates.LayoutOptions {
	loc, lang := resolveLocalizer(w, r, deps.ResolveLanguage)
	path, rawQuery := "/", ""
	if r != nil && r.URL != nil {
		path, rawQuery = r.URL.Path, r.URL.RawQuery
	}
	return templates.LayoutOptions{
		Title:        title,
		Lang:         lang,
		Metadata:     deps.Metadata,
		AssetBaseURL: deps.AssetBaseURL,
		ScriptURLs:   deps.ScriptURLs(),
		Chrome: templates.ChromeOptions{
			AppName:    templates.BrandName(deps.Metadata),
			ActivePath: path,
			Languages:  languageLinks(path, rawQuery, lang, loc),
		},
		Breadcrumbs: templates.BuildPathBreadcrumbs(path, loc),
		Loc:         loc,
	}
}

// Localizer returns the request's message printer without persisting the
// language choice.
func Localizer(r *http.Request, deps module.Dependencies) templates.Localizer {
	loc, _ := resolveLocalizer(nil, r, deps.ResolveLanguage)
	return loc
}

func resolveLocalizer(w http.ResponseWriter, r *http.Request, resolve module.ResolveLanguage) (*message.Printer, string) {
	if resolve != nil && r != nil {
		if lang := resolve(r); lang != "" {
			tag := i18nhttp.NormalizeTag(lang)
			return i18nhttp.Printer(tag), tag.String()
		}
	}
	return i18nhttp.ResolveLocalizer(w, r)
}

func languageLinks(path string, rawQuery string, lang string, loc templates.Localizer) []templates.LanguageLink {
	options := i18nhttp.BuildLanguageOptions(path, rawQuery, lang, func(tag language.Tag) string {
		return templates.T(loc, i18nhttp.LanguageKeyLabel(tag))
	})
	links := make([]templates.LanguageLink, 0, len(options))
	for _, option := range options {
		links = append(links, templates.LanguageLink(option))
	}
	return links
}
