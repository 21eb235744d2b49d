// Package modulehandler provides a composable base for web module handlers.
//
// Modules embed Base to get localization, shell page rendering and error
// writing from their mount dependencies.
package modulehandler

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/invmgmt/internal/services/shared/templates"
	module "github.com/louisbranch/invmgmt/internal/services/web/module"
	apperrors "github.com/louisbranch/invmgmt/internal/services/web/platform/errors"
	"github.com/louisbranch/invmgmt/internal/services/web/platform/pagerender"
	"github.com/louisbranch/invmgmt/internal/services/web/platform/weberror"
)

// Base carries the dependencies shared by module handlers.
type Base struct {
	deps module.Dependencies
}

// NewBase builds a handler base from module dependencies.
func NewBase(deps module.Dependencies) Base {
	return Base{deps: deps}
}

// PageLocalizer resolves the request's localizer.
func (b Base) PageLocalizer(r *http.Request) templates.Localizer {
	return pagerender.Localizer(r, b.deps)
}

// WriteError renders a localized module error response.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err, b.deps)
}

// WriteNotFound renders a 404 error page within the app shell.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	b.WriteError(w, r, apperrors.EK(apperrors.KindNotFound, "error.not_found.title", "page not found"))
}

// WritePage renders fragment inside the shell, HTMX-aware. Render failures
// become a shell error page, and the wrapped failure is returned.
func (b Base) WritePage(w http.ResponseWriter, r *http.Request, title string, statusCode int, fragment templ.Component) error {
	if err := pagerender.WritePage(w, r, b.deps, pagerender.Page{
		Title:      title,
		StatusCode: statusCode,
		Fragment:   fragment,
	}); err != nil {
		err = apperrors.Wrap(apperrors.KindUnknown, "render page", err)
		b.WriteError(w, r, err)
		return err
	}
	return nil
}
