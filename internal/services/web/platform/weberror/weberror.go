// Package weberror renders shared app-shell error responses for web modules.
package weberror

import (
	"net/http"
	"strings"

	"github.com/louisbranch/invmgmt/internal/services/shared/htmx"
	"github.com/louisbranch/invmgmt/internal/services/shared/templates"
	module "github.com/louisbranch/invmgmt/internal/services/web/module"
	apperrors "github.com/louisbranch/invmgmt/internal/services/web/platform/errors"
	"github.com/louisbranch/invmgmt/internal/services/web/platform/pagerender"
)

// ShouldRenderAppError reports whether status should use app error-page UX.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc templates.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" && localized != key {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	return http.StatusText(statusCode)
}

// WriteAppError writes a localized error page inside the shell for
// full-page and HTMX requests.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int, deps module.Dependencies) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}

	opts := pagerender.LayoutOptions(w, r, deps, "")
	opts.Title = templates.ErrorPageTitle(statusCode, opts.Loc)
	opts.Content = templates.ErrorState(statusCode, opts.Loc)
	page := htmx.Page{
		Full:       templates.AppLayout(opts),
		Title:      templates.DocumentTitle(opts),
		StatusCode: statusCode,
	}
	if err := htmx.RenderPage(w, r, page); err != nil {
		http.Error(w, PublicMessage(opts.Loc, err), statusCode)
	}
}

// WriteModuleError writes the shell error page for a module failure. Typed
// not-found errors render 404; anything else renders 500.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, deps module.Dependencies) {
	if w == nil || err == nil {
		return
	}
	WriteAppError(w, r, apperrors.HTTPStatus(err), deps)
}
