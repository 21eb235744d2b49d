package templates

import "net/http"

type errorCopy struct {
	titleKey string
	bodyKey  string
}

func errorCopyForStatus(statusCode int) errorCopy {
	if statusCode == http.StatusNotFound {
		return errorCopy{titleKey: "error.not_found.title", bodyKey: "error.not_found.body"}
	}
	return errorCopy{titleKey: "error.server.title", bodyKey: "error.server.body"}
}

// ErrorPageTitle returns the localized page title for an error status.
func ErrorPageTitle(statusCode int, loc Localizer) string {
	return T(loc, errorCopyForStatus(statusCode).titleKey)
}
