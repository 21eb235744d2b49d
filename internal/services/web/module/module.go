// Package module defines the feature contract used by web composition.
package module

import (
	"net/http"
	"strings"

	"github.com/louisbranch/invmgmt/internal/platform/branding"
)

// ResolveLanguage returns the effective request language.
type ResolveLanguage func(*http.Request) string

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}

// Dependencies carries the shell configuration every module renders with.
type Dependencies struct {
	Metadata      branding.Metadata
	AssetBaseURL  string
	HTMXScriptURL string
	// ResolveLanguage overrides query/cookie/Accept-Language resolution.
	ResolveLanguage ResolveLanguage
}

// ScriptURLs lists the script references for the document head.
func (d Dependencies) ScriptURLs() []string {
	if url := strings.TrimSpace(d.HTMXScriptURL); url != "" {
		return []string{url}
	}
	return nil
}
