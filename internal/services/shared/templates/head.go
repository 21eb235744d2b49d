package templates

import (
	"strings"

	"github.com/louisbranch/invmgmt/internal/platform/branding"
)

// StylesheetName is the global stylesheet served with the shell.
const StylesheetName = "globals.css"

// DefaultAssetBaseURL is where the embedded static assets are mounted.
const DefaultAssetBaseURL = "/static/"

// HeadOptions configures the document head.
type HeadOptions struct {
	// Title is the composed document title. Metadata.Title is used when blank.
	Title         string
	Metadata      branding.Metadata
	StylesheetURL string
	ScriptURLs    []string
}

// StylesheetURL joins base and the global stylesheet name.
func StylesheetURL(base string) string {
	base = strings.TrimSpace(base)
	if base == "" {
		base = DefaultAssetBaseURL
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + StylesheetName
}

func (o HeadOptions) title() string {
	if title := strings.TrimSpace(o.Title); title != "" {
		return title
	}
	return o.Metadata.OrDefault().Title
}

func (o HeadOptions) description() string {
	return o.Metadata.OrDefault().Description
}

func (o HeadOptions) stylesheetHref() string {
	if href := strings.TrimSpace(o.StylesheetURL); href != "" {
		return href
	}
	return StylesheetURL("")
}

func (o HeadOptions) scriptSources() []string {
	sources := make([]string, 0, len(o.ScriptURLs))
	for _, src := range o.ScriptURLs {
		if src = strings.TrimSpace(src); src != "" {
			sources = append(sources, src)
		}
	}
	return sources
}
