// Package branding holds the product identity shared by every rendered page.
package branding

import (
	"errors"
	"strings"
)

// AppName is the short product name used in page titles and chrome.
const AppName = "InvMgmt"

// Metadata is the document head record read when rendering a page.
type Metadata struct {
	Title       string
	Description string
}

// SiteMetadata is the application-wide head record.
var SiteMetadata = Metadata{
	Title:       AppName + " - Inventory Management System",
	Description: "A modern inventory management system with a component-based UI",
}

// DefaultMetadata returns a copy of SiteMetadata.
func DefaultMetadata() Metadata {
	return SiteMetadata
}

// Validate reports whether both fields carry visible text.
func (m Metadata) Validate() error {
	if strings.TrimSpace(m.Title) == "" {
		return errors.New("metadata title is required")
	}
	if strings.TrimSpace(m.Description) == "" {
		return errors.New("metadata description is required")
	}
	return nil
}

// OrDefault returns m, or the site metadata for any blank field.
func (m Metadata) OrDefault() Metadata {
	if strings.TrimSpace(m.Title) == "" {
		m.Title = SiteMetadata.Title
	}
	if strings.TrimSpace(m.Description) == "" {
		m.Description = SiteMetadata.Description
	}
	return m
}
