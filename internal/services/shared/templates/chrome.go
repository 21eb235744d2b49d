package templates

import (
	"strings"

	"github.com/louisbranch/invmgmt/internal/platform/branding"
)

// NavItem is one entry of the primary navigation.
type NavItem struct {
	// LabelKey is the catalog key for the visible label.
	LabelKey string
	URL      string
}

// LanguageLink is one entry of the footer language switcher.
type LanguageLink struct {
	Tag    string
	Label  string
	URL    string
	Active bool
}

// ChromeOptions carries the state of the persistent page chrome.
type ChromeOptions struct {
	AppName    string
	ActivePath string
	NavItems   []NavItem
	Languages  []LanguageLink
}

// DefaultNavItems returns the primary navigation of the shell.
func DefaultNavItems() []NavItem {
	return []NavItem{
		{LabelKey: "nav.dashboard", URL: "/"},
	}
}

func (o ChromeOptions) appName() string {
	if name := strings.TrimSpace(o.AppName); name != "" {
		return name
	}
	return branding.AppName
}

func (o ChromeOptions) navItems() []NavItem {
	if o.NavItems == nil {
		return DefaultNavItems()
	}
	return o.NavItems
}

func isActivePath(activePath string, itemURL string) bool {
	activePath = strings.TrimSpace(activePath)
	itemURL = strings.TrimSpace(itemURL)
	if activePath == "" || itemURL == "" {
		return false
	}
	if itemURL == "/" {
		return activePath == "/"
	}
	return activePath == itemURL || strings.HasPrefix(activePath, strings.TrimSuffix(itemURL, "/")+"/")
}
