package templates

import (
	"strings"

	"github.com/louisbranch/invmgmt/internal/platform/branding"
)

const titleSeparator = " | "

// ComposePageTitle appends the brand suffix to a page title. A blank page
// title yields the site metadata title.
func ComposePageTitle(title string) string {
	return ComposePageTitleFor(title, branding.SiteMetadata)
}

// ComposePageTitleFor appends the brand of meta to a page title. The brand is
// the part of meta.Title before " - ", or the whole title. A blank page title
// yields meta.Title.
func ComposePageTitleFor(title string, meta branding.Metadata) string {
	meta = meta.OrDefault()
	title = strings.TrimSpace(title)
	if title == "" || title == meta.Title {
		return meta.Title
	}
	brand := BrandName(meta)
	brandSuffix := titleSeparator + brand
	if strings.HasSuffix(title, brandSuffix) {
		return title
	}
	if base, ok := strings.CutSuffix(title, " - "+brand); ok {
		title = strings.TrimSpace(base)
	}
	return title + brandSuffix
}

// BrandName is the short product name carried by a metadata title.
func BrandName(meta branding.Metadata) string {
	title := strings.TrimSpace(meta.OrDefault().Title)
	if brand, _, ok := strings.Cut(title, " - "); ok && strings.TrimSpace(brand) != "" {
		return strings.TrimSpace(brand)
	}
	return title
}

func pageHeadingFromTitle(title string, appName string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return ""
	}
	if base, ok := strings.CutSuffix(title, titleSeparator+appName); ok {
		title = strings.TrimSpace(base)
	}
	if base, ok := strings.CutSuffix(title, " - "+appName); ok {
		title = strings.TrimSpace(base)
	}
	return title
}
