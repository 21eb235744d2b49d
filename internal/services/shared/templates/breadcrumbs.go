package templates

import "strings"

// BreadcrumbItem is one entry of a page trail.
type BreadcrumbItem struct {
	Label string
	// URL is empty for the current page.
	URL string
}

func (i BreadcrumbItem) href() string {
	return strings.TrimSpace(i.URL)
}

// BreadcrumbSegmentLabeler returns the label for one path segment.
//
// fullPath is the accumulated path up to and including segment, for
// example "/items/restock".
type BreadcrumbSegmentLabeler func(segment string, fullPath string, loc Localizer) string

// PathBreadcrumbOptions controls how a trail is built from a path.
type PathBreadcrumbOptions struct {
	IncludeRoot bool
	RootPath    string
	// RootLabel is a catalog key or a literal fallback.
	RootLabel       string
	LabelForSegment BreadcrumbSegmentLabeler
}

// BuildPathBreadcrumbs builds the trail shown above the page payload. The
// root path yields no trail.
func BuildPathBreadcrumbs(path string, loc Localizer) []BreadcrumbItem {
	return BuildPathBreadcrumbsWithOptions(path, loc, PathBreadcrumbOptions{
		IncludeRoot:     true,
		RootPath:        "/",
		RootLabel:       "nav.dashboard",
		LabelForSegment: catalogSegmentLabel,
	})
}

// BuildPathBreadcrumbsWithOptions builds a trail with caller-provided
// labeling.
func BuildPathBreadcrumbsWithOptions(path string, loc Localizer, options PathBreadcrumbOptions) []BreadcrumbItem {
	segments := pathSegments(path)
	if len(segments) == 0 {
		return []BreadcrumbItem{}
	}
	if options.LabelForSegment == nil {
		options.LabelForSegment = literalSegmentLabel
	}

	breadcrumbs := make([]BreadcrumbItem, 0, len(segments)+1)
	if options.IncludeRoot {
		rootPath := strings.TrimSpace(options.RootPath)
		if rootPath == "" {
			rootPath = "/"
		}
		breadcrumbs = append(breadcrumbs, BreadcrumbItem{Label: T(loc, options.RootLabel), URL: rootPath})
	}

	pathSoFar := ""
	for idx, segment := range segments {
		pathSoFar += "/" + segment
		label := options.LabelForSegment(segment, pathSoFar, loc)
		if strings.TrimSpace(label) == "" {
			label = segment
		}
		item := BreadcrumbItem{Label: label}
		if idx < len(segments)-1 {
			item.URL = pathSoFar
		}
		breadcrumbs = append(breadcrumbs, item)
	}
	return breadcrumbs
}

func pathSegments(path string) []string {
	parts := strings.Split(strings.Trim(strings.TrimSpace(path), "/"), "/")
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}

// catalogSegmentLabel looks up "breadcrumb.<segment>" and falls back to the
// raw segment when the catalog has no entry.
func catalogSegmentLabel(segment string, _ string, loc Localizer) string {
	key := "breadcrumb." + segment
	if label := T(loc, key); label != key {
		return label
	}
	return segment
}

func literalSegmentLabel(segment string, _ string, _ Localizer) string {
	return segment
}
