package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/invmgmt/internal/platform/branding"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("github.com/louisbranch/invmgmt/internal/services/shared/templates")

// LayoutOptions configures the application shell around one page.
type LayoutOptions struct {
	// Title is the page title; the document title adds the brand suffix.
	Title        string
	Lang         string
	Metadata     branding.Metadata
	AssetBaseURL string
	ScriptURLs   []string
	Chrome       ChromeOptions
	Breadcrumbs  []BreadcrumbItem
	Loc          Localizer
	// Content overrides the children passed through templ.WithChildren.
	Content templ.Component
}

func (o LayoutOptions) lang() string {
	if lang := strings.TrimSpace(o.Lang); lang != "" {
		return lang
	}
	return "en-US"
}

func (o LayoutOptions) documentTitle() string {
	return ComposePageTitleFor(o.Title, o.Metadata)
}

// DocumentTitle returns the <title> text AppLayout renders for opts.
func DocumentTitle(opts LayoutOptions) string {
	return opts.documentTitle()
}

func (o LayoutOptions) headOptions() HeadOptions {
	return HeadOptions{
		Title:         o.documentTitle(),
		Metadata:      o.Metadata,
		StylesheetURL: StylesheetURL(o.AssetBaseURL),
		ScriptURLs:    o.ScriptURLs,
	}
}

func (o LayoutOptions) heading() string {
	return pageHeadingFromTitle(o.Title, BrandName(o.Metadata))
}

// AppLayout renders a full document: head from the metadata record, then
// the chrome wrapped around the page payload.
//
// The payload is opts.Content when set, otherwise the context children. It
// is rendered once, unmodified, inside <main id="main">. A missing payload
// renders an empty main region.
func AppLayout(opts LayoutOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) (err error) {
		ctx, span := tracer.Start(ctx, "templates.AppLayout")
		span.SetAttributes(attribute.String("page.lang", opts.lang()))
		defer func() {
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, "render layout")
			}
			span.End()
		}()

		content := pagePayload(ctx, opts.Content)
		return document(opts, content).Render(templ.ClearChildren(ctx), w)
	})
}

// MainContent renders only the main region, for HTMX swaps.
func MainContent(opts LayoutOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		content := pagePayload(ctx, opts.Content)
		return mainRegion(opts, content).Render(templ.ClearChildren(ctx), w)
	})
}

func pagePayload(ctx context.Context, explicit templ.Component) templ.Component {
	if explicit != nil {
		return explicit
	}
	if children := templ.GetChildren(ctx); children != nil {
		return children
	}
	return templ.NopComponent
}
