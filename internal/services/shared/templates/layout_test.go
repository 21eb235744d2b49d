package templates

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/louisbranch/invmgmt/internal/platform/branding"
	"golang.org/x/net/html"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const payloadMarkup = `<section id="payload-marker" data-sku="A&amp;B">stock levels</section>`

type keyLocalizer struct{}

func (keyLocalizer) Sprintf(key message.Reference, _ ...any) string {
	return fmt.Sprint(key)
}

type textComponent string

func (c textComponent) Render(_ context.Context, w io.Writer) error {
	_, err := io.WriteString(w, string(c))
	return err
}

func renderString(t *testing.T, ctx context.Context, c templ.Component) string {
	t.Helper()
	var b strings.Builder
	if err := c.Render(ctx, &b); err != nil {
		t.Fatalf("Render() = %v", err)
	}
	return b.String()
}

func findElement(n *html.Node, match func(*html.Node) bool) *html.Node {
	if n.Type == html.ElementNode && match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, match); found != nil {
			return found
		}
	}
	return nil
}

func byID(id string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		for _, a := range n.Attr {
			if a.Key == "id" && a.Val == id {
				return true
			}
		}
		return false
	}
}

func byTag(tag string) func(*html.Node) bool {
	return func(n *html.Node) bool { return n.Data == tag }
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasAncestor(n *html.Node, match func(*html.Node) bool) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode && match(p) {
			return true
		}
	}
	return false
}

func parseDocument(t *testing.T, doc string) *html.Node {
	t.Helper()
	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return root
}

func TestAppLayoutRendersMetadataHead(t *testing.T) {
	t.Parallel()

	got := renderString(t, context.Background(), AppLayout(LayoutOptions{Loc: keyLocalizer{}}))
	root := parseDocument(t, got)

	title := findElement(root, byTag("title"))
	if title == nil || title.FirstChild == nil || title.FirstChild.Data != branding.SiteMetadata.Title {
		t.Fatalf("expected site title in head, got %q", got)
	}
	description := findElement(root, func(n *html.Node) bool {
		return n.Data == "meta" && attrValue(n, "name") == "description"
	})
	if description == nil || attrValue(description, "content") != branding.SiteMetadata.Description {
		t.Fatalf("expected description meta, got %q", got)
	}
	stylesheet := findElement(root, func(n *html.Node) bool {
		return n.Data == "link" && attrValue(n, "rel") == "stylesheet"
	})
	if stylesheet == nil || attrValue(stylesheet, "href") != "/static/globals.css" {
		t.Fatalf("expected global stylesheet link, got %q", got)
	}
	if !strings.HasPrefix(got, "<!doctype html><html lang=\"en-US\">") {
		t.Fatalf("expected doctype and default lang, got %q", got)
	}
}

func TestAppLayoutNestsPayloadOnceInsideMain(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		ctx  context.Context
		opts LayoutOptions
	}{
		{
			name: "context children",
			ctx:  templ.WithChildren(context.Background(), textComponent(payloadMarkup)),
		},
		{
			name: "explicit content",
			ctx:  context.Background(),
			opts: LayoutOptions{Content: textComponent(payloadMarkup)},
		},
		{
			name: "explicit content wins over children",
			ctx:  templ.WithChildren(context.Background(), textComponent(`<p id="ignored">x</p>`)),
			opts: LayoutOptions{Content: textComponent(payloadMarkup)},
		},
	}

	for _, tc := range cases {
		tc.opts.Loc = keyLocalizer{}
		got := renderString(t, tc.ctx, AppLayout(tc.opts))
		if count := strings.Count(got, payloadMarkup); count != 1 {
			t.Fatalf("%s: payload count = %d, want 1 in %q", tc.name, count, got)
		}
		if strings.Contains(got, `id="ignored"`) {
			t.Fatalf("%s: expected context children to be skipped", tc.name)
		}
		root := parseDocument(t, got)
		marker := findElement(root, byID("payload-marker"))
		if marker == nil {
			t.Fatalf("%s: payload element missing", tc.name)
		}
		if !hasAncestor(marker, byID("main")) {
			t.Fatalf("%s: payload is not nested in main", tc.name)
		}
		header := findElement(root, byTag("header"))
		footer := findElement(root, byTag("footer"))
		if header == nil || footer == nil {
			t.Fatalf("%s: expected header and footer chrome", tc.name)
		}
		if hasAncestor(marker, byTag("header")) || hasAncestor(marker, byTag("footer")) {
			t.Fatalf("%s: payload leaked into chrome", tc.name)
		}
	}
}

func TestAppLayoutRendersEmptyMainWithoutPayload(t *testing.T) {
	t.Parallel()

	contexts := map[string]context.Context{
		"no children":  context.Background(),
		"nil children": templ.WithChildren(context.Background(), nil),
	}
	for name, ctx := range contexts {
		got := renderString(t, ctx, AppLayout(LayoutOptions{Loc: keyLocalizer{}}))
		if !strings.Contains(got, `<main id="main" class="app-main"></main>`) {
			t.Fatalf("%s: expected empty main region, got %q", name, got)
		}
	}
}

func TestAppLayoutIsIdempotent(t *testing.T) {
	t.Parallel()

	opts := LayoutOptions{
		Title: "Items",
		Lang:  "pt-BR",
		Loc:   keyLocalizer{},
		Chrome: ChromeOptions{
			ActivePath: "/",
			Languages:  []LanguageLink{{Tag: "en-US", Label: "English", URL: "/?lang=en-US"}},
		},
	}
	first := renderString(t, templ.WithChildren(context.Background(), textComponent(payloadMarkup)), AppLayout(opts))
	second := renderString(t, templ.WithChildren(context.Background(), textComponent(payloadMarkup)), AppLayout(opts))
	if first != second {
		t.Fatalf("expected identical output\nfirst:  %q\nsecond: %q", first, second)
	}

	explicit := AppLayout(LayoutOptions{Content: textComponent(payloadMarkup)})
	if a, b := renderString(t, context.Background(), explicit), renderString(t, context.Background(), explicit); a != b {
		t.Fatal("expected the same component to render identically twice")
	}
}

func TestAppLayoutPropagatesPayloadError(t *testing.T) {
	t.Parallel()

	payloadErr := errors.New("payload failed")
	failing := templ.ComponentFunc(func(context.Context, io.Writer) error { return payloadErr })
	var b strings.Builder
	err := AppLayout(LayoutOptions{Content: failing}).Render(context.Background(), &b)
	if !errors.Is(err, payloadErr) {
		t.Fatalf("Render() = %v, want %v", err, payloadErr)
	}
}

func TestAppLayoutComposesPageTitleAndHeading(t *testing.T) {
	t.Parallel()

	got := renderString(t, context.Background(), AppLayout(LayoutOptions{Title: "Items <new>", Loc: keyLocalizer{}}))
	if !strings.Contains(got, "<title>Items &lt;new&gt; | "+branding.AppName+"</title>") {
		t.Fatalf("expected escaped composed title, got %q", got)
	}
	if !strings.Contains(got, `<h1 class="app-heading">Items &lt;new&gt;</h1>`) {
		t.Fatalf("expected escaped heading, got %q", got)
	}
}

func TestAppLayoutUsesMetadataOverride(t *testing.T) {
	t.Parallel()

	got := renderString(t, context.Background(), AppLayout(LayoutOptions{
		Metadata: branding.Metadata{Title: "Warehouse", Description: `Stock "live"`},
	}))
	if !strings.Contains(got, "<title>Warehouse</title>") {
		t.Fatalf("expected metadata title override, got %q", got)
	}
	if !strings.Contains(got, `content="Stock &#34;live&#34;"`) {
		t.Fatalf("expected escaped description override, got %q", got)
	}
}

func TestAppLayoutBrandsPageTitleFromMetadata(t *testing.T) {
	t.Parallel()

	got := renderString(t, context.Background(), AppLayout(LayoutOptions{
		Title:    "Items | Warehouse",
		Metadata: branding.Metadata{Title: "Warehouse", Description: "Stock desk"},
		Loc:      keyLocalizer{},
	}))
	if !strings.Contains(got, "<title>Items | Warehouse</title>") {
		t.Fatalf("expected page title under metadata brand, got %q", got)
	}
	if !strings.Contains(got, `<h1 class="app-heading">Items</h1>`) {
		t.Fatalf("expected heading without brand suffix, got %q", got)
	}
	if opts := (LayoutOptions{Metadata: branding.Metadata{Title: "Warehouse"}}); DocumentTitle(opts) != "Warehouse" {
		t.Fatalf("DocumentTitle(blank) = %q, want Warehouse", DocumentTitle(opts))
	}
}

func TestAppLayoutResolvesStylesheetAgainstAssetBase(t *testing.T) {
	t.Parallel()

	got := renderString(t, context.Background(), AppLayout(LayoutOptions{AssetBaseURL: "https://cdn.example.com/assets"}))
	if !strings.Contains(got, `href="https://cdn.example.com/assets/globals.css"`) {
		t.Fatalf("expected stylesheet under asset base, got %q", got)
	}
}

func TestAppLayoutLocalizesChrome(t *testing.T) {
	if err := message.SetString(language.BrazilianPortuguese, "layout.skip_to_content", "Pular para o conteúdo"); err != nil {
		t.Fatalf("SetString() = %v", err)
	}
	loc := message.NewPrinter(language.BrazilianPortuguese)
	got := renderString(t, context.Background(), AppLayout(LayoutOptions{Lang: "pt-BR", Loc: loc}))
	if !strings.Contains(got, `<html lang="pt-BR">`) {
		t.Fatalf("expected pt-BR lang attribute, got %q", got)
	}
	if !strings.Contains(got, "Pular para o conteúdo") {
		t.Fatalf("expected localized skip link, got %q", got)
	}
}

func TestMainContentOmitsDocumentWrapper(t *testing.T) {
	t.Parallel()

	got := renderString(t, templ.WithChildren(context.Background(), textComponent(payloadMarkup)), MainContent(LayoutOptions{Title: "Items"}))
	want := `<main id="main" class="app-main"><h1 class="app-heading">Items</h1>` + payloadMarkup + `</main>`
	if got != want {
		t.Fatalf("MainContent = %q, want %q", got, want)
	}
}

func TestHeadSkipsBlankScriptsAndEscapesSources(t *testing.T) {
	t.Parallel()

	got := renderString(t, context.Background(), Head(HeadOptions{
		ScriptURLs: []string{" ", "https://unpkg.com/htmx.org@2.0.4?a=1&b=2"},
	}))
	if strings.Count(got, "<script") != 1 {
		t.Fatalf("expected one script tag, got %q", got)
	}
	if !strings.Contains(got, `src="https://unpkg.com/htmx.org@2.0.4?a=1&amp;b=2"`) {
		t.Fatalf("expected escaped script src, got %q", got)
	}
}

func TestHeadRejectsUnsafeStylesheetURL(t *testing.T) {
	t.Parallel()

	got := renderString(t, context.Background(), Head(HeadOptions{StylesheetURL: "javascript:alert(1)"}))
	if strings.Contains(got, "javascript:") {
		t.Fatalf("expected unsafe stylesheet URL to be sanitized, got %q", got)
	}
}
