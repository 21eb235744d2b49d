// Package htmx renders shell pages for both full loads and HTMX swaps.
package htmx

import (
	"bytes"
	"context"
	"errors"
	"html"
	"net/http"
	"strings"

	"github.com/a-h/templ"
)

// RequestHeaderKey is the HTMX request header used to detect partial updates.
const RequestHeaderKey = "HX-Request"

// Page is one rendered response. Full renders the whole document; HTMX
// requests receive only its <main> element.
type Page struct {
	Full       templ.Component
	Title      string
	StatusCode int
}

// IsHTMXRequest reports whether the request was initiated by HTMX.
func IsHTMXRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.EqualFold(r.Header.Get(RequestHeaderKey), "true")
}

// TitleTag formats an escaped `<title>` element.
func TitleTag(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return ""
	}
	return "<title>" + html.EscapeString(title) + "</title>"
}

// RenderPage buffers page.Full and writes it, or its main element for HTMX
// requests. Nothing is written when rendering fails.
func RenderPage(w http.ResponseWriter, r *http.Request, page Page) error {
	if w == nil {
		return nil
	}
	if page.Full == nil {
		return errors.New("htmx: page component is required")
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}

	var buf bytes.Buffer
	if err := page.Full.Render(requestContext(r), &buf); err != nil {
		return err
	}
	body := buf.Bytes()
	if IsHTMXRequest(r) {
		if main, ok := extractMainElement(body); ok {
			body = main
		}
		body = addHTMXTitleIfMissing(body, TitleTag(page.Title))
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Add("Vary", RequestHeaderKey)
	w.WriteHeader(statusCode)
	_, err := w.Write(body)
	return err
}

func addHTMXTitleIfMissing(responseBody []byte, title string) []byte {
	if bytes.Contains(bytes.ToLower(responseBody), []byte("<title")) {
		return responseBody
	}
	if strings.TrimSpace(title) == "" {
		return responseBody
	}
	out := make([]byte, 0, len(title)+len(responseBody))
	out = append(out, title...)
	return append(out, responseBody...)
}

// extractMainElement returns the first <main> element through the last
// closing tag, so nested main elements in page content stay intact.
func extractMainElement(body []byte) ([]byte, bool) {
	start := bytes.Index(body, []byte("<main"))
	if start < 0 {
		return nil, false
	}
	end := bytes.LastIndex(body, []byte("</main>"))
	if end < start {
		return nil, false
	}
	return body[start : end+len("</main>")], true
}

func requestContext(r *http.Request) context.Context {
	if r == nil {
		return context.Background()
	}
	return r.Context()
}
