// Package i18nhttp resolves the request language and its message printer.
package i18nhttp

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	platformi18n "github.com/louisbranch/invmgmt/internal/platform/i18n"
	// Registers the embedded locale messages with the default catalog.
	_ "github.com/louisbranch/invmgmt/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the user's language preference.
	LangCookieName = "invmgmt_lang"
)

// LanguageOption represents a supported language option in UI surfaces.
type LanguageOption struct {
	Tag    string
	Label  string
	URL    string
	Active bool
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// ResolveTag determines the best language tag for the request.
// The bool indicates whether the lang query param should be persisted as a cookie.
func ResolveTag(r *http.Request) (language.Tag, bool) {
	if r == nil {
		return platformi18n.DefaultTag(), false
	}

	if langValue := strings.TrimSpace(r.URL.Query().Get(LangParam)); langValue != "" {
		if tag, ok := platformi18n.ParseTag(langValue); ok {
			return tag, true
		}
	}

	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := platformi18n.ParseTag(cookie.Value); ok {
			return tag, false
		}
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
			return platformi18n.MatchTags(tags), false
		}
	}

	return platformi18n.DefaultTag(), false
}

// ResolveLocalizer resolves the request language, persists an explicit
// choice, and returns the printer plus the BCP 47 tag string.
func ResolveLocalizer(w http.ResponseWriter, r *http.Request) (*message.Printer, string) {
	tag, persist := ResolveTag(r)
	if persist {
		SetLanguageCookie(w, tag)
	}
	return Printer(tag), tag.String()
}

// SetLanguageCookie persists the selected language on the response. A
// language cookie already staged on w is replaced.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	if w == nil {
		return
	}
	dropStagedLanguageCookie(w.Header())
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

func dropStagedLanguageCookie(header http.Header) {
	staged := header.Values("Set-Cookie")
	if len(staged) == 0 {
		return
	}
	kept := make([]string, 0, len(staged))
	for _, line := range staged {
		if cookie, err := http.ParseSetCookie(line); err == nil && cookie.Name == LangCookieName {
			continue
		}
		kept = append(kept, line)
	}
	header.Del("Set-Cookie")
	for _, line := range kept {
		header.Add("Set-Cookie", line)
	}
}

// NormalizeTag coerces unknown tags to the default supported language.
func NormalizeTag(value string) language.Tag {
	if tag, ok := platformi18n.ParseTag(value); ok {
		return tag
	}
	return platformi18n.DefaultTag()
}

// BuildLanguageOptions returns the supported languages for a switcher that
// keeps the visitor on path.
func BuildLanguageOptions(path string, rawQuery string, activeLang string, labelForTag func(tag language.Tag) string) []LanguageOption {
	supported := platformi18n.SupportedTags()
	options := make([]LanguageOption, 0, len(supported))
	activeTag := NormalizeTag(activeLang)
	for _, tag := range supported {
		label := tag.String()
		if labelForTag != nil {
			if resolved := strings.TrimSpace(labelForTag(tag)); resolved != "" {
				label = resolved
			}
		}
		options = append(options, LanguageOption{
			Tag:    tag.String(),
			Label:  label,
			URL:    LanguageURL(path, rawQuery, tag.String()),
			Active: tag == activeTag,
		})
	}
	return options
}

// LanguageURL returns the current URL with the language param updated.
func LanguageURL(path string, rawQuery string, tag string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		path = "/"
	}
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		query = url.Values{}
	}
	query.Set(LangParam, tag)
	return (&url.URL{Path: path, RawQuery: query.Encode()}).String()
}

// LanguageKeyLabel maps a language tag to its catalog label key.
func LanguageKeyLabel(tag language.Tag) string {
	switch tag {
	case language.BrazilianPortuguese:
		return "nav.lang_pt_br"
	case language.AmericanEnglish:
		return "nav.lang_en"
	default:
		return tag.String()
	}
}
