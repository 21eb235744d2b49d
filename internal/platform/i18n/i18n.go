// Package i18n declares the languages InvMgmt renders and how request tags
// map onto them.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

var supportedTags = []language.Tag{
	language.AmericanEnglish,
	language.BrazilianPortuguese,
}

var matcher = language.NewMatcher(supportedTags)

// SupportedTags returns the languages with a message catalog.
func SupportedTags() []language.Tag {
	out := make([]language.Tag, len(supportedTags))
	copy(out, supportedTags)
	return out
}

// DefaultTag returns the fallback language.
func DefaultTag() language.Tag {
	return supportedTags[0]
}

// ParseTag parses value and maps it onto a supported language.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return language.Und, false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return language.Und, false
	}
	_, idx, confidence := matcher.Match(tag)
	if confidence == language.No {
		return language.Und, false
	}
	return supportedTags[idx], true
}

// MatchTags picks the best supported language for the ordered preferences.
func MatchTags(tags []language.Tag) language.Tag {
	if len(tags) == 0 {
		return DefaultTag()
	}
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultTag()
	}
	return supportedTags[idx]
}
