package templates

import (
	"strings"

	"golang.org/x/text/message"
)

// Localizer resolves catalog keys. *message.Printer satisfies it.
type Localizer interface {
	Sprintf(key message.Reference, a ...any) string
}

// T translates key, falling back to the key itself without a localizer.
func T(loc Localizer, key string, args ...any) string {
	if loc == nil {
		return key
	}
	if out := loc.Sprintf(key, args...); strings.TrimSpace(out) != "" {
		return out
	}
	return key
}
