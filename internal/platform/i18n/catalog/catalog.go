// Package catalog loads the embedded chrome message catalogs and registers
// them with golang.org/x/text/message.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the canonical source locale for catalogs.
const BaseLocale = "en-US"

type catalogFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Bundle holds the messages for every locale found on disk.
type Bundle struct {
	locales map[string]map[string]string
}

//go:embed locales/*/*.yaml
var embeddedCatalogFS embed.FS

var defaultBundle = mustLoadAndRegisterEmbedded()

// Default returns the process-wide embedded catalog bundle.
func Default() *Bundle {
	return defaultBundle
}

// LoadEmbedded loads catalog files embedded in this package.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embeddedCatalogFS)
}

// LoadFromFS loads locales/<locale>/<namespace>.yaml files from catalogFS.
func LoadFromFS(catalogFS fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(catalogFS, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	bundle := &Bundle{locales: map[string]map[string]string{}}
	for _, p := range paths {
		data, err := fs.ReadFile(catalogFS, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		var parsed catalogFile
		if err := yaml.Unmarshal(data, &parsed); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", p, err)
		}
		if err := bundle.add(p, parsed); err != nil {
			return nil, err
		}
	}

	if !bundle.HasLocale(BaseLocale) {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}
	return bundle, nil
}

func (b *Bundle) add(p string, file catalogFile) error {
	localeFromPath := path.Base(path.Dir(p))
	locale := strings.TrimSpace(file.Locale)
	if locale == "" {
		return fmt.Errorf("catalog %s: locale is required", p)
	}
	if locale != localeFromPath {
		return fmt.Errorf("catalog %s: locale %q must match path locale %q", p, locale, localeFromPath)
	}
	if len(file.Messages) == 0 {
		return fmt.Errorf("catalog %s: messages are required", p)
	}

	messages, ok := b.locales[locale]
	if !ok {
		messages = map[string]string{}
		b.locales[locale] = messages
	}
	for key, value := range file.Messages {
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("catalog %s: message key cannot be blank", p)
		}
		if _, exists := messages[key]; exists {
			return fmt.Errorf("catalog %s: duplicate key %q in locale %q", p, key, locale)
		}
		messages[key] = value
	}
	return nil
}

// Register registers all catalog messages with x/text/message.
func (b *Bundle) Register() error {
	if b == nil {
		return nil
	}
	for _, locale := range b.Locales() {
		tag, err := language.Parse(locale)
		if err != nil {
			return fmt.Errorf("parse locale tag %q: %w", locale, err)
		}
		messages := b.locales[locale]
		for key, value := range messages {
			if err := message.SetString(tag, key, value); err != nil {
				return fmt.Errorf("register %s %q: %w", locale, key, err)
			}
		}
	}
	return nil
}

// HasLocale reports whether the locale exists in this bundle.
func (b *Bundle) HasLocale(locale string) bool {
	if b == nil {
		return false
	}
	_, ok := b.locales[strings.TrimSpace(locale)]
	return ok
}

// Locales returns all available locale identifiers, sorted.
func (b *Bundle) Locales() []string {
	if b == nil {
		return nil
	}
	out := make([]string, 0, len(b.locales))
	for locale := range b.locales {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// Message returns one message value with base-locale fallback.
func (b *Bundle) Message(locale string, key string) (string, bool) {
	if b == nil {
		return "", false
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", false
	}
	if value, ok := b.locales[strings.TrimSpace(locale)][key]; ok {
		return value, true
	}
	value, ok := b.locales[BaseLocale][key]
	return value, ok
}

// MissingKeys lists base-locale keys that locale does not translate.
func (b *Bundle) MissingKeys(locale string) []string {
	if b == nil {
		return nil
	}
	target := b.locales[strings.TrimSpace(locale)]
	var missing []string
	for key := range b.locales[BaseLocale] {
		if _, ok := target[key]; !ok {
			missing = append(missing, key)
		}
	}
	sort.Strings(missing)
	return missing
}

func mustLoadAndRegisterEmbedded() *Bundle {
	bundle, err := LoadEmbedded()
	if err != nil {
		panic(err)
	}
	if err := bundle.Register(); err != nil {
		panic(err)
	}
	return bundle
}
