package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestLoadEmbeddedHasExpectedLocales(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	if !bundle.HasLocale(BaseLocale) {
		t.Fatalf("expected base locale %s", BaseLocale)
	}
	if !bundle.HasLocale("pt-BR") {
		t.Fatalf("expected locale pt-BR")
	}
}

func TestEmbeddedLocalesTranslateEveryBaseKey(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	for _, locale := range bundle.Locales() {
		if missing := bundle.MissingKeys(locale); len(missing) > 0 {
			t.Fatalf("locale %s missing keys %v", locale, missing)
		}
	}
}

func TestDefaultRegistersPrinterMessages(t *testing.T) {
	_ = Default()
	p := message.NewPrinter(language.BrazilianPortuguese)
	if got := p.Sprintf("nav.dashboard"); got != "Painel" {
		t.Fatalf("pt-BR nav.dashboard = %q, want %q", got, "Painel")
	}
}

func TestMessageFallsBackToBaseLocale(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	got, ok := bundle.Message("fr-FR", "nav.dashboard")
	if !ok || got != "Dashboard" {
		t.Fatalf("Message(fr-FR) = %q, %v", got, ok)
	}
	if _, ok := bundle.Message("en-US", " "); ok {
		t.Fatal("expected blank key lookup to fail")
	}
}

func TestLoadFromFSRejectsDuplicateKeysAcrossFiles(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/a.yaml"), `locale: "en-US"
messages:
  "a.key": "a"
`)
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/b.yaml"), `locale: "en-US"
messages:
  "a.key": "b"
`)

	if _, err := LoadFromFS(os.DirFS(tempDir)); err == nil {
		t.Fatal("expected duplicate key error")
	}
}

func TestLoadFromFSRejectsLocaleMismatch(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/a.yaml"), `locale: "pt-BR"
messages:
  "a.key": "a"
`)

	if _, err := LoadFromFS(os.DirFS(tempDir)); err == nil {
		t.Fatal("expected locale mismatch error")
	}
}

func TestLoadFromFSRequiresBaseLocale(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/pt-BR/a.yaml"), `locale: "pt-BR"
messages:
  "a.key": "a"
`)

	if _, err := LoadFromFS(os.DirFS(tempDir)); err == nil {
		t.Fatal("expected missing base locale error")
	}
}

func TestLoadFromFSRejectsEmptyDirectory(t *testing.T) {
	if _, err := LoadFromFS(os.DirFS(t.TempDir())); err == nil {
		t.Fatal("expected no catalog files error")
	}
}

func mustWriteFile(t *testing.T, path string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
}
