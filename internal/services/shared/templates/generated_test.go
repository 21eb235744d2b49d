package templates

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTemplSourcesHaveGeneratedCode(t *testing.T) {
	t.Parallel()

	sources, err := filepath.Glob("*.templ")
	if err != nil {
		t.Fatalf("glob templ sources: %v", err)
	}
	if len(sources) == 0 {
		t.Fatal("expected templ sources for the shell components")
	}
	for _, source := range sources {
		generated := strings.TrimSuffix(source, ".templ") + "_templ.go"
		data, err := os.ReadFile(generated)
		if err != nil {
			t.Fatalf("%s: missing generated file %s: %v", source, generated, err)
		}
		if !strings.HasPrefix(string(data), "// Code generated by templ - DO NOT EDIT.") {
			t.Fatalf("%s: %s lacks the templ generated header", source, generated)
		}
		if !strings.Contains(string(data), "templruntime.GeneratedTemplate(") {
			t.Fatalf("%s: %s renders no templ components", source, generated)
		}
	}
}
