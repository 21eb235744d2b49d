package module

import "testing"

func TestDependenciesScriptURLs(t *testing.T) {
	t.Parallel()

	if got := (Dependencies{}).ScriptURLs(); got != nil {
		t.Fatalf("ScriptURLs() = %v, want nil", got)
	}
	got := Dependencies{HTMXScriptURL: " /static/htmx.min.js "}.ScriptURLs()
	if len(got) != 1 || got[0] != "/static/htmx.min.js" {
		t.Fatalf("ScriptURLs() = %v", got)
	}
}
