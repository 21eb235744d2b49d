package app

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/louisbranch/invmgmt/internal/platform/branding"
	module "github.com/louisbranch/invmgmt/internal/services/web/module"
)

type stubModule struct {
	id      string
	mount   module.Mount
	err     error
	gotDeps *module.Dependencies
}

func (m stubModule) ID() string { return m.id }

func (m stubModule) Mount(deps module.Dependencies) (module.Mount, error) {
	if m.gotDeps != nil {
		*m.gotDeps = deps
	}
	return m.mount, m.err
}

func noContent() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestComposeRejectsDuplicateModulePrefix(t *testing.T) {
	t.Parallel()

	_, err := Composer{}.Compose(ComposeInput{
		Modules: []module.Module{
			stubModule{id: "one", mount: module.Mount{Prefix: "/one/", Handler: noContent()}},
			stubModule{id: "two", mount: module.Mount{Prefix: "/one/", Handler: noContent()}},
		},
	})
	if err == nil {
		t.Fatalf("expected duplicate prefix error")
	}
	if !strings.Contains(err.Error(), `owned by module "one"`) {
		t.Fatalf("unexpected error = %q", err)
	}
}

func TestComposeRejectsInvalidModulePrefixes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
	}{
		{name: "empty", prefix: ""},
		{name: "missing leading slash", prefix: "items/"},
		{name: "missing trailing slash", prefix: "/items"},
		{name: "contains surrounding whitespace", prefix: "/items/ "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Composer{}.Compose(ComposeInput{
				Modules: []module.Module{
					stubModule{id: "bad", mount: module.Mount{Prefix: tc.prefix, Handler: noContent()}},
				},
			})
			if err == nil {
				t.Fatalf("expected invalid prefix error")
			}
			if got := err.Error(); !strings.Contains(got, "invalid prefix") || !strings.Contains(got, "bad") {
				t.Fatalf("unexpected error = %q", got)
			}
		})
	}
}

func TestComposeRejectsNilModule(t *testing.T) {
	t.Parallel()

	if _, err := (Composer{}).Compose(ComposeInput{Modules: []module.Module{nil}}); err == nil {
		t.Fatalf("expected nil module error")
	}
}

func TestComposeRejectsMissingHandler(t *testing.T) {
	t.Parallel()

	_, err := Composer{}.Compose(ComposeInput{
		Modules: []module.Module{stubModule{id: "empty", mount: module.Mount{Prefix: "/empty/"}}},
	})
	if err == nil || !strings.Contains(err.Error(), "handler is required") {
		t.Fatalf("error = %v, want handler required", err)
	}
}

func TestComposeWrapsMountErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	_, err := Composer{}.Compose(ComposeInput{
		Modules: []module.Module{stubModule{id: "broken", err: boom}},
	})
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want wrapped %v", err, boom)
	}
}

func TestComposeRoutesToMountedModules(t *testing.T) {
	t.Parallel()

	h, err := Composer{}.Compose(ComposeInput{
		Modules: []module.Module{
			stubModule{id: "items", mount: module.Mount{Prefix: "/items/", Handler: noContent()}},
			stubModule{id: "root", mount: module.Mount{Prefix: "/", Handler: http.NotFoundHandler()}},
		},
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/items/abc", nil))
	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNoContent)
	}

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/other", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestComposeRejectsUnsupportedMethods(t *testing.T) {
	t.Parallel()

	h, err := Composer{}.Compose(ComposeInput{
		Modules: []module.Module{stubModule{id: "root", mount: module.Mount{Prefix: "/", Handler: noContent()}}},
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
	if got := rr.Header().Get("Allow"); got != "GET, HEAD" {
		t.Fatalf("Allow = %q", got)
	}
}

func TestBuildRootHandlerDefaultsMetadata(t *testing.T) {
	t.Parallel()

	var got module.Dependencies
	_, err := BuildRootHandler(Config{
		Modules: []module.Module{stubModule{id: "root", mount: module.Mount{Prefix: "/", Handler: noContent()}, gotDeps: &got}},
	}, nil)
	if err != nil {
		t.Fatalf("BuildRootHandler() error = %v", err)
	}
	if got.Metadata != branding.DefaultMetadata() {
		t.Fatalf("metadata = %#v, want default", got.Metadata)
	}
}

func TestBuildRootHandlerRejectsPartialMetadata(t *testing.T) {
	t.Parallel()

	_, err := BuildRootHandler(Config{
		Dependencies: module.Dependencies{Metadata: branding.Metadata{Title: "Only title"}},
	}, nil)
	if err == nil {
		t.Fatalf("expected metadata validation error")
	}
}
