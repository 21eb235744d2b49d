// Package app composes feature modules into the web root handler.
package app

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/louisbranch/invmgmt/internal/platform/branding"
	module "github.com/louisbranch/invmgmt/internal/services/web/module"
	"github.com/louisbranch/invmgmt/internal/services/web/platform/httpx"
)

// ComposeInput carries the modules to mount and the dependencies they share.
type ComposeInput struct {
	Dependencies module.Dependencies
	Modules      []module.Module
	// Mux receives the mounts; a new mux is created when nil.
	Mux *http.ServeMux
}

// Composer mounts modules on a single mux.
type Composer struct{}

// Compose builds a root HTTP handler from modules. It fails on nil modules,
// invalid mounts and duplicate prefixes.
func (Composer) Compose(input ComposeInput) (http.Handler, error) {
	root := input.Mux
	if root == nil {
		root = http.NewServeMux()
	}
	seen := make(map[string]string)
	for _, feature := range input.Modules {
		if feature == nil {
			return nil, fmt.Errorf("module is nil")
		}
		mount, prefix, err := resolveMount(feature, input.Dependencies)
		if err != nil {
			return nil, err
		}
		if previous, ok := seen[prefix]; ok {
			return nil, fmt.Errorf("module %q duplicates prefix %q owned by module %q", feature.ID(), prefix, previous)
		}
		seen[prefix] = feature.ID()
		root.Handle(prefix, httpx.RequireMethods(http.MethodGet, http.MethodHead)(mount.Handler))
	}
	return root, nil
}

// BuildRootHandler fills dependency defaults and composes cfg's modules.
func BuildRootHandler(cfg Config, mux *http.ServeMux) (http.Handler, error) {
	deps := cfg.Dependencies
	if strings.TrimSpace(deps.Metadata.Title) == "" && strings.TrimSpace(deps.Metadata.Description) == "" {
		deps.Metadata = branding.DefaultMetadata()
	}
	if err := deps.Metadata.Validate(); err != nil {
		return nil, fmt.Errorf("web metadata: %w", err)
	}
	return Composer{}.Compose(ComposeInput{
		Dependencies: deps,
		Modules:      cfg.Modules,
		Mux:          mux,
	})
}

func resolveMount(feature module.Module, deps module.Dependencies) (module.Mount, string, error) {
	mount, err := feature.Mount(deps)
	if err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	if err := validatePrefix(mount.Prefix); err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q has invalid prefix %q: %w", feature.ID(), mount.Prefix, err)
	}
	if mount.Handler == nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	return mount, mount.Prefix, nil
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("prefix is required")
	}
	if strings.TrimSpace(prefix) != prefix {
		return fmt.Errorf("prefix must not include surrounding whitespace")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("prefix must begin with /")
	}
	if !strings.HasSuffix(prefix, "/") {
		return fmt.Errorf("prefix must end with /")
	}
	return nil
}
