// Package home serves the dashboard landing page of the shell.
package home

import (
	"net/http"

	module "github.com/louisbranch/invmgmt/internal/services/web/module"
)

// Prefix is the mount point of the home module.
const Prefix = "/"

// Module provides the dashboard landing page and the shell 404.
type Module struct{}

// New returns a home module.
func New() Module {
	return Module{}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "home" }

// Mount wires home route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(deps))
	return module.Mount{Prefix: Prefix, Handler: mux}, nil
}
