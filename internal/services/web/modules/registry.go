package modules

import "github.com/louisbranch/invmgmt/internal/services/web/modules/home"

// DefaultModules returns the modules mounted by the web service.
func DefaultModules() []Module {
	return []Module{
		home.New(),
	}
}
