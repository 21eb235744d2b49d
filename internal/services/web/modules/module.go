// Package modules defines web module registry helpers.
package modules

import module "github.com/louisbranch/invmgmt/internal/services/web/module"

// Module aliases the module interface contract.
type Module = module.Module
