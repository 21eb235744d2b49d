package home

import (
	"log"
	"net/http"

	module "github.com/louisbranch/invmgmt/internal/services/web/module"
	"github.com/louisbranch/invmgmt/internal/services/web/platform/modulehandler"
)

type handlers struct {
	modulehandler.Base
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{Base: modulehandler.NewBase(deps)}
}

// handleIndex renders the landing page under the bare site title.
func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	if err := h.WritePage(w, r, "", http.StatusOK, welcomePanel(h.PageLocalizer(r))); err != nil {
		log.Printf("home: %v", err)
	}
}
