package handlers

import (
	"bytes"
	"net/http"

	"go.uber.org/zap"

	"designcollective.dev/internal/components"
	"designcollective.dev/internal/services"
	"designcollective.dev/internal/view"
)

// PageHandler renders the site
type PageHandler struct {
	projectService *services.ProjectService
	clock          view.Clock
	log            *zap.Logger
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(ps *services.ProjectService, clock view.Clock, log *zap.Logger) *PageHandler {
	return &PageHandler{projectService: ps, clock: clock, log: log}
}

// Index handles GET /. The optional ?menu=open query renders the mobile
// menu expanded; every other value renders it closed.
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	menu := view.NewMenu(view.ParseMenuState(r.URL.Query().Get(view.MenuParam)))
	page := components.Page(h.projectService.Content(), menu, h.clock, "/static")

	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		h.log.Error("failed to render page", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
