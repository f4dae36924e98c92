package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"designcollective.dev/internal/services"
)

// ProjectHandler serves the page content as JSON
type ProjectHandler struct {
	projectService *services.ProjectService
	log            *zap.Logger
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService, log *zap.Logger) *ProjectHandler {
	return &ProjectHandler{projectService: ps, log: log}
}

// ListSections handles GET /api/sections
func (h *ProjectHandler) ListSections(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, h.log, http.StatusOK, h.projectService.Sections())
}

// ListProjects handles GET /api/projects
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, h.log, http.StatusOK, h.projectService.Collections())
}

// GetCollection handles GET /api/projects/{collection}
func (h *ProjectHandler) GetCollection(w http.ResponseWriter, r *http.Request) {
	col, err := h.projectService.Collection(chi.URLParam(r, "collection"))
	if err != nil {
		h.respondNotFound(w, err, "Collection not found")
		return
	}
	respondJSON(w, h.log, http.StatusOK, col)
}

// GetProject handles GET /api/projects/{collection}/{slug}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	project, err := h.projectService.GetBySlug(chi.URLParam(r, "collection"), chi.URLParam(r, "slug"))
	if err != nil {
		h.respondNotFound(w, err, "Project not found")
		return
	}
	respondJSON(w, h.log, http.StatusOK, project)
}

func (h *ProjectHandler) respondNotFound(w http.ResponseWriter, err error, message string) {
	if errors.Is(err, services.ErrNotFound) {
		respondError(w, h.log, http.StatusNotFound, message)
		return
	}
	h.log.Error("project lookup failed", zap.Error(err))
	respondError(w, h.log, http.StatusInternalServerError, err.Error())
}
