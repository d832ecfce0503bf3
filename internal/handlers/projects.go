package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"vado.sa/internal/animation"
	"vado.sa/internal/services"
)

// ProjectHandler handles project-related endpoints
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: ps}
}

// ListProjects handles GET /api/projects
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects := h.projectService.GetAll()
	respondJSON(w, http.StatusOK, projects)
}

// GetProject handles GET /api/projects/{slug}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	project, ok := h.projectService.GetBySlug(slug)
	if !ok {
		respondError(w, http.StatusNotFound, "Project not found")
		return
	}

	respondJSON(w, http.StatusOK, project)
}

// GetAdjacent handles GET /api/projects/{slug}/adjacent.
// An unknown slug yields two nulls, same as the catalog.
func (h *ProjectHandler) GetAdjacent(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	respondJSON(w, http.StatusOK, h.projectService.GetAdjacent(slug))
}

// Animations handles GET /api/animations
func Animations(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, animation.Export())
}
