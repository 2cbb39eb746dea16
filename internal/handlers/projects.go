package handlers

import (
	"net/http"

	"github.com/hashicorp/go-hclog"

	"tidepool.dev/internal/page"
	"tidepool.dev/internal/services"
)

// ProjectHandler handles project-related endpoints
type ProjectHandler struct {
	projectService *services.ProjectService
	loader         *services.ContentLoader
	log            hclog.Logger
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService, loader *services.ContentLoader, log hclog.Logger) *ProjectHandler {
	return &ProjectHandler{projectService: ps, loader: loader, log: log}
}

// ListProjects handles GET /api/projects
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.Fetch(r.Context())
	if err != nil {
		respondError(w, h.log, http.StatusServiceUnavailable, "projects unavailable")
		return
	}
	respondJSON(w, h.log, http.StatusOK, projects)
}

// Fragment handles GET /api/projects/fragment - returns the grid markup from a
// fresh load, or an empty grid when the load fails
func (h *ProjectHandler) Fragment(w http.ResponseWriter, r *http.Request) {
	grid := &page.Grid{}
	h.loader.Load(r.Context(), grid)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(grid.HTML()))
}
