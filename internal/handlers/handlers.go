package handlers

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"

	"tidepool.dev/internal/config"
	"tidepool.dev/internal/middleware"
	"tidepool.dev/internal/page"
	"tidepool.dev/internal/services"
)

// SetupRoutes configures all routes and returns the router.
// Project data and static assets are read through fs.
func SetupRoutes(cfg *config.Config, fs afero.Fs, log hclog.Logger) (http.Handler, error) {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(log.Named("http")))
	r.Use(middleware.Logger(os.Stdout))
	r.Use(middleware.Secure(cfg.DevMode))

	// Initialize services
	projectService := services.NewProjectService(services.NewSource(fs, cfg.ProjectsSource), cfg.FetchTimeout)
	loader := services.NewContentLoader(projectService, log.Named("loader"))
	boot := page.NewBoot(loader, nil)

	renderer, err := page.NewRenderer(nil)
	if err != nil {
		return nil, err
	}

	// Initialize handlers
	pageHandler := NewPageHandler(boot, renderer, cfg.ReducedMotion, log.Named("page"))
	projectHandler := NewProjectHandler(projectService, loader, log.Named("projects"))
	motionHandler := NewMotionHandler(cfg.ReducedMotion, log.Named("motion"))
	apiLog := log.Named("api")

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Project endpoints
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/fragment", projectHandler.Fragment)

		// Motion plan
		r.Get("/motion", motionHandler.GetPlan)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, apiLog, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	// Static files
	fileServer := http.FileServer(afero.NewHttpFs(fs).Dir(cfg.StaticDir))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))

	r.Get("/", pageHandler.Index)
	r.Get("/skills.css", pageHandler.SkillsCSS)

	return r, nil
}

// respondJSON writes a JSON response; encoding failures go to log
func respondJSON(w http.ResponseWriter, log hclog.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error("error encoding JSON", "error", err)
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, log hclog.Logger, status int, message string) {
	respondJSON(w, log, status, map[string]string{"error": message})
}
