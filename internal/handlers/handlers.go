package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"designcollective.dev/internal/config"
	"designcollective.dev/internal/middleware"
	"designcollective.dev/internal/services"
	"designcollective.dev/internal/view"
	"designcollective.dev/static"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, log *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(middleware.Recovery(log))
	r.Use(middleware.Logger(log))

	// Initialize services
	projectService := services.NewProjectService(cfg.Content)

	// Initialize handlers
	pageHandler := NewPageHandler(projectService, view.SystemClock, log)
	projectHandler := NewProjectHandler(projectService, log)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			MaxAge:         300,
		}))

		r.Get("/sections", projectHandler.ListSections)
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{collection}", projectHandler.GetCollection)
		r.Get("/projects/{collection}/{slug}", projectHandler.GetProject)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, log, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	// Static files
	fileServer := http.FileServer(http.FS(static.FS))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))

	r.Get("/", pageHandler.Index)

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, log *zap.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Warn("error encoding JSON", zap.Error(err))
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, log *zap.Logger, status int, message string) {
	respondJSON(w, log, status, map[string]string{"error": message})
}
