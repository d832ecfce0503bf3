package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"vado.sa/internal/config"
	"vado.sa/internal/content"
	"vado.sa/internal/interaction"
	"vado.sa/internal/middleware"
	"vado.sa/internal/models"
	"vado.sa/internal/notify"
	"vado.sa/internal/render"
	"vado.sa/internal/services"
)

// Dependencies are the collaborators the router is built around
type Dependencies struct {
	Logger   *zap.Logger
	Sink     services.Sink
	Registry *prometheus.Registry
	// Clock drives the contact form reset; nil uses the system clock
	Clock interaction.Clock
}

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, projects []models.Project, deps Dependencies) (http.Handler, error) {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	reg := deps.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	sink := deps.Sink
	if sink == nil {
		sink = notify.NewLogSink(logger)
	}

	// Initialize services
	projectService, err := services.NewProjectService(projects)
	if err != nil {
		return nil, fmt.Errorf("project catalog: %w", err)
	}
	pageService := services.NewPageService(projectService, content.Site(), services.WithBaseURL(cfg.BaseURL))
	contactService := services.NewContactService(sink, logger, deps.Clock, cfg.ContactReset)

	renderer, err := render.New()
	if err != nil {
		return nil, err
	}

	// Initialize handlers
	pages := NewPageHandler(pageService, contactService, renderer, logger)
	projectHandler := NewProjectHandler(projectService)
	contactHandler := NewContactHandler(contactService)

	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.NewMetrics(reg).Handler)

	r.NotFound(pages.NotFound)

	// Pages
	r.Get("/", pages.Home)
	r.Get("/projects/{slug}", pages.Project)
	r.Post("/contact", pages.Contact)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{slug}", projectHandler.GetProject)
		r.Get("/projects/{slug}/adjacent", projectHandler.GetAdjacent)
		r.Post("/contact", contactHandler.Submit)
		r.Get("/animations", Animations)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	// Static files
	r.Handle("/static/*", http.StripPrefix("/static", http.FileServer(http.FS(render.Static()))))
	// Asset references are paths under the asset dir, e.g. /images/hero-1.png
	r.Handle("/images/*", http.FileServer(http.Dir(cfg.AssetDir)))

	return r, nil
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
