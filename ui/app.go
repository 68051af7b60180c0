package ui

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"gojoins/app"
)

// App represents the HTTP application
type App struct {
	router  *chi.Mux
	service *app.JoinsService
	sweeper *app.SweepService
}

// Config holds HTTP application configuration
type Config struct {
	Port string
}

// NewApp creates a new HTTP application around the joins and sweep services
func NewApp(service *app.JoinsService, sweeper *app.SweepService) *App {
	a := &App{
		router:  chi.NewRouter(),
		service: service,
		sweeper: sweeper,
	}
	a.setupMiddleware()
	a.setupRoutes()
	return a
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Post("/api/samples", a.handleAddSample)
	a.router.Get("/api/samples", a.handleListSamples)
	a.router.Get("/api/samples/{name}", a.handleReadSample)
	a.router.Delete("/api/samples/{name}", a.handleUnloadSample)
	a.router.Post("/api/samples/import", a.handleImportFile)

	a.router.Post("/api/joins/run", a.handleRunTest)
	a.router.Get("/api/samples/{name}/joins", a.handleSampleJoins)
	a.router.Get("/api/samples/{name}/dump", a.handleSampleDump)

	a.router.Post("/api/sweep", a.handleSweep)
	a.router.Get("/api/sweep/report", a.handleSweepReport)
}

// Router exposes the underlying mux, mainly for tests
func (a *App) Router() http.Handler {
	return a.router
}

// Start runs the HTTP server on the given port
func (a *App) Start(cfg Config) error {
	addr := fmt.Sprintf(":%s", cfg.Port)
	return http.ListenAndServe(addr, a.router)
}
