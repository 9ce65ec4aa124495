package data

import (
	"context"
	"errors"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"
	"github.com/skybi/tinsig/internal/api/schema"
	"github.com/skybi/tinsig/internal/config"
	"github.com/skybi/tinsig/internal/metrics"
	"github.com/skybi/tinsig/internal/storage"
	"net/http"
	"sync"
	"time"
)

// ErrNotInitialized is returned by Startup if Init was not called before
var ErrNotInitialized = errors.New("the data API was not initialized")

// Service represents the data API service
type Service struct {
	mu     sync.Mutex
	server *http.Server

	Config  *config.Config
	Storage storage.Driver

	// Metrics is optional; no metrics are recorded or exposed if it is nil
	Metrics *metrics.Metrics

	// Clock is optional and defaults to the real clock
	Clock clockwork.Clock

	writer *schema.Writer
}

// Init builds the HTTP server of the data API without accepting connections yet
func (service *Service) Init() error {
	handler, err := service.Handler()
	if err != nil {
		return err
	}

	service.mu.Lock()
	defer service.mu.Unlock()
	service.server = &http.Server{
		Addr:              service.Config.ListenAddress,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return nil
}

// Startup serves the data API using the server built by Init and blocks until it is shut down.
// Once Shutdown was called, it returns http.ErrServerClosed without listening.
func (service *Service) Startup() error {
	service.mu.Lock()
	server := service.server
	service.mu.Unlock()
	if server == nil {
		return ErrNotInitialized
	}
	return server.ListenAndServe()
}

// Shutdown gracefully shuts down the data API
func (service *Service) Shutdown(ctx context.Context) error {
	service.mu.Lock()
	server := service.server
	service.mu.Unlock()
	if server == nil {
		return nil
	}
	return server.Shutdown(ctx)
}

// Handler builds the HTTP handler serving the data API
func (service *Service) Handler() (http.Handler, error) {
	loc, err := service.Config.Location()
	if err != nil {
		return nil, err
	}

	// Create the HTTP schema writer
	service.writer = &schema.Writer{
		Clock:    service.Clock,
		Location: loc,
		InternalErrorHook: func(err error) {
			log.Error().Err(err).Msg("the data API experienced an unexpected error")
		},
	}

	// Create the HTTP router
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(hlog.NewHandler(log.Logger))
	router.Use(MiddlewareRequestID)
	router.Use(hlog.AccessHandler(logAccess))
	if service.Metrics != nil {
		router.Use(service.MiddlewareMetrics)
	}
	router.Use(service.MiddlewareCORS())
	router.Use(MiddlewarePreflight)
	router.Use(middleware.RedirectSlashes)
	if service.Config.RateLimitRequests > 0 {
		router.Use(httprate.Limit(
			service.Config.RateLimitRequests,
			service.Config.RateLimitWindow,
			httprate.WithKeyFuncs(httprate.KeyByIP),
			httprate.WithLimitHandler(func(writer http.ResponseWriter, _ *http.Request) {
				service.writer.WriteErrors(writer, http.StatusTooManyRequests, schema.ErrRateLimited)
			}),
		))
	}
	router.NotFound(func(writer http.ResponseWriter, _ *http.Request) {
		service.writer.WriteErrors(writer, http.StatusNotFound, schema.ErrNotFound)
	})
	router.MethodNotAllowed(func(writer http.ResponseWriter, _ *http.Request) {
		service.writer.WriteErrors(writer, http.StatusMethodNotAllowed, schema.ErrMethodNotAllowed)
	})

	// Register the API endpoint handlers
	service.registerEndpoints(router)

	return router, nil
}

func (service *Service) registerEndpoints(router chi.Router) {
	// Register one endpoint per dataset; they accept any method as parameters may arrive via query string or form body
	for _, repo := range service.Storage.Datasets() {
		router.HandleFunc("/v1/"+repo.Definition().Name, service.EndpointGetDataset(repo))
	}

	router.HandleFunc("/v1/statistics", service.EndpointGetStatistics)
	router.HandleFunc("/v1/map-data", service.EndpointGetMapData)

	router.Get("/health", service.EndpointGetHealth)
	router.Get("/health/detailed", service.EndpointGetDetailedHealth)

	if service.Metrics != nil {
		router.Method(http.MethodGet, "/metrics", service.Metrics.Handler())
	}
}

func logAccess(request *http.Request, status, size int, duration time.Duration) {
	hlog.FromRequest(request).Info().
		Str("method", request.Method).
		Str("path", request.URL.Path).
		Int("status", status).
		Int("size", size).
		Dur("duration", duration).
		Msg("served request")
}
