// Package api provides the HTTP API server and handlers for the Inkwell
// backend.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/inkwellapp/inkwell-server/internal/service"
	"github.com/inkwellapp/inkwell-server/internal/store"
)

// Services groups the business logic services used by the API server.
type Services struct {
	Auth         *service.AuthService
	Book         *service.BookService
	Section      *service.SectionService
	Collaborator *service.CollaboratorService
	Search       *service.SearchService
}

// Options tunes server behavior. Zero values get sensible defaults.
type Options struct {
	CORSOrigins []string
	// Auth endpoints allow this many requests per client IP per minute.
	AuthRatePerMinute int
	AuthRateBurst     int
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	store           *store.Store
	services        *Services
	router          *chi.Mux
	api             huma.API
	logger          *slog.Logger
	authRateLimiter *RateLimiter
}

// NewServer creates an HTTP server with all routes configured.
func NewServer(st *store.Store, services *Services, opts Options, logger *slog.Logger) *Server {
	if opts.AuthRatePerMinute <= 0 {
		opts.AuthRatePerMinute = 20
	}
	if opts.AuthRateBurst <= 0 {
		opts.AuthRateBurst = 10
	}
	if len(opts.CORSOrigins) == 0 {
		opts.CORSOrigins = []string{"*"}
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	s := &Server{
		store:           st,
		services:        services,
		router:          router,
		logger:          logger,
		authRateLimiter: NewRateLimiter(opts.AuthRatePerMinute, time.Minute, opts.AuthRateBurst),
	}

	router.Use(authMiddleware(services.Auth))
	router.Use(s.rateLimitAuthEndpoints)

	humaConfig := huma.DefaultConfig("Inkwell API", "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {
			Type:         "http",
			Scheme:       "bearer",
			BearerFormat: "PASETO",
		},
	}
	humaConfig.Transformers = append(humaConfig.Transformers, EnvelopeTransformer)

	s.api = humachi.New(router, humaConfig)
	RegisterErrorHandler()

	s.registerHealthRoutes()
	s.registerAuthRoutes()
	s.registerBookRoutes()
	s.registerSectionRoutes()
	s.registerCollaboratorRoutes()
	s.registerSearchRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// API exposes the huma API, used by tests to wrap the server.
func (s *Server) API() huma.API {
	return s.api
}

// Close releases the server's background resources.
func (s *Server) Close() {
	s.authRateLimiter.Stop()
}
