package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/osse101/netitem/docs"
	"github.com/osse101/netitem/internal/handler"
	"github.com/osse101/netitem/internal/inventory"
	"github.com/osse101/netitem/internal/metrics"
)

// Config holds the HTTP settings of the server
type Config struct {
	Port           int
	Version        string
	APIKey         string
	TrustedProxies []string
	MaxBodyBytes   int64
}

// Server serves the item and inventory API
type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(cfg Config, inventoryService inventory.Service, parser handler.ItemParser, namer handler.ItemNamer) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           NewRouter(cfg, inventoryService, parser, namer),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the route tree with its middleware stack
func NewRouter(cfg Config, inventoryService inventory.Service, parser handler.ItemParser, namer handler.ItemNamer) http.Handler {
	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = DefaultMaxBodyBytes
	}
	tracker := NewClientTracker(RequestRateLimit)

	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(AuthMiddleware(cfg.APIKey, cfg.TrustedProxies, tracker))
	r.Use(RateLimitMiddleware(cfg.TrustedProxies, tracker))
	r.Use(RequestSizeLimitMiddleware(maxBody))
	r.Use(metrics.Middleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(inventoryService))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/version", handler.HandleVersion(cfg.Version))

	inventoryHandler := handler.NewInventoryHandler(inventoryService, namer)
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/items", func(r chi.Router) {
			r.Post("/parse", handler.HandleParseItem(parser, namer))
			r.Post("/format", handler.HandleFormatItem(parser))
		})

		r.Get("/layout", handler.HandleGetLayout(inventoryService))

		r.Route("/players/{playerID}/inventory", func(r chi.Router) {
			r.Get("/", inventoryHandler.HandleGetInventory)
			r.Put("/", inventoryHandler.HandlePutInventory)
			r.Delete("/", inventoryHandler.HandleDeleteInventory)
		})
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	slog.Default().Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}
