package httpadapter

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/couchcryptid/geo-lookup/internal/domain"
	"github.com/couchcryptid/geo-lookup/internal/observability"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server exposes the lookup API plus health, readiness, and metrics endpoints.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer creates an HTTP server routing /v1 lookups to geocoder.
// The write timeout leaves room for a full provider round trip.
func NewServer(addr string, geocoder domain.Geocoder, ready sharedobs.ReadinessChecker, metrics *observability.Metrics, logger *slog.Logger, providerTimeout time.Duration) *Server {
	router := gin.New()
	router.Use(gin.Recovery(), requestMetrics(metrics), requestLogging(logger))

	router.GET("/healthz", gin.WrapF(sharedobs.LivenessHandler()))
	router.GET("/readyz", gin.WrapF(sharedobs.ReadinessHandler(ready)))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	h := newHandlers(geocoder)
	v1 := router.Group("/v1")
	v1.GET("/geocode", h.geocodeInfo)
	v1.GET("/geocode/lnglat", h.geocodeLngLat)
	v1.GET("/reverse", h.reverse)
	v1.GET("/reverse/all", h.reverseAll)
	v1.GET("/reverse/address", h.reverseAddress)
	v1.GET("/accuracy/:level", h.accuracy)

	return &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      router,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: providerTimeout + 10*time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: logger,
	}
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

// AlwaysReady is the readiness checker used when no background worker gates
// the service.
type AlwaysReady struct{}

func (AlwaysReady) CheckReadiness(context.Context) error { return nil }
