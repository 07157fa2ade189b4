package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/ExpTable_Go/internal/database"
	"github.com/osse101/ExpTable_Go/internal/handler"
	"github.com/osse101/ExpTable_Go/internal/logger"
	"github.com/osse101/ExpTable_Go/internal/metrics"
)

// Config holds the listener and middleware settings
type Config struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	RateLimitRPS   float64
	RateLimitBurst int
	MaxBodyBytes   int64
	// ImageDir serves cashable icons under /img when set
	ImageDir string
}

// Deps are the handlers and probes the router mounts
type Deps struct {
	// Pool is nil for the memory backend
	Pool           database.Pool
	Backend        string
	CatalogVersion func() string
	Tables         *handler.ExpTableHandler
	Cashables      *handler.CashableHandler
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(cfg Config, deps Deps) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           NewRouter(cfg, deps),
			ReadHeaderTimeout: DefaultReadHeaderTimeout,
		},
	}
}

// NewRouter builds the chi router with the full middleware stack
func NewRouter(cfg Config, deps Deps) http.Handler {
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}

	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()
	limiter := NewIPRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(limiter, cfg.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(cfg.MaxBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.Pool, deps.Backend, deps.CatalogVersion))
	r.Get("/version", handler.HandleVersion(deps.CatalogVersion))
	r.Handle("/metrics", promhttp.Handler())

	// Browser pages
	r.Get("/", deps.Tables.HandlePage)
	r.Get("/exp-table", deps.Tables.HandlePage)
	r.Get("/chart", deps.Tables.HandleChart)
	r.Get("/sum-cashable", deps.Cashables.HandlePage)
	r.Post("/sum-cashable", deps.Cashables.HandlePageSubmit)

	if cfg.ImageDir != "" {
		r.Handle("/img/*", http.StripPrefix("/img/", http.FileServer(http.Dir(cfg.ImageDir))))
	} else {
		slog.Default().Debug(LogMsgStaticDisabled)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(AuthMiddleware(cfg.APIKey, cfg.TrustedProxies, detector))

		r.Get("/stages", deps.Tables.HandleGetStages)
		r.Get("/table", deps.Tables.HandleGetTable)

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", deps.Tables.HandleGetSettings)
			r.Put("/", deps.Tables.HandlePutSettings)
		})

		r.Route("/cashables", func(r chi.Router) {
			r.Get("/", deps.Cashables.HandleGetSummary)
			r.Post("/sum", deps.Cashables.HandleSum)
			r.Put("/{price}", deps.Cashables.HandlePutQuantity)
		})
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func isQuietPath(path string) bool {
	return slices.ContainsFunc(quietPaths, func(p string) bool {
		return strings.HasPrefix(path, p)
	})
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}
		start := time.Now()

		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header, len(r.Header))
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Handler returns the router, for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
