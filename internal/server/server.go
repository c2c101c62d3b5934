package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/Reforge_Go/internal/handler"
	"github.com/osse101/Reforge_Go/internal/i18n"
	"github.com/osse101/Reforge_Go/internal/inventory"
	"github.com/osse101/Reforge_Go/internal/logger"
	"github.com/osse101/Reforge_Go/internal/metrics"
	"github.com/osse101/Reforge_Go/internal/reforge"
)

// Dependencies are the components the routes are built from
type Dependencies struct {
	Reforge   reforge.Service
	Catalog   *i18n.Catalog
	Config    handler.ConfigManager
	Inventory inventory.Gateway
	Economy   handler.Depositor
	// Store is nil for backends without a connectivity check
	Store handler.Pinger

	ServiceName string
	Version     string
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, trustedProxies []string, deps Dependencies) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           NewRouter(apiKey, trustedProxies, deps),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the route tree. Admin routes require the API key.
func NewRouter(apiKey string, trustedProxies []string, deps Dependencies) chi.Router {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	guard := NewClientGuard(DefaultGuardLimits())

	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(trustedProxies, guard))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.Store))
	r.Get("/version", handler.HandleVersion(deps.ServiceName, deps.Version))
	r.Handle("/metrics", promhttp.Handler())

	r.Route(APIPrefix, func(r chi.Router) {
		r.Route("/reforge", func(r chi.Router) {
			r.With(AttemptLimitMiddleware(trustedProxies, guard)).
				Post("/attempt", handler.HandleAttempt(deps.Reforge, deps.Catalog, deps.Config))
			r.Get("/preview", handler.HandlePreview(deps.Reforge, deps.Catalog, deps.Config))
			r.Get("/slots", handler.HandleSlots(deps.Reforge, deps.Catalog, deps.Config))
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(AuthMiddleware(apiKey, trustedProxies, guard))

			r.Route("/config", func(r chi.Router) {
				r.Get("/", handler.HandleGetConfig(deps.Config))
				r.Post("/reload", handler.HandleReloadConfig(deps.Config, deps.Catalog))
				r.Patch("/general", handler.HandleUpdateGeneral(deps.Config, deps.Catalog))

				r.Put("/levels/{level}", handler.HandleUpdateLevel(deps.Config, deps.Catalog))
				r.Delete("/levels/{level}", handler.HandleDeleteLevel(deps.Config, deps.Catalog))

				r.Post("/patterns/{list}", handler.HandleAddPattern(deps.Config, deps.Catalog))
				r.Put("/patterns/{list}", handler.HandleReplacePattern(deps.Config, deps.Catalog))
				r.Delete("/patterns/{list}", handler.HandleRemovePattern(deps.Config, deps.Catalog))

				r.Post("/recipes", handler.HandleAddRecipe(deps.Config))
				r.Put("/recipes/{item}", handler.HandlePutRecipe(deps.Config, deps.Catalog))
				r.Delete("/recipes/{item}", handler.HandleDeleteRecipe(deps.Config, deps.Catalog))

				r.Put("/names/{item}", handler.HandlePutItemName(deps.Config, deps.Catalog))
			})

			r.Route("/players/{player_id}", func(r chi.Router) {
				r.Put("/slots/{slot}", handler.HandleSetSlot(deps.Inventory))
				r.Post("/deposit", handler.HandleDeposit(deps.Economy))
			})
		})
	})

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

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		for _, prefix := range QuietPaths {
			if strings.HasPrefix(r.URL.Path, prefix) {
				next.ServeHTTP(w, r)
				return
			}
		}

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

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
