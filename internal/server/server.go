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

	"github.com/curioboard/curio/internal/catalog"
	"github.com/curioboard/curio/internal/database"
	"github.com/curioboard/curio/internal/drop"
	"github.com/curioboard/curio/internal/equip"
	"github.com/curioboard/curio/internal/handler"
	"github.com/curioboard/curio/internal/logger"
	"github.com/curioboard/curio/internal/metrics"
	"github.com/curioboard/curio/internal/reaction"
	"github.com/curioboard/curio/internal/repository"
	"github.com/curioboard/curio/internal/trade"
)

type Server struct {
	httpServer *http.Server
	dbPool     database.Pool
}

// Services bundles the engine services the router exposes.
type Services struct {
	Users    repository.User
	Catalog  catalog.Service
	Drops    drop.Service
	Equip    equip.Service
	Trades   trade.Service
	Reaction reaction.Service
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, trustedProxies []string, dbPool database.Pool, svcs Services) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	r.Use(RateLimitMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		userHandler := handler.NewUserHandler(svcs.Users)
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", userHandler.HandleRegisterUser)
			r.Get("/", userHandler.HandleGetUser)
			r.Get("/inventory", userHandler.HandleGetInventory)
		})

		dropHandler := handler.NewDropHandler(svcs.Drops)
		r.Post("/drop", dropHandler.HandleAttemptDrop)

		equipHandler := handler.NewEquipHandler(svcs.Equip)
		r.Post("/equip", equipHandler.HandleEquip)
		r.Post("/unequip", equipHandler.HandleUnequip)

		tradeHandler := handler.NewTradeHandler(svcs.Trades)
		r.Route("/trade", func(r chi.Router) {
			r.Get("/", tradeHandler.HandleListTrades)
			r.Post("/", tradeHandler.HandleProposeTrade)
			r.Post("/accept", tradeHandler.HandleAcceptTrade)
			r.Post("/decline", tradeHandler.HandleDeclineTrade)
		})

		reactionHandler := handler.NewReactionHandler(svcs.Reaction)
		r.Post("/reaction", reactionHandler.HandleConsumeReaction)

		adminHandler := handler.NewAdminHandler(svcs.Catalog, svcs.Drops)
		r.Route("/admin", func(r chi.Router) {
			r.Post("/item", adminHandler.HandleCreateItem)
			r.Post("/drop", adminHandler.HandleMintDrop)
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool: dbPool,
	}
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
		statusCode:     http.StatusOK, // default status
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

		// Skip logging for health check endpoints and metrics
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
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
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
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
