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
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/Jackpot_Go/internal/eventlog"
	"github.com/osse101/Jackpot_Go/internal/handler"
	"github.com/osse101/Jackpot_Go/internal/identity"
	"github.com/osse101/Jackpot_Go/internal/jackpot"
	"github.com/osse101/Jackpot_Go/internal/logger"
	"github.com/osse101/Jackpot_Go/internal/metrics"
	"github.com/osse101/Jackpot_Go/internal/sse"
)

type Server struct {
	httpServer *http.Server
	deps       Deps
}

// Deps are the collaborators the routes are built from
type Deps struct {
	Tokens         TokenVerifier
	TrustedProxies []string
	Store          handler.HealthChecker
	Jackpot        jackpot.Service
	// Feed serves the live round stream when set
	Feed *sse.Hub
	// Journal serves round history when set
	Journal eventlog.Service
}

// NewServer creates a new Server instance
func NewServer(port int, deps Deps) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           NewRouter(deps),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		deps: deps,
	}
}

// NewRouter builds the HTTP routes and middleware stack
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()
	tokens, trustedProxies := deps.Tokens, deps.TrustedProxies
	store, jackpotService := deps.Store, deps.Jackpot

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(tokens, trustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(store))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/admin", func(r chi.Router) {
			r.Post("/initialize", handler.HandleInitialize(jackpotService))
			r.Post("/ledger/credit", handler.HandleCredit(jackpotService))
		})

		jackpotHandler := handler.NewJackpotHandler(jackpotService)
		r.Route("/jackpot", func(r chi.Router) {
			r.Get("/config", jackpotHandler.HandleGetConfig)
			if deps.Feed != nil {
				r.Get("/stream", sse.Handler(deps.Feed))
			}
			if deps.Journal != nil {
				r.Get("/events", handler.HandleListEvents(deps.Journal))
			}

			r.Route("/rounds", func(r chi.Router) {
				r.Get("/", jackpotHandler.HandleListRounds)
				r.Post("/", jackpotHandler.HandleCreateRound)
				r.Get("/current", jackpotHandler.HandleGetCurrentRound)

				r.Route("/{round}", func(r chi.Router) {
					r.Get("/", jackpotHandler.HandleGetRound)
					r.Post("/join", jackpotHandler.HandleJoinRound)
					r.Post("/select-winner", jackpotHandler.HandleSelectWinner)
					r.Post("/claim", jackpotHandler.HandleClaimReward)
					r.Post("/sweep", jackpotHandler.HandleSweepFee)
					r.Post("/expire", jackpotHandler.HandleExpireRound)
					r.Get("/verify", jackpotHandler.HandleVerifyDraw)
				})
			})
		})

		r.Route("/ledger", func(r chi.Router) {
			r.Get("/balance", handler.HandleGetBalance(jackpotService))
			r.Get("/transfers", handler.HandleListTransfers(jackpotService))
		})
	})

	// Swagger documentation
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

func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (rw *responseWriter) Unwrap() http.ResponseWriter { return rw.ResponseWriter }

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
		if caller, ok := identity.CallerFromContext(ctx); ok {
			log = log.With("caller", caller)
		}

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

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
	slog.Default().Info(LogMsgServerStopping, "addr", s.httpServer.Addr)
	return s.httpServer.Shutdown(ctx)
}
