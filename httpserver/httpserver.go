package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"interaction-gate/internal/config"
	"interaction-gate/internal/gate"
	"interaction-gate/internal/metrics"
)

const (
	loggerName = "httpserver"

	HealthEndpoint  = "/healthz"
	MetricsEndpoint = "/metrics"
)

var ShutdownTimeout = 10 * time.Second

type Server struct {
	logger *zap.Logger
	srv    *http.Server
}

// New mounts next behind the gate on the configured interactions route.
func New(cfg *config.Config, next http.Handler, reg *prometheus.Registry) *Server {
	logger := cfg.Logger.Named(loggerName)
	g := gate.New(cfg, metrics.New(reg))

	r := chi.NewRouter()
	// Order matters: assign request ID, get real IP, recover panics, then log
	r.Use(chimw.RequestID, chimw.RealIP, chimw.Recoverer, requestLogger(logger))

	r.Get(HealthEndpoint, healthz)
	r.Handle(MetricsEndpoint, metrics.Handler(reg))
	r.Method(http.MethodPost, cfg.Route, g.Wrap(next))

	return &Server{
		logger: logger,
		srv: &http.Server{
			Addr:              fmt.Sprintf(":%s", cfg.Port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      15 * time.Second,
		},
	}
}

func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Run listens until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", s.srv.Addr))
		errCh <- s.srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Info("server closed")
	return nil
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				logger.Info("request",
					zap.String("request_id", chimw.GetReqID(r.Context())),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", ww.Status()),
					zap.Int("bytes", ww.BytesWritten()),
					zap.Duration("duration", time.Since(start)),
				)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}
