package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"interaction-gate/httpserver"
	"interaction-gate/internal/app"
	"interaction-gate/internal/config"
	"interaction-gate/internal/deferred"
	"interaction-gate/internal/upstream"
)

func main() {
	cfg := config.New()
	defer cfg.Logger.Sync()

	if err := cfg.Load(); err != nil {
		cfg.Logger.Fatal("invalid configuration", zap.Error(err))
	}

	next, err := nextStage(cfg)
	if err != nil {
		cfg.Logger.Fatal("could not build next stage", zap.Error(err))
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := httpserver.New(cfg, next, reg).Run(ctx); err != nil {
		cfg.Logger.Fatal("server failed", zap.Error(err))
	}
}

func nextStage(cfg *config.Config) (http.Handler, error) {
	switch {
	case cfg.UpstreamUrl != "":
		return upstream.New(cfg), nil
	case cfg.SqsUrl != "":
		q := deferred.New(cfg)
		return q, q.Connect()
	default:
		return app.New(cfg), nil
	}
}
