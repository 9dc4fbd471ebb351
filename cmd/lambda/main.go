package main

import (
	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	"interaction-gate/internal/config"
	"interaction-gate/internal/deferred"
	interactions "interaction-gate/internal/lambda"
	"interaction-gate/internal/metrics"
	"interaction-gate/internal/upstream"
)

func main() {
	cfg := config.New()
	defer cfg.Logger.Sync()

	if err := cfg.Load(); err != nil {
		cfg.Logger.Fatal("invalid configuration", zap.Error(err))
	}
	if err := cfg.RequireNextStage(); err != nil {
		cfg.Logger.Fatal("invalid configuration", zap.Error(err))
	}

	var stage interactions.Stage
	if cfg.UpstreamUrl != "" {
		stage = upstream.New(cfg)
	} else {
		q := deferred.New(cfg)
		if err := q.Connect(); err != nil {
			cfg.Logger.Fatal("could not connect to queue", zap.Error(err))
		}
		stage = q
	}

	// No scrape endpoint in a function; outcomes are counted on the HTTP gate only
	lambda.Start(interactions.New(cfg, stage, metrics.Nop).Handle)
}
