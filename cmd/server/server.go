package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/HinduAI/Nara/internal/config"
	"github.com/HinduAI/Nara/internal/infrastructure/logger"
	"github.com/HinduAI/Nara/internal/infrastructure/observability"
	"github.com/HinduAI/Nara/internal/interfaces/httpserver"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	_ "net/http/pprof"
)

type Application struct {
	httpServer *httpserver.HTTPServer
}

func init() {
	logger.GetLogger()
	cfg, err := config.Load()
	if err != nil {
		return
	}
	if _, err := logger.New(cfg.LogLevel, cfg.LogFormat); err != nil {
		log := logger.GetLogger()
		log.Warn().Err(err).Msg("invalid log configuration, keeping defaults")
	}
}

func (application *Application) Start(cfg *config.Config) {
	var eg errgroup.Group
	eg.Go(func() error {
		return http.ListenAndServe("0.0.0.0:6060", nil)
	})
	eg.Go(func() error {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		return http.ListenAndServe(fmt.Sprintf("0.0.0.0:%d", cfg.MetricsPort), mux)
	})
	eg.Go(func() error {
		return application.httpServer.Run()
	})

	if err := eg.Wait(); err != nil {
		panic(err)
	}
}

func main() {
	ctx := context.Background()
	log := logger.GetLogger()

	cfg := config.GetGlobal()
	if cfg == nil {
		log.Fatal().Msg("config not loaded")
	}

	application, err := CreateApplication()
	if err != nil {
		log.Fatal().Err(err).Msg("create application")
	}

	otelShutdown, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("initialize observability")
	} else {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := otelShutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("shutdown telemetry")
			}
		}()
	}

	application.Start(cfg)
}
