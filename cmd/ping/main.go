// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package main contains ping main function to start the ping service.
package main

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"

	"github.com/absmach/traceware/internal/env"
	twlog "github.com/absmach/traceware/logger"
	"github.com/absmach/traceware/ping"
	"github.com/absmach/traceware/ping/api"
	"github.com/absmach/traceware/ping/middleware"
	"github.com/absmach/traceware/pkg/prometheus"
	"github.com/absmach/traceware/pkg/server"
	httpserver "github.com/absmach/traceware/pkg/server/http"
	"github.com/absmach/traceware/pkg/tracing"
	"github.com/absmach/traceware/pkg/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	svcName        = "ping"
	envPrefixHTTP  = "TW_PING_HTTP_"
	defSvcHTTPPort = "9100"
)

type config struct {
	LogLevel   string  `env:"TW_PING_LOG_LEVEL"   envDefault:"info"`
	OTLPURL    url.URL `env:"TW_OTLP_URL"         envDefault:"http://localhost:4318/v1/traces"`
	InstanceID string  `env:"TW_PING_INSTANCE_ID" envDefault:""`
	TraceRatio float64 `env:"TW_TRACE_RATIO"      envDefault:"1.0"`
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(ctx)

	cfg := config{}
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("failed to load %s configuration : %s", svcName, err)
	}

	logger, err := twlog.New(os.Stdout, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %s", err)
	}

	var exitCode int
	defer twlog.ExitWithError(&exitCode)

	if cfg.InstanceID == "" {
		if cfg.InstanceID, err = uuid.New().ID(); err != nil {
			logger.Error(fmt.Sprintf("failed to generate instanceID: %s", err))
			exitCode = 1
			return
		}
	}

	tp, err := tracing.NewProvider(ctx, svcName, cfg.OTLPURL, cfg.InstanceID, cfg.TraceRatio)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to init tracer provider: %s", err))
		exitCode = 1
		return
	}
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("error shutting down tracer provider: %s", err))
		}
	}()
	tracer := tp.Tracer(svcName)

	svc := ping.New()
	svc = middleware.LoggingMiddleware(svc, logger)
	counter, latency := prometheus.MakeMetrics(svcName, "api")
	svc = middleware.MetricsMiddleware(svc, counter, latency)
	svc = middleware.Tracing(svc, tracer)

	httpServerConfig := server.Config{Port: defSvcHTTPPort}
	if err := env.Parse(&httpServerConfig, env.Options{Prefix: envPrefixHTTP}); err != nil {
		logger.Error(fmt.Sprintf("failed to load %s HTTP server configuration : %s", svcName, err))
		exitCode = 1
		return
	}

	hs := httpserver.NewServer(ctx, cancel, svcName, httpServerConfig, api.MakeHandler(svc, logger, svcName, cfg.InstanceID), logger)

	g.Go(func() error {
		return hs.Start()
	})

	g.Go(func() error {
		return server.StopSignalHandler(ctx, cancel, logger, svcName, hs)
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("%s service terminated: %s", svcName, err))
	}
}
