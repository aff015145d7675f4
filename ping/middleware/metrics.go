// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package middleware

import (
	"context"
	"time"

	"github.com/absmach/traceware/ping"
	"github.com/go-kit/kit/metrics"
)

var _ ping.Service = (*metricsMiddleware)(nil)

type metricsMiddleware struct {
	counter metrics.Counter
	latency metrics.Histogram
	service ping.Service
}

// MetricsMiddleware instruments the ping service with request count and
// latency metrics.
func MetricsMiddleware(service ping.Service, counter metrics.Counter, latency metrics.Histogram) ping.Service {
	return &metricsMiddleware{
		counter: counter,
		latency: latency,
		service: service,
	}
}

func (mm *metricsMiddleware) Ping(ctx context.Context, message string) (string, error) {
	defer func(begin time.Time) {
		mm.counter.With("method", "ping").Add(1)
		mm.latency.With("method", "ping").Observe(float64(time.Since(begin).Microseconds()))
	}(time.Now())

	return mm.service.Ping(ctx, message)
}
