// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package middleware

import (
	"context"

	"github.com/absmach/traceware/ping"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var _ ping.Service = (*tracingMiddleware)(nil)

type tracingMiddleware struct {
	tracer  trace.Tracer
	service ping.Service
}

// Tracing returns a ping service with tracing capabilities. Spans created
// here attach as children of the request span opened by the HTTP middleware.
func Tracing(service ping.Service, tracer trace.Tracer) ping.Service {
	return &tracingMiddleware{
		tracer:  tracer,
		service: service,
	}
}

// Ping traces the "Ping" operation of the wrapped ping.Service.
func (tm *tracingMiddleware) Ping(ctx context.Context, message string) (string, error) {
	ctx, span := tm.tracer.Start(ctx, "svc_ping", trace.WithAttributes(attribute.Int("message_size", len(message))))
	defer span.End()

	return tm.service.Ping(ctx, message)
}
