// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package traceware

import (
	"fmt"
	"net/http"
	"strconv"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// TraceparentHeader is the standard W3C Trace Context header used to
// propagate trace information between services.
const TraceparentHeader = "traceparent"

// tracerName identifies this instrumentation library to tracer providers.
const tracerName = "github.com/absmach/traceware"

// SpanNameFormatter derives the span name from the incoming request.
type SpanNameFormatter func(r *http.Request) string

type middleware struct {
	tracer     trace.Tracer
	noop       trace.Tracer
	propagator propagation.TextMapPropagator
	fallback   Fallback
	name       SpanNameFormatter
}

// NewMiddleware returns an HTTP middleware that creates one server span per
// request. The parent span context is decoded from the traceparent header
// using the W3C trace-context codec; a missing or malformed header never
// fails the request and instead triggers the configured fallback policy.
// The wrapped handler's response and error behavior is unchanged.
func NewMiddleware(opts ...Option) func(http.Handler) http.Handler {
	m := &middleware{
		tracer:     otel.Tracer(tracerName),
		noop:       noop.NewTracerProvider().Tracer(tracerName),
		propagator: propagation.TraceContext{},
		fallback:   FallbackRoot,
		name:       defaultSpanName,
	}
	for _, opt := range opts {
		opt(m)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			// An already-active span in the request context, left by an outer
			// wrap or upstream instrumentation, takes precedence over the
			// header. Nested wraps therefore produce parent/child spans and
			// the header is decoded once.
			if !trace.SpanContextFromContext(ctx).IsValid() {
				ctx = m.propagator.Extract(ctx, propagation.HeaderCarrier(r.Header))
			}

			tracer := m.tracer
			if m.fallback == FallbackNoop && !trace.SpanContextFromContext(ctx).IsValid() {
				tracer = m.noop
			}

			ctx, span := tracer.Start(ctx, m.name(r),
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					semconv.HTTPRequestMethodKey.String(r.Method),
					semconv.URLPathKey.String(r.URL.Path),
					// The raw path stands in for the route template unless the
					// router exposes one, e.g. via RouteFormatter.
					semconv.HTTPRouteKey.String(r.URL.Path),
				),
			)
			defer span.End()

			sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}
			next.ServeHTTP(sw, r.WithContext(ctx))

			span.SetAttributes(semconv.HTTPResponseStatusCodeKey.String(strconv.Itoa(sw.code)))
		})
	}
}

func defaultSpanName(r *http.Request) string {
	return fmt.Sprintf("%s %s", r.Method, r.URL.Path)
}
