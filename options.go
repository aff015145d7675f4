// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package traceware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// Fallback selects the span behavior for requests that carry no usable trace
// parent.
type Fallback int

const (
	// FallbackRoot starts a span rooted at a freshly generated trace
	// identity. This is the default.
	FallbackRoot Fallback = iota

	// FallbackNoop suppresses tracing for requests without a parent.
	FallbackNoop
)

// Option configures the middleware returned by NewMiddleware.
type Option func(*middleware)

// WithTracerProvider sets the tracer provider used to create request spans.
// The global OpenTelemetry provider is used by default.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(m *middleware) {
		m.tracer = tp.Tracer(tracerName)
	}
}

// WithPropagator sets the propagator used to decode the incoming trace
// context. The W3C trace-context propagator is used by default.
func WithPropagator(p propagation.TextMapPropagator) Option {
	return func(m *middleware) {
		m.propagator = p
	}
}

// WithFallback sets the policy applied when a request carries no valid
// traceparent header.
func WithFallback(f Fallback) Option {
	return func(m *middleware) {
		m.fallback = f
	}
}

// WithSpanNameFormatter overrides the span naming function. The default
// names spans "METHOD /path".
func WithSpanNameFormatter(f SpanNameFormatter) Option {
	return func(m *middleware) {
		m.name = f
	}
}

// RouteFormatter names spans after the chi route pattern, keeping span names
// low-cardinality. The pattern is resolved only when the middleware is
// mounted per route, e.g. with mux.With(...); otherwise the raw path is used.
func RouteFormatter(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return r.Method + " " + pattern
		}
	}

	return defaultSpanName(r)
}
