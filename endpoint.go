// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package traceware

import (
	"context"
	"strconv"

	"github.com/go-kit/kit/endpoint"
	"go.opentelemetry.io/otel/attribute"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
)

// TraceEndpoint returns a go-kit endpoint middleware that traces the
// decorated endpoint as a child of the span found in the request context.
// The endpoint's response and error are propagated unchanged. On success the
// response status code is attached as a span attribute when the response
// implements Response; on error no status attribute is recorded.
func TraceEndpoint(tracer trace.Tracer, op string, attrs ...attribute.KeyValue) endpoint.Middleware {
	return func(next endpoint.Endpoint) endpoint.Endpoint {
		return func(ctx context.Context, request interface{}) (interface{}, error) {
			ctx, span := tracer.Start(ctx, op, trace.WithAttributes(attrs...))
			defer span.End()

			response, err := next(ctx, request)
			if err != nil {
				return response, err
			}

			if ar, ok := response.(Response); ok {
				span.SetAttributes(semconv.HTTPResponseStatusCodeKey.String(strconv.Itoa(ar.Code())))
			}

			return response, nil
		}
	}
}
