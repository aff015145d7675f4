// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/absmach/traceware"
	"github.com/absmach/traceware/ping"
	"github.com/absmach/traceware/pkg/errors"
	"github.com/go-chi/chi/v5"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
)

// ContentType represents JSON content type.
const ContentType = "application/json"

// MakeHandler returns an HTTP API handler with health check and metrics.
func MakeHandler(svc ping.Service, logger *slog.Logger, svcName, instanceID string) http.Handler {
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(encodeError(logger)),
	}

	tracer := otel.Tracer("github.com/absmach/traceware/ping")
	traced := traceware.NewMiddleware(traceware.WithSpanNameFormatter(traceware.RouteFormatter))

	mux := chi.NewRouter()

	mux.With(traced).Post("/ping", kithttp.NewServer(
		traceware.TraceEndpoint(tracer, "ping")(pingEndpoint(svc)),
		decodePingReq,
		encodeResponse,
		opts...,
	).ServeHTTP)

	mux.Get("/health", traceware.Health(svcName, instanceID))
	mux.Handle("/metrics", promhttp.Handler())

	return mux
}

func decodePingReq(_ context.Context, r *http.Request) (interface{}, error) {
	var req pingReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errors.Wrap(ping.ErrMalformedEntity, err)
	}

	return req, nil
}

func encodeResponse(_ context.Context, w http.ResponseWriter, response interface{}) error {
	if ar, ok := response.(traceware.Response); ok {
		for k, v := range ar.Headers() {
			w.Header().Set(k, v)
		}
		w.Header().Set("Content-Type", ContentType)
		w.WriteHeader(ar.Code())

		if ar.Empty() {
			return nil
		}
	}

	return json.NewEncoder(w).Encode(response)
}

func encodeError(logger *slog.Logger) kithttp.ErrorEncoder {
	return func(_ context.Context, err error, w http.ResponseWriter) {
		w.Header().Set("Content-Type", ContentType)
		switch {
		case errors.Contains(err, ping.ErrMalformedEntity):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}

		logger.Warn(fmt.Sprintf("request failed: %s", err))

		if errorVal, ok := err.(errors.Error); ok {
			if err := json.NewEncoder(w).Encode(errorVal); err != nil {
				logger.Error(fmt.Sprintf("failed to encode error response: %s", err))
			}
		}
	}
}
