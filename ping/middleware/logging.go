// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/absmach/traceware/ping"
)

var _ ping.Service = (*loggingMiddleware)(nil)

type loggingMiddleware struct {
	logger  *slog.Logger
	service ping.Service
}

// LoggingMiddleware adds logging facilities to the ping service.
func LoggingMiddleware(service ping.Service, logger *slog.Logger) ping.Service {
	return &loggingMiddleware{
		logger:  logger,
		service: service,
	}
}

func (lm *loggingMiddleware) Ping(ctx context.Context, message string) (greeting string, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.Int("message_size", len(message)),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Ping failed", args...)
			return
		}
		lm.logger.Info("Ping completed successfully", args...)
	}(time.Now())

	return lm.service.Ping(ctx, message)
}
