// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package ping contains a minimal echo service used to demonstrate wiring of
// the traceware middleware stack.
package ping

import (
	"context"
	"fmt"

	"github.com/absmach/traceware/pkg/errors"
)

// ErrMalformedEntity indicates a malformed request payload.
var ErrMalformedEntity = errors.New("malformed entity")

// Service specifies an API for the ping service.
type Service interface {
	// Ping echoes the given message back to the caller.
	Ping(ctx context.Context, message string) (string, error)
}

var _ Service = (*pingService)(nil)

type pingService struct{}

// New returns a new ping service.
func New() Service {
	return &pingService{}
}

func (svc *pingService) Ping(_ context.Context, message string) (string, error) {
	if message == "" {
		return "", errors.Wrap(ErrMalformedEntity, errors.New("missing message"))
	}

	return fmt.Sprintf("pong: %s", message), nil
}
