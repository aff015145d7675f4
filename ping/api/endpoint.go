// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"

	"github.com/absmach/traceware/ping"
	"github.com/go-kit/kit/endpoint"
)

func pingEndpoint(svc ping.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(pingReq)

		greeting, err := svc.Ping(ctx, req.Message)
		if err != nil {
			return nil, err
		}

		return pingRes{Greeting: greeting}, nil
	}
}
