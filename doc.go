// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package traceware provides HTTP middleware that connects a request pipeline
// to OpenTelemetry distributed tracing. It decodes the W3C trace-context
// header from incoming requests, opens one server span per request linked to
// the decoded parent, attaches standard HTTP attributes, and leaves the
// wrapped handler's behavior otherwise unchanged.
package traceware
