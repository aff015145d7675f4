// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package traceware

import (
	"encoding/json"
	"net/http"
)

const (
	version     = "0.1.0"
	contentType = "application/health+json"
	svcStatus   = "pass"
)

// HealthInfo contains the health check endpoint response.
type HealthInfo struct {
	// Status contains service status.
	Status string `json:"status"`

	// Version contains service current version value.
	Version string `json:"version"`

	// Service contains service name.
	Service string `json:"service"`

	// InstanceID contains the ID of the current service instance.
	InstanceID string `json:"instance_id"`
}

// Health exposes an HTTP handler for retrieving service health.
func Health(service, instanceID string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		res := HealthInfo{
			Status:     svcStatus,
			Version:    version,
			Service:    service,
			InstanceID: instanceID,
		}

		w.Header().Set("Content-Type", contentType)
		if err := json.NewEncoder(w).Encode(res); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}
