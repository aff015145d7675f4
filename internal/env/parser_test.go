// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package env

import (
	"fmt"
	"testing"

	"github.com/absmach/traceware/pkg/server"
	"github.com/stretchr/testify/assert"
)

func TestParseServerConfig(t *testing.T) {
	cases := []struct {
		desc           string
		config         *server.Config
		expectedConfig *server.Config
		options        []Options
	}{
		{
			desc:   "parsing without prefix",
			config: &server.Config{},
			expectedConfig: &server.Config{
				Host:     "localhost",
				Port:     "8080",
				CertFile: "cert",
				KeyFile:  "key",
			},
			options: []Options{
				{
					Environment: map[string]string{
						"HOST":        "localhost",
						"PORT":        "8080",
						"SERVER_CERT": "cert",
						"SERVER_KEY":  "key",
					},
				},
			},
		},
		{
			desc:   "parsing with prefix",
			config: &server.Config{},
			expectedConfig: &server.Config{
				Host:     "localhost",
				Port:     "9100",
				CertFile: "cert",
				KeyFile:  "key",
			},
			options: []Options{
				{
					Environment: map[string]string{
						"TW_PING_HTTP_HOST":        "localhost",
						"TW_PING_HTTP_PORT":        "9100",
						"TW_PING_HTTP_SERVER_CERT": "cert",
						"TW_PING_HTTP_SERVER_KEY":  "key",
					},
					Prefix: "TW_PING_HTTP_",
				},
			},
		},
	}

	for _, tc := range cases {
		err := Parse(tc.config, tc.options...)
		assert.Nil(t, err, fmt.Sprintf("%s: unexpected error %v", tc.desc, err))
		assert.Equal(t, tc.expectedConfig, tc.config, fmt.Sprintf("%s: expected %v got %v", tc.desc, tc.expectedConfig, tc.config))
	}
}
