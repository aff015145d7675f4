// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package logger_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/absmach/traceware/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	cases := []struct {
		desc  string
		level string
		ok    bool
	}{
		{
			desc:  "valid info level",
			level: "info",
			ok:    true,
		},
		{
			desc:  "valid debug level",
			level: "debug",
			ok:    true,
		},
		{
			desc:  "valid uppercase level",
			level: "WARN",
			ok:    true,
		},
		{
			desc:  "invalid level",
			level: "loud",
			ok:    false,
		},
	}

	for _, tc := range cases {
		_, err := logger.New(&bytes.Buffer{}, tc.level)
		if tc.ok {
			assert.Nil(t, err, fmt.Sprintf("%s: unexpected error %v", tc.desc, err))
			continue
		}
		assert.NotNil(t, err, fmt.Sprintf("%s: expected error got nil", tc.desc))
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.New(&buf, "warn")
	require.Nil(t, err, fmt.Sprintf("unexpected error %v", err))

	log.Info("dropped")
	assert.Empty(t, buf.String(), "expected info record to be dropped at warn level")

	log.Warn("kept", "reason", "test")
	var record map[string]any
	require.Nil(t, json.Unmarshal(buf.Bytes(), &record), "expected a JSON log record")
	assert.Equal(t, "kept", record["msg"], fmt.Sprintf("expected message kept got %v", record["msg"]))
	assert.Equal(t, "test", record["reason"], fmt.Sprintf("expected reason test got %v", record["reason"]))
}
