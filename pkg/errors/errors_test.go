// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package errors_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/absmach/traceware/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	err0 = errors.New("failed to decode request")
	err1 = errors.New("malformed entity")
	err2 = errors.New("unexpected end of JSON input")
)

func TestWrap(t *testing.T) {
	cases := []struct {
		desc      string
		wrapper   error
		err       error
		contained error
	}{
		{
			desc:      "wrap error with wrapper",
			wrapper:   err0,
			err:       err1,
			contained: err1,
		},
		{
			desc:      "wrap nil with wrapper",
			wrapper:   err0,
			err:       nil,
			contained: nil,
		},
		{
			desc:      "double wrap keeps the innermost error",
			wrapper:   err0,
			err:       errors.Wrap(err1, err2),
			contained: err2,
		},
	}

	for _, tc := range cases {
		wrapped := errors.Wrap(tc.wrapper, tc.err)
		if tc.contained != nil {
			assert.True(t, errors.Contains(wrapped, tc.contained), fmt.Sprintf("%s: expected %v to contain %v", tc.desc, wrapped, tc.contained))
		}
		assert.True(t, errors.Contains(wrapped, tc.wrapper), fmt.Sprintf("%s: expected %v to contain wrapper %v", tc.desc, wrapped, tc.wrapper))
	}
}

func TestUnwrap(t *testing.T) {
	wrapper, err := errors.Unwrap(errors.Wrap(err0, err1))
	assert.True(t, errors.Contains(wrapper, err0), fmt.Sprintf("expected wrapper %v got %v", err0, wrapper))
	assert.True(t, errors.Contains(err, err1), fmt.Sprintf("expected error %v got %v", err1, err))
}

func TestMarshalJSON(t *testing.T) {
	wrapped, ok := errors.Wrap(err0, err1).(errors.Error)
	require.True(t, ok, "expected wrapped error to implement errors.Error")

	data, err := json.Marshal(wrapped)
	require.Nil(t, err, fmt.Sprintf("unexpected error %v", err))

	var body map[string]string
	require.Nil(t, json.Unmarshal(data, &body), "expected marshaled error to be valid JSON")
	assert.Equal(t, err0.Msg(), body["message"], fmt.Sprintf("expected message %q got %q", err0.Msg(), body["message"]))
	assert.Equal(t, err1.Msg(), body["error"], fmt.Sprintf("expected error %q got %q", err1.Msg(), body["error"]))
}
