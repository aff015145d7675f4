// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package api

type pingReq struct {
	Message string `json:"message"`
}
