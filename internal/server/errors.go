// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errInvalidTLSMaterial = errors.New("invalid TLS key pair in configuration")
)
