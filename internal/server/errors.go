// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoHandler is returned by NewServer without an HTTP handler to serve.
	errNoHandler = errors.New("server: no http handler to serve")

	// errNoAddress is returned by NewServer when the listen address is empty.
	errNoAddress = errors.New("server: listen address is empty")
)
