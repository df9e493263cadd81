// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrRouteNotFound is reported in the body of a 404 for a path no route
	// matches.
	ErrRouteNotFound = errors.New("route not found")

	// ErrMethodNotAllowed is reported in the body of a 405 for a known path
	// requested with an unregistered method.
	ErrMethodNotAllowed = errors.New("method not allowed")
)
