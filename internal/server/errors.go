// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// ErrBind is returned by Manager.Start when the listening socket cannot
	// be bound. The underlying net error is wrapped alongside it.
	ErrBind = errors.New("error binding server")

	// ErrServe is reported to the shutdown coordinator as an uncaught
	// failure when the serve loop stops for any reason other than Close.
	ErrServe = errors.New("error serving requests")
)
