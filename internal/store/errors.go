// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrItemNotFound is returned when no item has the requested id.
	ErrItemNotFound = errors.New("item was not found")

	// ErrItemAlreadyExists is returned when an item with the same id is
	// already stored.
	ErrItemAlreadyExists = errors.New("item already exists")

	// ErrUnknownDriver is returned by NewStorages for a driver it cannot
	// connect with.
	ErrUnknownDriver = errors.New("unknown database driver")
)

// Low-level database operation errors, wrapped together with the driver
// error.
var (
	ErrBuildingSQLQuery   = errors.New("error building sql query")
	ErrExecutingQuery     = errors.New("error executing sql query")
	ErrExecutingStatement = errors.New("failed to execute statement")
	ErrScanningRow        = errors.New("failed to scan item row")
	ErrScanningRows       = errors.New("failed to scan item rows")
)
