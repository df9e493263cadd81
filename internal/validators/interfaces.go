// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks input before it reaches the store.
//
// A Validator is handed a value and, optionally, the names of the fields to
// check; without names a default set for the value's type is checked.
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally restricts
	// validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
