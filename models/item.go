// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Item is the sample resource served under /api/items and inserted by the
// startup seed.
type Item struct {
	// ID is a UUID string assigned on creation.
	ID string `json:"id"`

	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// CreatedAt is set by the service when the item is stored.
	CreatedAt time.Time `json:"created_at"`
}

// CreateItemRequest is the body accepted by POST /api/items.
type CreateItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
