// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package api

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-bootstrap/internal/service"
	"github.com/MKhiriev/go-bootstrap/internal/store"
	"github.com/MKhiriev/go-bootstrap/internal/utils"
	"github.com/MKhiriev/go-bootstrap/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,

	store.ErrItemNotFound:      http.StatusNotFound,
	store.ErrItemAlreadyExists: http.StatusConflict,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// respondError answers known client errors itself. Anything else is returned
// so the pipeline renders it as a failure.
func respondError(w http.ResponseWriter, err error) error {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		return err
	}

	_, writeErr := utils.WriteJSON(w, models.ErrorResponse{Message: err.Error()}, status)
	return writeErr
}
