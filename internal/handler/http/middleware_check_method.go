// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-bootstrap/internal/logger"
	"github.com/MKhiriev/go-bootstrap/internal/utils"
	"github.com/MKhiriev/go-bootstrap/models"
)

// routeNotFound replaces chi's plain-text 404 with a JSON body so that every
// answer of the pipeline has the same shape.
func routeNotFound(w http.ResponseWriter, r *http.Request) {
	writeRoutingError(w, r, ErrRouteNotFound, http.StatusNotFound)
}

// methodNotAllowed replaces chi's empty 405.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeRoutingError(w, r, ErrMethodNotAllowed, http.StatusMethodNotAllowed)
}

func writeRoutingError(w http.ResponseWriter, r *http.Request, err error, status int) {
	if _, werr := utils.WriteJSON(w, models.ErrorResponse{Message: err.Error()}, status); werr != nil {
		logger.FromRequest(r).Warn().Err(werr).Msg("error writing routing error response")
	}
}
