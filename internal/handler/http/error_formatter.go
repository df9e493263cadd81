// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-bootstrap/internal/config"
	"github.com/MKhiriev/go-bootstrap/internal/logger"
	"github.com/MKhiriev/go-bootstrap/internal/utils"
	"github.com/MKhiriev/go-bootstrap/models"
	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// ErrorStage handles a request failure. Stages form a chain: a stage that
// cannot deal with the failure hands it to the next one.
type ErrorStage func(w http.ResponseWriter, r *http.Request, err error)

// headerWriter is implemented by writers that know whether the response has
// been committed.
type headerWriter interface {
	HeaderWritten() bool
}

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// ErrorFormatter turns a request failure into a 500 JSON response of the form
// {"message": ..., "stack": ...}. The stack is omitted in production.
type ErrorFormatter struct {
	production bool
	logger     *logger.Logger
}

// NewErrorFormatter reads the production flag from app once; the formatter
// does not observe later config changes.
func NewErrorFormatter(app config.App, logger *logger.Logger) *ErrorFormatter {
	return &ErrorFormatter{
		production: app.IsProduction(),
		logger:     logger,
	}
}

// ServeError answers the failure with a 500 unless the response has already
// started, in which case the failure is passed to next untouched.
func (f *ErrorFormatter) ServeError(w http.ResponseWriter, r *http.Request, err error, next ErrorStage) {
	if hw, ok := w.(headerWriter); ok && hw.HeaderWritten() {
		next(w, r, err)
		return
	}

	log := f.requestLogger(r)
	log.Error().Err(err).Str("uri", r.RequestURI).Msg("request failed")

	body := models.ErrorResponse{Message: err.Error()}
	if !f.production {
		body.Stack = diagnosticTrace(err)
	}

	if _, werr := utils.WriteJSON(w, body, http.StatusInternalServerError); werr != nil {
		log.Warn().Err(werr).Msg("error writing error response")
	}
}

// Stage binds next and returns the formatter as a stage of its own.
func (f *ErrorFormatter) Stage(next ErrorStage) ErrorStage {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		f.ServeError(w, r, err, next)
	}
}

func (f *ErrorFormatter) requestLogger(r *http.Request) *logger.Logger {
	if l := logger.FromRequest(r); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return f.logger
}

// abortResponse is the last stage. The response is already on the wire, so
// the only thing left is to drop the connection.
func abortResponse(_ http.ResponseWriter, r *http.Request, err error) {
	logger.FromRequest(r).Error().Err(err).Msg("request failed after response started, aborting")
	panic(http.ErrAbortHandler)
}

// diagnosticTrace renders the failure's message followed by the stack it
// carries: the goroutine stack of a recovered panic, or the frames recorded
// by github.com/pkg/errors.
func diagnosticTrace(err error) string {
	var rec *recoveredPanic
	if errors.As(err, &rec) {
		return err.Error() + "\n" + string(rec.stack)
	}

	var st stackTracer
	if errors.As(err, &st) {
		return fmt.Sprintf("%s%+v", err.Error(), st.StackTrace())
	}

	return err.Error()
}
