package http

import (
	"context"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-bootstrap/internal/logger"
	pkgerrors "github.com/pkg/errors"
)

// HandlerFunc is a route handler that reports failure by returning an error.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Func adapts fn to an http.HandlerFunc. A returned error goes to [Fail].
func Func(fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			Fail(w, r, err)
		}
	}
}

// Fail hands err to the error handling of the pipeline serving r. The call
// returns once the failure has been answered. An err without a recorded stack
// gets one here.
//
// Outside the pipeline Fail writes a bare 500.
func Fail(w http.ResponseWriter, r *http.Request, err error) {
	var st stackTracer
	if !pkgerrors.As(err, &st) {
		err = pkgerrors.WithStack(err)
	}

	scope, ok := r.Context().Value(errorScopeKey{}).(*errorScope)
	if !ok {
		logger.FromRequest(r).Error().Err(err).Msg("request failed outside the pipeline")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	scope.stage(scope.w, r, err)
}

type errorScopeKey struct{}

// errorScope is what Fail needs to reach the pipeline's error handling from
// inside a route handler.
type errorScope struct {
	w     *responseWriter
	stage ErrorStage
}

// recoveredPanic is a panic caught by withErrorHandling.
type recoveredPanic struct {
	value any
	stack []byte
}

func (p *recoveredPanic) Error() string {
	if err, ok := p.value.(error); ok {
		return err.Error()
	}
	return fmt.Sprint(p.value)
}

func (p *recoveredPanic) Unwrap() error {
	err, _ := p.value.(error)
	return err
}

// withErrorHandling routes request failures to the formatter. It must sit
// after every middleware that may still write to the response.
func (h *Handler) withErrorHandling(next http.Handler) http.Handler {
	stage := h.formatter.Stage(abortResponse)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := &responseWriter{ResponseWriter: w}
		scope := &errorScope{w: rw, stage: stage}
		r = r.WithContext(context.WithValue(r.Context(), errorScopeKey{}, scope))

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			stage(rw, r, &recoveredPanic{value: rec, stack: debug.Stack()})
		}()

		next.ServeHTTP(rw, r)
	})
}
