// Package http builds the request pipeline every server shares.
//
// The pipeline mounts a [RouteProvider]'s routes under /api and wraps them in
// cross-cutting middleware: request tracing, access logging, a per-request
// deadline and error handling. Failures reach the [ErrorFormatter] either by a
// route handler returning an error through [Func], by calling [Fail]
// directly, or by panicking. The formatter answers with a JSON 500 body whose
// stack trace is present only outside production.
package http
