// Package server binds and runs the HTTP server.
//
// A [Manager] builds the request pipeline around a route provider, binds the
// listening socket and, once bound, kicks off the seed hook and registers the
// running server with the shutdown coordinator. The returned [Handle] is the
// only way to stop the server; stopping is idempotent and awaitable.
package server
