// Package shutdown coordinates draining of the server on process-level
// termination triggers.
//
// A [Coordinator] subscribes to interrupt, user-defined and terminate
// signals, to uncaught failures reported through [Coordinator.Fail] or
// [Coordinator.Recover], and to the cancellation of the context passed to
// [Coordinator.Listen] (normal exit). Every trigger runs the same shutdown
// sequence against the registered closers; the stop operation produced by
// [Once] guarantees the underlying drain runs at most once no matter how many
// triggers fire or in which order.
package shutdown
