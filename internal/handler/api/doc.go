// Package api holds the routes mounted under /api: the items resource,
// version and health endpoints, and a failing route outside production.
package api
