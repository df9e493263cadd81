// Package store persists items.
//
// Items live in PostgreSQL (pgx driver) or SQLite when a DSN is configured and
// in memory otherwise. SQL is built with squirrel so the same repository
// serves both dialects; only the placeholder format differs.
package store
