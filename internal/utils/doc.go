// Package utils provides small helpers shared across the application:
// JSON response writing, the HTTP client and id generation.
package utils
