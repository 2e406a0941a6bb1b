// Package server runs the HTTP server of the blog list.
//
// It owns the server lifecycle: startup, signal handling (SIGTERM, SIGINT,
// SIGQUIT) and graceful shutdown bounded by the configured timeout.
package server
