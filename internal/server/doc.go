// Package server provides the web interface for interactive password
// analysis.
//
// The server exposes a small JSON API plus a single embedded HTML page:
//   - GET  /         serves the analyzer page
//   - POST /analyze  evaluates a password and returns the masked report
//   - GET  /generate returns a freshly generated password
//   - GET  /healthz  reports liveness for probes
//
// The evaluated password exists only for the lifetime of the request. It is
// never logged, never stored, and the JSON response carries it in masked
// form only.
package server
