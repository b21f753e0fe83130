// Package server holds the HTTP server configuration.
//
// The start command owns the Fiber application; this package only defines the
// settings it reads: the listen port and the API key that protects every route
// except the Swagger UI and /metrics.
package server
