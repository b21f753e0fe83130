// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - Auth: API key validation (X-API-Key header or api_key query parameter).
//   - RayID: a request id per request, stored in the context and echoed in the
//     X-Ray-ID response header for tracing.
//
// RayID is registered first so every log line, including auth rejections, carries it.
package middleware
