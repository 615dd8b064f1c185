// Package controller contains HTTP middlewares and helper handlers used by
// the API server.
//
// Provided middlewares:
//   - WithCORS: permissive CORS headers and OPTIONS preflight handling.
//   - WithLogger: request-scoped logger and request ID plus an access log line.
//
// Provided helpers:
//   - PprofMux: a ServeMux exposing net/http/pprof handlers.
package controller
