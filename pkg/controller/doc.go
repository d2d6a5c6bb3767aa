// Package controller contains HTTP middlewares and helper handlers used by the API server.
//
// Provided middlewares:
//   - WithCORS: Allows cross-origin reads and handles OPTIONS preflight.
//   - WithLogger: Attaches a request-scoped logger and request ID to the context and logs access info.
//
// Provided helpers:
//   - Healthz: Reports whether the service dependencies are reachable.
//   - PprofMux: Returns a ServeMux exposing net/http/pprof handlers.
package controller
