// Package http implements the REST transport of go-user-auth.
//
// It wires the chi router, the request handlers and the middleware chain.
// Tracing, access logging, panic recovery, CORS, security headers, body
// limits, timeouts, compression and bearer-token authentication are handled
// here before requests are delegated to the service layer.
package http
