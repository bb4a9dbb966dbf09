// Package http implements the inbound HTTP surface of the application: the
// interactive browser page, the multipart encrypt/decrypt endpoints, the
// key-derivation preview, and the middleware chain (trace ID, logging, gzip,
// panic recovery) every request passes through.
//
// Handlers stay thin: they parse the request, call the service layer and map
// errors to statuses via errors_mapper.go. No cipher or image logic lives
// here.
package http
