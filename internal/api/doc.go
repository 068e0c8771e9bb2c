// Package api handles incoming HTTP requests and formats responses. It
// adapts the user directory's service layer to HTTP, mapping domain errors
// to status codes without leaking internal details to clients.
package api
