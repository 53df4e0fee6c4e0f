// Package http implements the HTTP transport layer of the login gateway.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as request tracing and access logging are handled in this
// package before requests are delegated to the service layer.
package http
