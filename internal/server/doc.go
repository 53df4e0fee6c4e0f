// Package server wires and runs the gateway's HTTPS transport.
//
// It provides the server lifecycle, including startup, signal handling, and
// graceful shutdown. TLS material comes from the resolved configuration
// record as in-memory PEM text, never from the filesystem at serve time.
package server
