// Package config resolves the application's startup options into a typed,
// immutable [Config] record.
//
// Each option is resolved independently from two read-only snapshots captured
// at process start: command-line flags (by option name) and environment
// variables (by uppercased option name). A flag value always wins over an
// environment value; the environment is consulted only when the flag was not
// set at all. Presence is decided by key existence, so an explicitly empty
// value is still parsed and validated.
//
// The main entry points are [Load] for deployments with a public base URL and
// [LoadLocal] for deployments that derive URLs from the incoming request.
package config
