package adapter

import "errors"

var (
	// ErrTokenRejected indicates the Knockout API refused the one-time token
	// or the API key (HTTP 400/401/403).
	ErrTokenRejected = errors.New("knockout api rejected the token")

	// ErrProviderUnavailable indicates the Knockout API answered with an
	// unexpected status or could not be reached at all.
	ErrProviderUnavailable = errors.New("knockout api unavailable")
)
