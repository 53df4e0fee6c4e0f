// Package adapter holds outbound integrations with external services.
// Its only member is the HTTP client for the Knockout API, which the login
// flow uses to exchange one-time auth tokens for user identities.
package adapter

import (
	"context"

	"github.com/MKhiriev/knockout-login/models"
)

// KnockoutAdapter is the outbound port to the Knockout API.
type KnockoutAdapter interface {
	// Exchange swaps a one-time login token (received on the auth callback)
	// for the authenticated user's identity, authenticating with the
	// deployment's API key.
	Exchange(ctx context.Context, token string) (models.KnockoutUser, error)
}
