package service

import (
	"context"

	"github.com/MKhiriev/knockout-login/models"
)

// AuthService drives the external login flow: building the redirect to the
// Knockout auth provider, completing the login by exchanging the one-time
// token, and validating session tokens on later requests.
type AuthService interface {
	// LoginURL builds the provider URL the browser is redirected to.
	// callbackURL is this deployment's absolute callback endpoint.
	LoginURL(callbackURL string) string

	// CompleteLogin exchanges the one-time token received on the callback
	// for the user's identity and issues a signed session token.
	CompleteLogin(ctx context.Context, oneTimeToken string) (models.Token, error)

	// Session validates a session token string and returns its parsed form.
	Session(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService exposes build metadata for the version endpoint.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
