package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/MKhiriev/knockout-login/internal/adapter"
	"github.com/MKhiriev/knockout-login/internal/logger"
	"github.com/MKhiriev/knockout-login/internal/utils"
	"github.com/MKhiriev/knockout-login/models"
	"github.com/golang-jwt/jwt/v5"
)

const (
	defaultProviderURL     = "https://knockout.chat/login"
	defaultTokenIssuer     = "knockout-login"
	defaultSessionDuration = 72 * time.Hour
)

// AuthConfig carries the parameters of the login flow.
type AuthConfig struct {
	// ProviderURL is the Knockout auth page the browser is sent to.
	// Defaults to the production login page.
	ProviderURL string

	// SignKey is the HMAC secret used to sign and verify session tokens.
	SignKey string

	// Issuer is the "iss" claim embedded in every issued session token.
	Issuer string

	// SessionDuration controls how long an issued session remains valid.
	SessionDuration time.Duration
}

// authService is the concrete implementation of AuthService. It delegates
// identity verification to the Knockout API through the adapter and manages
// the session JWT lifecycle locally.
type authService struct {
	knockout adapter.KnockoutAdapter

	providerURL     string
	signKey         string
	issuer          string
	sessionDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given Knockout
// adapter. Zero-valued fields of cfg fall back to production defaults.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(knockout adapter.KnockoutAdapter, cfg AuthConfig, logger *logger.Logger) AuthService {
	if cfg.ProviderURL == "" {
		cfg.ProviderURL = defaultProviderURL
	}
	if cfg.Issuer == "" {
		cfg.Issuer = defaultTokenIssuer
	}
	if cfg.SessionDuration <= 0 {
		cfg.SessionDuration = defaultSessionDuration
	}

	return &authService{
		knockout:        knockout,
		providerURL:     cfg.ProviderURL,
		signKey:         cfg.SignKey,
		issuer:          cfg.Issuer,
		sessionDuration: cfg.SessionDuration,
		logger:          logger,
	}
}

// LoginURL builds the provider redirect target with the callback URL
// attached as the redirect query parameter.
func (a *authService) LoginURL(callbackURL string) string {
	return a.providerURL + "?redirect=" + url.QueryEscape(callbackURL)
}

// CompleteLogin exchanges the one-time token for the user's identity and
// issues a session token for it.
//
// Returns ErrEmptyToken for a blank token, ErrLoginRejected when the
// provider refuses the token, or a wrapped error for other failures.
func (a *authService) CompleteLogin(ctx context.Context, oneTimeToken string) (models.Token, error) {
	log := logger.FromContext(ctx)

	if oneTimeToken == "" {
		log.Error().Msg("empty one-time token provided")
		return models.Token{}, ErrEmptyToken
	}

	user, err := a.knockout.Exchange(ctx, oneTimeToken)
	if err != nil {
		if errors.Is(err, adapter.ErrTokenRejected) {
			log.Err(err).Msg("auth provider rejected the token")
			return models.Token{}, ErrLoginRejected
		}
		log.Err(err).Msg("token exchange failed")
		return models.Token{}, fmt.Errorf("token exchange failed: %w", err)
	}

	token, err := utils.GenerateSessionToken(a.issuer, user, a.sessionDuration, a.signKey)
	if err != nil {
		log.Err(err).Int64("user_id", user.ID).Msg("session token creation failed")
		return models.Token{}, fmt.Errorf("session token creation failed: %w", err)
	}

	log.Debug().Int64("user_id", user.ID).Str("username", user.Username).Msg("login completed")

	return token, nil
}

// Session validates a session token string issued by CompleteLogin.
//
// Returns ErrEmptyToken for a blank string, ErrTokenIsExpired for expired
// sessions, or a wrapped error when parsing or verification fails.
func (a *authService) Session(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	if tokenString == "" {
		return models.Token{}, ErrEmptyToken
	}

	token, err := utils.ValidateAndParseSessionToken(tokenString, a.signKey, a.issuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		log.Err(err).Msg("session token validation failed")
		return models.Token{}, fmt.Errorf("session token validation failed: %w", err)
	}

	return token, nil
}
