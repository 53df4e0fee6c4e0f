package models

// ExchangeRequest is the body posted to the Knockout API when swapping a
// one-time login token for the authenticated user's identity.
type ExchangeRequest struct {
	// Key is the deployment's Knockout API key.
	Key string `json:"key"`

	// Token is the one-time token handed back by the auth provider via the
	// callback redirect.
	Token string `json:"token"`
}

// SessionResponse is returned by the gateway's session endpoint for an
// authenticated request.
type SessionResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}
