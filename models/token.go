package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the claim set carried by a gateway session token.
// It extends the RFC 7519 registered claims with the Knockout username so
// the session endpoint can answer without a round trip to the provider.
type SessionClaims struct {
	jwt.RegisteredClaims

	// Username is the Knockout display name of the session owner.
	Username string `json:"username,omitempty"`
}

// Token wraps a session JWT with convenience accessors for the login flow.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [SessionClaims] for claim access. SignedString holds the compact
// serialized form ready to be set as a cookie. UserID is a cached, parsed
// copy of the "sub" claim converted to int64.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// SessionClaims provides access to the session claim set.
	SessionClaims

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID int64 `json:"-"`
}

// GetUserID extracts the user identifier from the token's "sub" (subject)
// claim, parses it as a base-10 int64, and returns the result.
//
// Returns an error if the subject claim is missing, empty, or cannot be
// converted to int64.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
