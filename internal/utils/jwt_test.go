package utils

import (
	"testing"
	"time"

	"github.com/MKhiriev/knockout-login/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUser = models.KnockoutUser{ID: 42, Username: "gatekeeper"}

// TestGenerateSessionToken tests session token issuance
func TestGenerateSessionToken(t *testing.T) {
	tests := []struct {
		name        string
		issuer      string
		duration    time.Duration
		signKey     string
		expectError bool
	}{
		{
			name:     "valid params",
			issuer:   "knockout-login",
			duration: time.Hour,
			signKey:  "secret",
		},
		{
			name:        "empty issuer",
			issuer:      "",
			duration:    time.Hour,
			signKey:     "secret",
			expectError: true,
		},
		{
			name:        "zero duration",
			issuer:      "knockout-login",
			duration:    0,
			signKey:     "secret",
			expectError: true,
		},
		{
			name:        "empty sign key",
			issuer:      "knockout-login",
			duration:    time.Hour,
			signKey:     "",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := GenerateSessionToken(tt.issuer, testUser, tt.duration, tt.signKey)

			if tt.expectError {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, token.SignedString)
			assert.Equal(t, int64(42), token.UserID)
			assert.Equal(t, "gatekeeper", token.Username)
		})
	}
}

// TestValidateAndParseSessionToken tests the issue/validate round trip
func TestValidateAndParseSessionToken(t *testing.T) {
	const (
		issuer  = "knockout-login"
		signKey = "secret"
	)

	t.Run("round trip", func(t *testing.T) {
		issued, err := GenerateSessionToken(issuer, testUser, time.Hour, signKey)
		require.NoError(t, err)

		parsed, err := ValidateAndParseSessionToken(issued.SignedString, signKey, issuer)
		require.NoError(t, err)
		assert.Equal(t, int64(42), parsed.UserID)
		assert.Equal(t, "gatekeeper", parsed.Username)
	})

	t.Run("wrong sign key", func(t *testing.T) {
		issued, err := GenerateSessionToken(issuer, testUser, time.Hour, signKey)
		require.NoError(t, err)

		_, err = ValidateAndParseSessionToken(issued.SignedString, "other-secret", issuer)
		require.Error(t, err)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		issued, err := GenerateSessionToken(issuer, testUser, time.Hour, signKey)
		require.NoError(t, err)

		_, err = ValidateAndParseSessionToken(issued.SignedString, signKey, "impostor")
		require.Error(t, err)
	})

	t.Run("garbage token string", func(t *testing.T) {
		_, err := ValidateAndParseSessionToken("not.a.token", signKey, issuer)
		require.Error(t, err)
	})
}
