package models

// KnockoutUser is the identity returned by the Knockout API after a
// successful token exchange. Fields mirror the provider's response body.
type KnockoutUser struct {
	// ID is the user's numeric identifier on the Knockout forum.
	ID int64 `json:"id"`

	// Username is the display name of the forum account.
	Username string `json:"username"`

	// AvatarURL points at the user's avatar image. May be empty.
	AvatarURL string `json:"avatar_url,omitempty"`
}
