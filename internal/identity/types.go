package identity

import "time"

// CallbackInput carries the OAuth2 authorization code from the provider
// redirect.
type CallbackInput struct {
	Code string
}

// TokenOutput is one issued token pair.
type TokenOutput struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}
