package identity

import "errors"

var (
	// ErrInvalidCode means the authorization code was rejected by the provider.
	ErrInvalidCode = errors.New("invalid authorization code")

	// ErrInvalidToken means the token is expired, revoked or malformed.
	ErrInvalidToken = errors.New("invalid token")

	// ErrProviderUnavailable means the OAuth2 provider could not be reached
	// or answered with a server error.
	ErrProviderUnavailable = errors.New("identity provider unavailable")
)
