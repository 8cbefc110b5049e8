package identity

import (
	"context"

	"personal-timeline/internal/model"
)

// UseCase defines the business logic interface for the identity domain.
// Sign-in runs against the workspace OAuth2 provider; this service never
// stores credentials, only short-lived tokens.
type UseCase interface {
	// ExchangeCode trades an authorization code for a token pair.
	ExchangeCode(ctx context.Context, input CallbackInput) (TokenOutput, error)

	// Refresh trades a refresh token for a fresh token pair.
	Refresh(ctx context.Context, refreshToken string) (TokenOutput, error)

	// Verify resolves an access token into the caller's scope.
	// Verifications are cached briefly to keep the provider off the hot path.
	Verify(ctx context.Context, accessToken string) (model.Scope, error)

	// SignOut revokes the access token at the provider and drops it from
	// the verification cache.
	SignOut(ctx context.Context, accessToken string) error
}
