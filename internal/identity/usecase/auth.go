package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/oauth2"

	"personal-timeline/internal/identity"
	"personal-timeline/internal/model"
)

// ExchangeCode trades an authorization code for a token pair.
func (uc *implUseCase) ExchangeCode(ctx context.Context, input identity.CallbackInput) (identity.TokenOutput, error) {
	if input.Code == "" {
		return identity.TokenOutput{}, identity.ErrInvalidCode
	}

	tok, err := uc.oauth.Exchange(ctx, input.Code)
	if err != nil {
		uc.l.Warnf(ctx, "ExchangeCode: provider rejected code: %v", err)
		return identity.TokenOutput{}, identity.ErrInvalidCode
	}

	return identity.TokenOutput{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		ExpiresAt:    tok.Expiry,
	}, nil
}

// Refresh trades a refresh token for a fresh pair.
func (uc *implUseCase) Refresh(ctx context.Context, refreshToken string) (identity.TokenOutput, error) {
	if refreshToken == "" {
		return identity.TokenOutput{}, identity.ErrInvalidToken
	}

	ts := uc.oauth.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
	tok, err := ts.Token()
	if err != nil {
		uc.l.Warnf(ctx, "Refresh: provider rejected refresh token: %v", err)
		return identity.TokenOutput{}, identity.ErrInvalidToken
	}

	out := identity.TokenOutput{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		ExpiresAt:    tok.Expiry,
	}
	// Some providers rotate refresh tokens, some echo the old one back.
	if out.RefreshToken == "" {
		out.RefreshToken = refreshToken
	}
	return out, nil
}

// userinfoResponse is the provider's userinfo wire shape.
type userinfoResponse struct {
	Sub   string `json:"sub"`
	Email string `json:"email"`
}

// Verify resolves an access token into the caller's scope, via cache.
func (uc *implUseCase) Verify(ctx context.Context, accessToken string) (model.Scope, error) {
	if accessToken == "" {
		return model.Scope{}, identity.ErrInvalidToken
	}
	if sc, ok := uc.verified.Get(accessToken); ok {
		return sc, nil
	}

	endpoint := fmt.Sprintf("%s/oauth2/userinfo", uc.cfg.ProviderURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return model.Scope{}, fmt.Errorf("failed to build userinfo request: %w", err)
	}
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", accessToken))

	resp, err := uc.httpClient.Do(httpReq)
	if err != nil {
		uc.l.Errorf(ctx, "Verify: userinfo call failed: %v", err)
		return model.Scope{}, identity.ErrProviderUnavailable
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return model.Scope{}, identity.ErrInvalidToken
	default:
		uc.l.Errorf(ctx, "Verify: userinfo returned %d", resp.StatusCode)
		return model.Scope{}, identity.ErrProviderUnavailable
	}

	var info userinfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return model.Scope{}, fmt.Errorf("failed to decode userinfo response: %w", err)
	}
	if info.Sub == "" {
		return model.Scope{}, identity.ErrInvalidToken
	}

	sc := model.Scope{UserID: info.Sub, Email: info.Email}
	uc.verified.Add(accessToken, sc)
	return sc, nil
}

// SignOut revokes the token at the provider and drops the cache entry.
// A provider-side revocation failure is logged, not surfaced: the cookies
// are cleared either way and the token ages out.
func (uc *implUseCase) SignOut(ctx context.Context, accessToken string) error {
	if accessToken == "" {
		return identity.ErrInvalidToken
	}
	uc.verified.Remove(accessToken)

	endpoint := fmt.Sprintf("%s/oauth2/revoke", uc.cfg.ProviderURL)
	form := url.Values{"token": {accessToken}}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build revocation request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := uc.httpClient.Do(httpReq)
	if err != nil {
		uc.l.Warnf(ctx, "SignOut: revocation call failed (non-fatal): %v", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		uc.l.Warnf(ctx, "SignOut: revocation returned %d (non-fatal)", resp.StatusCode)
	}
	return nil
}
