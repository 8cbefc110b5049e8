package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"personal-timeline/internal/identity"
	"personal-timeline/pkg/response"
)

const (
	// AccessTokenCookie is the HTTP-only cookie carrying the access token.
	AccessTokenCookie = "access_token"
	// RefreshTokenCookie is the HTTP-only cookie carrying the refresh token.
	RefreshTokenCookie = "refresh_token"
)

// Callback godoc
// @Summary     OAuth2 callback
// @Description Exchanges the provider's authorization code for tokens, sets HTTP-only cookies and redirects into the app.
// @Tags        Auth
// @Produce     json
// @Param       code query string true "Authorization code"
// @Success     302
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Provider unavailable"
// @Router      /auth/callback [GET]
func (h *handler) Callback(c *gin.Context) {
	ctx := c.Request.Context()

	code := c.Query("code")
	if code == "" {
		response.Error(c, h.mapError(identity.ErrInvalidCode))
		return
	}

	out, err := h.uc.ExchangeCode(ctx, identity.CallbackInput{Code: code})
	if err != nil {
		h.l.Errorf(ctx, "uc.ExchangeCode: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	h.setTokenCookies(c, out)
	c.Redirect(http.StatusFound, h.appRedirect)
}

// Refresh godoc
// @Summary     Refresh tokens
// @Description Trades the refresh-token cookie for a fresh token pair.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} response.Resp
// @Failure     401 {object} response.Resp "Invalid refresh token"
// @Router      /auth/refresh [POST]
func (h *handler) Refresh(c *gin.Context) {
	ctx := c.Request.Context()

	refreshToken, err := c.Cookie(RefreshTokenCookie)
	if err != nil || refreshToken == "" {
		response.Error(c, h.mapError(identity.ErrInvalidToken))
		return
	}

	out, err := h.uc.Refresh(ctx, refreshToken)
	if err != nil {
		h.l.Errorf(ctx, "uc.Refresh: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	h.setTokenCookies(c, out)
	response.OK(c, refreshResp{ExpiresAt: out.ExpiresAt.Format(time.RFC3339)})
}

// SignOut godoc
// @Summary     Sign out
// @Description Revokes the access token and clears the token cookies.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /auth/signout [POST]
func (h *handler) SignOut(c *gin.Context) {
	ctx := c.Request.Context()

	accessToken, _ := c.Cookie(AccessTokenCookie)
	if accessToken != "" {
		if err := h.uc.SignOut(ctx, accessToken); err != nil {
			h.l.Warnf(ctx, "uc.SignOut: %v", err)
		}
	}

	h.clearTokenCookies(c)
	response.OK(c, nil)
}

func (h *handler) setTokenCookies(c *gin.Context, out identity.TokenOutput) {
	accessMaxAge := int(time.Until(out.ExpiresAt).Seconds())
	if accessMaxAge <= 0 {
		accessMaxAge = 3600
	}
	c.SetCookie(AccessTokenCookie, out.AccessToken, accessMaxAge, "/", h.cookies.Domain, h.cookies.Secure, true)
	if out.RefreshToken != "" {
		c.SetCookie(RefreshTokenCookie, out.RefreshToken, h.cookies.RefreshMaxAge, "/", h.cookies.Domain, h.cookies.Secure, true)
	}
}

func (h *handler) clearTokenCookies(c *gin.Context) {
	c.SetCookie(AccessTokenCookie, "", -1, "/", h.cookies.Domain, h.cookies.Secure, true)
	c.SetCookie(RefreshTokenCookie, "", -1, "/", h.cookies.Domain, h.cookies.Secure, true)
}

type refreshResp struct {
	ExpiresAt string `json:"expires_at"`
}
