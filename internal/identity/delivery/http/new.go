package http

import (
	"github.com/gin-gonic/gin"

	"personal-timeline/internal/identity"
	"personal-timeline/pkg/log"
)

// Handler is the public interface for the identity HTTP delivery layer.
type Handler interface {
	Callback(c *gin.Context)
	Refresh(c *gin.Context)
	SignOut(c *gin.Context)
}

// CookieConfig controls the token cookies issued on sign-in.
type CookieConfig struct {
	Domain        string
	Secure        bool
	RefreshMaxAge int // seconds
}

type handler struct {
	l           log.Logger
	uc          identity.UseCase
	cookies     CookieConfig
	appRedirect string // where the provider callback lands the browser
}

// New creates a new HTTP handler for the identity domain.
func New(l log.Logger, uc identity.UseCase, cookies CookieConfig, appRedirect string) *handler {
	return &handler{
		l:           l,
		uc:          uc,
		cookies:     cookies,
		appRedirect: appRedirect,
	}
}
