package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	identityHTTP "personal-timeline/internal/identity/delivery/http"
)

// setupIdentityDomain registers the auth routes.
func (srv *HTTPServer) setupIdentityDomain(ctx context.Context, api *gin.RouterGroup) error {
	identityHTTP.RegisterRoutes(api, srv.identityHandler)

	srv.l.Infof(ctx, "Identity domain registered")
	return nil
}
