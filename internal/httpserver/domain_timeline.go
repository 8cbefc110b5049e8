package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	timelineHTTP "personal-timeline/internal/timeline/delivery/http"
)

// setupTimelineDomain registers the timeline session routes.
func (srv *HTTPServer) setupTimelineDomain(ctx context.Context, api *gin.RouterGroup) error {
	timelineHTTP.RegisterRoutes(api.Group("/timeline"), srv.timelineHandler, srv.mw)

	srv.l.Infof(ctx, "Timeline domain registered")
	return nil
}
