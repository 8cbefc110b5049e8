package http

import (
	"github.com/gin-gonic/gin"

	"personal-timeline/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Every route requires an authenticated caller.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	sessions := rg.Group("/sessions")
	{
		sessions.POST("", mw.Auth(), h.Start)
		sessions.GET("/:id", mw.Auth(), h.Get)
		sessions.GET("/:id/view", mw.Auth(), h.Render)
		sessions.PUT("/:id/view", mw.Auth(), h.SwitchView)
		sessions.PUT("/:id/viewport", mw.Auth(), h.SetViewport)
		sessions.POST("/:id/selection", mw.Auth(), h.SelectTask)
		sessions.DELETE("/:id/selection", mw.Auth(), h.CloseEditor)
		sessions.PUT("/:id/tasks/:taskId", mw.Auth(), h.UpdateTask)
	}
}
