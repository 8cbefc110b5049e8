package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the auth endpoints. These run unauthenticated:
// they are how a browser obtains its tokens in the first place.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	auth := rg.Group("/auth")
	{
		auth.GET("/callback", h.Callback)
		auth.POST("/refresh", h.Refresh)
		auth.POST("/signout", h.SignOut)
	}
}
