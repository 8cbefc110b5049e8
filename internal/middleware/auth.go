package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"personal-timeline/internal/model"
	"personal-timeline/pkg/response"
)

const scopeKey = "scope"

// accessTokenCookie mirrors the cookie the identity delivery layer sets.
const accessTokenCookie = "access_token"

// Auth resolves the caller's identity from the access-token cookie or a
// bearer header and stores the scope in the request context. Requests
// without a verifiable token never reach the handler.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		sc, err := m.identity.Verify(c.Request.Context(), token)
		if err != nil {
			m.l.Warnf(c.Request.Context(), "Auth: token verification failed: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, sc)
		c.Next()
	}
}

// GetScope returns the scope stored by Auth. Handlers behind Auth can
// rely on it being present; elsewhere it is the zero scope.
func GetScope(c *gin.Context) model.Scope {
	if v, ok := c.Get(scopeKey); ok {
		if sc, ok := v.(model.Scope); ok {
			return sc
		}
	}
	return model.Scope{}
}

func extractToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := c.Cookie(accessTokenCookie); err == nil {
		return cookie
	}
	return ""
}
