package middleware

import (
	"net/http"

	"staywise/nav"
	"staywise/services/guard"
	"staywise/services/session"

	"github.com/gin-gonic/gin"
)

// RouteGuardMiddleware protects a route group behind the session gate. The
// session manager resolves the current session first; the guard decision is
// then applied so protected content never renders before authentication is
// confirmed.
func RouteGuardMiddleware(sessions session.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		current := sessions.CurrentSession(c.Request.Context())

		switch guard.Decide(current) {
		case guard.ShowPlaceholder:
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"status": "loading",
			})
		case guard.RedirectToLogin:
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":      "Insufficient authorization",
				"redirectTo": nav.PathLogin,
			})
		case guard.RenderContent:
			c.Set("userID", current.User.ID)
			c.Next()
		}
	}
}
