package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/miraihq/mirai-backend/internal/app/models/dto"
	"github.com/miraihq/mirai-backend/internal/pkg/session"
)

// ContextUserIDKey is the gin context key holding the authenticated user id.
const ContextUserIDKey = "userID"

// RequireAuth resolves the session cookie and rejects unauthenticated
// requests with 401. On success the user id is stored on the context.
func RequireAuth(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessions.TokenFromRequest(c)
		userID, ok := sessions.Resolve(c.Request.Context(), token)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
			return
		}
		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}

// RedirectIfAnonymous sends browsers without a valid session to the
// sign-in page. Used for HTML pages, not the JSON API.
func RedirectIfAnonymous(sessions *session.Manager, signInPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessions.TokenFromRequest(c)
		if _, ok := sessions.Resolve(c.Request.Context(), token); !ok {
			c.Redirect(http.StatusFound, signInPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated user id set by RequireAuth.
func UserID(c *gin.Context) int64 {
	return c.GetInt64(ContextUserIDKey)
}
