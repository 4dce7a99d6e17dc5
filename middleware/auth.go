package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"neighborly/auth"
)

// CookieName is the session cookie set by login and cleared by logout.
const CookieName = "token"

// ContextUserID is the gin context key holding the verified user id.
const ContextUserID = "userId"

// CookieAuth rejects requests without a valid `token` cookie. On success the
// embedded user id is trusted for the rest of the request; no user lookup is
// performed.
func CookieAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		tokenString, err := c.Cookie(CookieName)
		if err != nil || tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		userID, err := auth.Verify(tokenString, secret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}
