package middleware

import (
	"net/http"
	"strings"

	"charty-dashboard-backend/internal/services/auth"

	"github.com/gin-gonic/gin"
)

const (
	SessionCookie = "charty_session"
	ContextUserID = "userID"
	ContextClaims = "claims"
	bearerPrefix  = "Bearer "
)

// TokenVerifier checks a session token and returns its identity.
type TokenVerifier interface {
	VerifyToken(token string) (*auth.Claims, error)
}

// SessionAuth rejects requests without a valid session, read from the
// session cookie or an Authorization bearer header.
func SessionAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not signed in."})
			return
		}

		claims, err := verifier.VerifyToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid session."})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextClaims, claims)
		c.Next()
	}
}

func sessionToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); strings.HasPrefix(header, bearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return cookie
	}
	return ""
}
