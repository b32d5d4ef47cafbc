package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/larissavarjao/lvstore-api/apperrors"
	"github.com/larissavarjao/lvstore-api/auth"
)

const SessionCookie = "token"

// Session resolves the caller's identity from the session cookie (or an
// Authorization header) into the request context. It never aborts: routes
// like /me need to answer for anonymous callers too.
func Session(a auth.Auth) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(SessionCookie)
		if err != nil || tokenString == "" {
			tokenString = c.GetHeader("Authorization")
		}
		if tokenString != "" {
			if userID, err := a.VerifyToken(tokenString); err == nil {
				c.Set("user_id", userID)
			}
		}
		c.Next()
	}
}

// RequireAuth aborts with 401 when Session did not resolve an identity.
// Every mutating route except the identity-establishing ones sits behind it.
func RequireAuth(c *gin.Context) {
	if _, exists := c.Get("user_id"); !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrUnauthenticated.Error()})
		c.Abort()
		return
	}
	c.Next()
}

// UserID returns the authenticated caller's id. Only valid behind
// RequireAuth.
func UserID(c *gin.Context) string {
	v, _ := c.Get("user_id")
	id, _ := v.(string)
	return id
}
