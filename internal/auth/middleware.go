package auth

import (
	"net/http"
	"net/url"

	"github.com/reisermn/virtual-island/internal/session"

	"github.com/gin-gonic/gin"
)

// Context keys set by Middleware for downstream handlers.
const (
	UserIDKey = "userID"
	TokenKey  = "sessionToken"
)

// Middleware resolves the session cookie into a user ID on the request
// context if present and valid, but does not fail if it is missing.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(session.CookieName)
		if err == nil && token != "" {
			if userID, err := session.Sessions.Lookup(c.Request.Context(), token); err == nil {
				c.Set(UserIDKey, userID)
				c.Set(TokenKey, token)
			}
		}
		c.Next()
	}
}

// RequireAuth rejects anonymous requests by redirecting to the login entry
// point, preserving the requested URL as the post-login destination.
// It must be used AFTER Middleware.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(UserIDKey); !exists {
			c.Redirect(http.StatusSeeOther, "/?next="+url.QueryEscape(c.Request.URL.RequestURI()))
			c.Abort()
			return
		}
		c.Next()
	}
}
