package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionIDKey is the gin context key holding the session id that owns
// the cart.
const SessionIDKey = "session_id"

const sessionCookie = "storefront_session"

// Session assigns each browser session an opaque id via cookie. The id
// keys the session's cart; nothing else hangs off it (there is no
// authentication in this system).
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(sessionCookie)
		if err != nil || id == "" {
			id = c.GetHeader("X-Session-ID")
		}
		if id == "" {
			id = uuid.NewString()
			c.SetCookie(sessionCookie, id, 0, "/", "", false, true)
		}
		c.Set(SessionIDKey, id)
		c.Next()
	}
}

// SessionID returns the session id set by Session.
func SessionID(c *gin.Context) string {
	return c.GetString(SessionIDKey)
}
