// internal/middleware/session.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionCookieName = "pc3d_session"

// Session gives every visitor an anonymous session ID cookie. The cart
// lives under this ID; no login is involved. An unparseable cookie is
// replaced rather than rejected.
func Session(ttlSeconds int, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(sessionCookieName)
		if err != nil || uuid.Validate(sessionID) != nil {
			sessionID = uuid.New().String()
		}

		// Refresh the cookie on every request so active visitors never
		// lose their cart mid-session.
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(sessionCookieName, sessionID, ttlSeconds, "/", "", secure, true)

		c.Set("session_id", sessionID)
		c.Next()
	}
}
