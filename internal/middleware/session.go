// internal/middleware/session.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/okaimono/shotengai-backend/internal/config"
)

// VisitorSession assigns every browser a stable visitor id cookie. The id is
// the key for the cart map and the checkout batch; no authentication is
// attached to it.
func VisitorSession(cfg config.SessionConfig) gin.HandlerFunc {
	maxAge := cfg.TTLHours * 3600
	return func(c *gin.Context) {
		visitorID, err := c.Cookie(cfg.CookieName)
		if err != nil || visitorID == "" {
			visitorID = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(cfg.CookieName, visitorID, maxAge, "/", "", cfg.Secure, true)
		}

		c.Set("visitor_id", visitorID)
		c.Next()
	}
}
