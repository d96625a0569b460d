// visitor.go - anonymous visitor id for server-side preferences
package main

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	visitorCookie = "visitor"
	visitorKey    = "visitorID"
	visitorMaxAge = 365 * 24 * time.Hour
)

// visitorMiddleware gives each browser a random id so its theme preference can
// be stored in the database. Nothing else is recorded against the id.
func visitorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip static files
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/static/") ||
			strings.HasPrefix(path, "/favicon") {
			c.Next()
			return
		}

		// Respect Do Not Track header; the theme then lives in its own cookie
		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		id, err := c.Cookie(visitorCookie)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.New().String()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(visitorCookie, id, int(visitorMaxAge.Seconds()), "/", "", c.Request.TLS != nil, true)
		}
		c.Set(visitorKey, id)
		c.Next()
	}
}

// visitorID returns the id assigned by visitorMiddleware, or "".
func visitorID(c *gin.Context) string {
	return c.GetString(visitorKey)
}
