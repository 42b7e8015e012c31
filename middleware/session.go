package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionHeader = "X-Session-ID"
	sessionKey    = "session_id"
)

// EnsureSession reads the shopper's session id from the request header,
// minting one when absent. The id (new or not) is echoed back so the client
// can carry it for the rest of the session.
func EnsureSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(SessionHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(sessionKey, id)
		c.Header(SessionHeader, id)
		c.Next()
	}
}

// SessionID returns the id set by EnsureSession.
func SessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}
