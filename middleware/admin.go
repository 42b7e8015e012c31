package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// RequireAdmin guards the admin surface with the shared secret, presented as
// a bearer credential. This is a gate, not an identity system: there is one
// secret and one admin.
func RequireAdmin(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || secret == "" ||
			subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing admin credential"})
			c.Abort()
			return
		}
		c.Next()
	}
}
