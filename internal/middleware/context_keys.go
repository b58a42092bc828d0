package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// userIDKey is the key used to store the authenticated user's ID in the request context.
const userIDKey = contextKey("userID")

// sessionExpiryKey stores the expiry of the session that authenticated the request.
const sessionExpiryKey = contextKey("sessionExpiry")

// GetUserIDFromContext retrieves the authenticated user ID from the request context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// GetSessionExpiryFromContext retrieves the expiry of the session that authenticated the request.
func GetSessionExpiryFromContext(c *gin.Context) (time.Time, bool) {
	expiresAt, ok := c.Request.Context().Value(sessionExpiryKey).(time.Time)
	if !ok || expiresAt.IsZero() {
		return time.Time{}, false
	}
	return expiresAt, true
}
