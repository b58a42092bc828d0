package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/journal_app/internal/apperrors"
	portssvc "github.com/SscSPs/journal_app/internal/core/ports/services"
	"github.com/SscSPs/journal_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware creates a Gin middleware handler that requires a valid session.
// The token is taken from "Authorization: Bearer <token>" or, failing that, from
// the session cookie.
func AuthMiddleware(tokenSvc portssvc.TokenSvcFacade, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		tokenString, source := sessionToken(c, cookieName)
		if tokenString == "" {
			logger.Warn("Session token missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.MessageResponse{Message: apperrors.MsgUnauthorized})
			return
		}

		session, err := tokenSvc.ValidateSessionToken(c.Request.Context(), tokenString)
		if err != nil {
			logger.Warn("Invalid session token", slog.String("source", source), slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.MessageResponse{Message: apperrors.MsgUnauthorized})
			return
		}

		// Store the session and the enriched logger in the request context
		ctx := context.WithValue(c.Request.Context(), userIDKey, session.UserID)
		ctx = context.WithValue(ctx, sessionExpiryKey, session.ExpiresAt)
		ctx = WithLogger(ctx, logger.With(slog.String("user_id", session.UserID)))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func sessionToken(c *gin.Context, cookieName string) (string, string) {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return strings.TrimSpace(parts[1]), "header"
		}
		return "", "header"
	}
	if cookieName != "" {
		if cookie, err := c.Cookie(cookieName); err == nil {
			return cookie, "cookie"
		}
	}
	return "", ""
}
