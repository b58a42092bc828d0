package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/journal_app/internal/apperrors"
	"github.com/SscSPs/journal_app/internal/core/domain"
	portssvc "github.com/SscSPs/journal_app/internal/core/ports/services"
	"github.com/SscSPs/journal_app/internal/dto"
	"github.com/SscSPs/journal_app/internal/middleware"
	"github.com/SscSPs/journal_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// AuthHandler handles the login gate and the session cookie.
type AuthHandler struct {
	authService  portssvc.AuthSvcFacade
	cookieName   string
	secureCookie bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as portssvc.AuthSvcFacade, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService:  as,
		cookieName:   cfg.SessionCookieName,
		secureCookie: cfg.IsProduction,
	}
}

// registerAuthRoutes sets up the routes for authentication.
// The session route sits behind requireSession; login is rate limited per client IP.
func registerAuthRoutes(rg *gin.RouterGroup, h *AuthHandler, loginLimiter *limiter.Limiter, requireSession gin.HandlerFunc) {
	auth := rg.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimit(loginLimiter), h.Login)
		auth.POST("/logout", h.Logout)
		auth.GET("/session", requireSession, h.Session)
	}
}

// Login godoc
// @Summary Journal login
// @Description Checks the journal password and issues a session token, also set as an HttpOnly cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.MessageResponse
// @Failure 401 {object} dto.MessageResponse "Invalid credentials"
// @Failure 429 {object} dto.MessageResponse "Too many login attempts"
// @Failure 500 {object} dto.MessageResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Login", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: apperrors.MsgInvalidRequestBody})
		return
	}

	session, err := h.authService.Login(c.Request.Context(), req.Password)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrConfiguration):
			logger.Error("Login rejected: no journal password configured", slog.String("error", err.Error()))
			c.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: apperrors.MsgInvalidCredentials})
		case errors.Is(err, apperrors.ErrUnauthorized):
			logger.Warn("Login rejected: invalid credentials")
			c.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: apperrors.MsgInvalidCredentials})
		default:
			logger.Error("Failed to issue session", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: apperrors.MsgSessionFailed})
		}
		return
	}

	maxAge := int(time.Until(session.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, session.Token, maxAge, "/", "", h.secureCookie, true)

	logger.Info("Session issued", slog.Time("expires_at", session.ExpiresAt))
	c.JSON(http.StatusOK, dto.LoginResponse{Token: session.Token, ExpiresAt: session.ExpiresAt})
}

// Logout godoc
// @Summary Journal logout
// @Description Clears the session cookie. Bearer tokens stay valid until they expire.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, "", -1, "/", "", h.secureCookie, true)
	c.JSON(http.StatusOK, dto.MessageResponse{Message: apperrors.MsgSignedOut})
}

// Session godoc
// @Summary Current session
// @Description Returns the journal user and the expiry of the session used for the request.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.SessionResponse
// @Failure 401 {object} dto.MessageResponse "Unauthorized"
// @Security BearerAuth
// @Router /auth/session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.MessageResponse{Message: apperrors.MsgUnauthorized})
		return
	}

	resp := dto.SessionResponse{User: dto.SessionUser{ID: userID, Name: domain.JournalUserName}}
	if expiresAt, ok := middleware.GetSessionExpiryFromContext(c); ok {
		resp.ExpiresAt = &expiresAt
	}
	c.JSON(http.StatusOK, resp)
}
