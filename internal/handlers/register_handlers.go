package handlers

import (
	"fmt"

	"github.com/SscSPs/journal_app/cmd/docs"
	portssvc "github.com/SscSPs/journal_app/internal/core/ports/services"
	"github.com/SscSPs/journal_app/internal/middleware"
	"github.com/SscSPs/journal_app/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	setupCORS(r, cfg)

	// Add health check route
	r.GET("/health", getHealth)

	if err := setupAPIRoutes(r, cfg, services); err != nil {
		return err
	}

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIRoutes configures the /api group: the public auth routes and the
// session-protected upload route.
func setupAPIRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	loginLimiter, err := middleware.NewLimiter(cfg.LoginRateLimit, cfg.RateLimitRedisURL)
	if err != nil {
		return fmt.Errorf("failed to set up login rate limit: %w", err)
	}
	requireSession := middleware.AuthMiddleware(services.Token, cfg.SessionCookieName)

	api := r.Group("/api")
	registerAuthRoutes(api, NewAuthHandler(services.Auth, cfg), loginLimiter, requireSession)

	protected := api.Group("", requireSession)
	registerUploadRoutes(protected, services.Upload, cfg.MaxUploadBytes)
	return nil
}

// setupCORS allows the journal frontend to call the API with its session cookie.
func setupCORS(r *gin.Engine, cfg *config.Config) {
	if cfg.FrontendBaseURL == "" {
		return
	}
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = []string{cfg.FrontendBaseURL}
	corsCfg.AllowCredentials = true
	corsCfg.AddAllowHeaders("Authorization")
	r.Use(cors.New(corsCfg))
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
