package config

import (
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Storage drivers accepted in STORAGE_DRIVER.
const (
	StorageDriverS3     = "s3"
	StorageDriverMinio  = "minio"
	StorageDriverMemory = "memory"
)

// Config holds application configuration.
type Config struct {
	Port         string `validate:"required,numeric"`
	IsProduction bool

	// Object storage
	StorageDriver      string `validate:"oneof=s3 minio memory"`
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	S3BucketName       string // checked per request, an empty value is reported as a configuration error
	S3BaseEndpoint     string `validate:"omitempty,url"`
	MinioUseSSL        bool
	MaxUploadBytes     int64 `validate:"gt=0"`

	// Session
	JWTSecret         string        `validate:"required"`
	JWTExpiryDuration time.Duration `validate:"gt=0"`
	JWTIssuer         string        `validate:"required"`
	SessionCookieName string        `validate:"required"`

	// Login gate
	SecretPassword     string
	SecretPasswordHash string
	LoginRateLimit     string `validate:"required"`
	RateLimitRedisURL  string

	FrontendBaseURL string `validate:"omitempty,url"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("STORAGE_DRIVER", StorageDriverS3)
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("AWS_ACCESS_KEY_ID", "")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "")
	v.SetDefault("S3_BUCKET_NAME", "")
	v.SetDefault("S3_BASE_ENDPOINT", "")
	v.SetDefault("MINIO_USE_SSL", false)
	v.SetDefault("MAX_UPLOAD_BYTES", 2*1024*1024)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("NEXTAUTH_SECRET", "")
	v.SetDefault("JWT_EXPIRY_DURATION", "720h")
	v.SetDefault("JWT_ISSUER", "journal-app")
	v.SetDefault("SESSION_COOKIE_NAME", "journal_session")
	v.SetDefault("SECRET_PASSWORD", "")
	v.SetDefault("SECRET_PASSWORD_HASH", "")
	v.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	v.SetDefault("RATE_LIMIT_REDIS_URL", "")
	v.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = v.GetBool("IS_PRODUCTION")

	cfg.StorageDriver = v.GetString("STORAGE_DRIVER")
	cfg.AWSRegion = v.GetString("AWS_REGION")
	cfg.AWSAccessKeyID = v.GetString("AWS_ACCESS_KEY_ID")
	cfg.AWSSecretAccessKey = v.GetString("AWS_SECRET_ACCESS_KEY")
	cfg.S3BucketName = v.GetString("S3_BUCKET_NAME")
	cfg.S3BaseEndpoint = v.GetString("S3_BASE_ENDPOINT")
	cfg.MinioUseSSL = v.GetBool("MINIO_USE_SSL")
	cfg.MaxUploadBytes = v.GetInt64("MAX_UPLOAD_BYTES")

	if cfg.S3BucketName == "" {
		log.Println("Warning: S3_BUCKET_NAME environment variable not set. Uploads will fail with a configuration error.")
	}
	if cfg.StorageDriver == StorageDriverMinio && cfg.S3BaseEndpoint == "" {
		return nil, fmt.Errorf("S3_BASE_ENDPOINT is required when STORAGE_DRIVER is %q", StorageDriverMinio)
	}

	// NEXTAUTH_SECRET is accepted so existing deployments keep their session secret.
	jwtSecret := v.GetString("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = v.GetString("NEXTAUTH_SECRET")
	}
	if jwtSecret == "" {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		jwtSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	cfg.JWTSecret = jwtSecret

	// Load JWT Expiry Duration (e.g., "60m", "720h")
	jwtExpiryStr := v.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil || jwtExpiryDuration <= 0 {
		jwtExpiryDuration = 30 * 24 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = v.GetString("JWT_ISSUER")
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = "journal-app"
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", cfg.JWTIssuer)
	}

	cfg.SessionCookieName = v.GetString("SESSION_COOKIE_NAME")
	if cfg.SessionCookieName == "" {
		cfg.SessionCookieName = "journal_session"
	}

	cfg.SecretPassword = v.GetString("SECRET_PASSWORD")
	cfg.SecretPasswordHash = v.GetString("SECRET_PASSWORD_HASH")
	if cfg.SecretPassword == "" && cfg.SecretPasswordHash == "" {
		log.Println("Warning: neither SECRET_PASSWORD nor SECRET_PASSWORD_HASH is set. Every login will be rejected.")
	}

	cfg.LoginRateLimit = v.GetString("LOGIN_RATE_LIMIT")
	cfg.RateLimitRedisURL = v.GetString("RATE_LIMIT_REDIS_URL")
	cfg.FrontendBaseURL = v.GetString("FRONTEND_BASE_URL")

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
