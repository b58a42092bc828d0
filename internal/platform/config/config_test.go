package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestViper(values map[string]any) *viper.Viper {
	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("STORAGE_DRIVER", StorageDriverMemory)
	v.SetDefault("MAX_UPLOAD_BYTES", 2*1024*1024)
	v.SetDefault("JWT_EXPIRY_DURATION", "1h")
	v.SetDefault("JWT_ISSUER", "journal-test")
	v.SetDefault("SESSION_COOKIE_NAME", "journal_session")
	v.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	for k, val := range values {
		v.Set(k, val)
	}
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(newTestViper(nil))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, defaultJWTSecret, cfg.JWTSecret)
	assert.Equal(t, time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, int64(2*1024*1024), cfg.MaxUploadBytes)
	assert.Empty(t, cfg.S3BucketName, "a missing bucket must not fail startup")
	assert.Empty(t, cfg.SecretPassword, "a missing password must not fail startup")
}

func TestFromViper_NextAuthSecretFallback(t *testing.T) {
	cfg, err := fromViper(newTestViper(map[string]any{"NEXTAUTH_SECRET": "from-nextauth"}))
	require.NoError(t, err)
	assert.Equal(t, "from-nextauth", cfg.JWTSecret)

	cfg, err = fromViper(newTestViper(map[string]any{"NEXTAUTH_SECRET": "from-nextauth", "JWT_SECRET": "primary"}))
	require.NoError(t, err)
	assert.Equal(t, "primary", cfg.JWTSecret)
}

func TestFromViper_ProductionRequiresSecret(t *testing.T) {
	_, err := fromViper(newTestViper(map[string]any{"IS_PRODUCTION": true}))
	assert.Error(t, err)
}

func TestFromViper_InvalidExpiryFallsBack(t *testing.T) {
	cfg, err := fromViper(newTestViper(map[string]any{"JWT_EXPIRY_DURATION": "soon"}))
	require.NoError(t, err)
	assert.Equal(t, 30*24*time.Hour, cfg.JWTExpiryDuration)
}

func TestFromViper_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]any
	}{
		{name: "unknown storage driver", values: map[string]any{"STORAGE_DRIVER": "ftp"}},
		{name: "non numeric port", values: map[string]any{"PORT": "http"}},
		{name: "zero upload ceiling", values: map[string]any{"MAX_UPLOAD_BYTES": 0}},
		{name: "minio without endpoint", values: map[string]any{"STORAGE_DRIVER": StorageDriverMinio}},
		{name: "bad endpoint", values: map[string]any{"S3_BASE_ENDPOINT": "not a url"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fromViper(newTestViper(tt.values))
			assert.Error(t, err)
		})
	}
}
