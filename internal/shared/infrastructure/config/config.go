package config

import (
	"os"
	"strconv"
	"time"

	"github.com/invopipe/invoice-ingest/internal/shared/infrastructure/database"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Upload   UploadConfig
	Auth     AuthConfig
	Storage  StorageConfig
	Database database.PostgresConfig
	Redis    database.RedisConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           string
	AllowedOrigins string
}

// UploadConfig holds the validation pipeline limits
type UploadConfig struct {
	MaxBytes int64
}

// AuthConfig selects the authenticator collaborator. When Endpoint is set
// the remote authenticator is used; otherwise the static client id /
// bcrypt secret hash pair.
type AuthConfig struct {
	Endpoint         string
	ClientID         string
	ClientSecretHash string
}

// StorageConfig selects the archive store driver
type StorageConfig struct {
	Driver       string // stub, local or s3
	LocalPath    string
	LocalBaseURL string
	S3Region     string
	S3Endpoint   string
	S3AccessKey  string
	S3SecretKey  string
	S3BucketName string
	S3UseSSL     bool
}

// Load reads configuration from environment variables
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:4200"),
		},
		Upload: UploadConfig{
			MaxBytes: parseInt64(getEnv("UPLOAD_MAX_BYTES", ""), 20*1024*1024),
		},
		Auth: AuthConfig{
			Endpoint:         getEnv("AUTH_ENDPOINT", ""),
			ClientID:         getEnv("AUTH_CLIENT_ID", ""),
			ClientSecretHash: getEnv("AUTH_CLIENT_SECRET_HASH", ""),
		},
		Storage: StorageConfig{
			Driver:       getEnv("STORAGE_DRIVER", "stub"),
			LocalPath:    getEnv("LOCAL_STORAGE_PATH", "./archive"),
			LocalBaseURL: getEnv("LOCAL_STORAGE_BASE_URL", "http://localhost:8080/archive"),
			S3Region:     getEnv("S3_REGION", "us-east-1"),
			S3Endpoint:   getEnv("S3_ENDPOINT", ""),
			S3AccessKey:  getEnv("S3_ACCESS_KEY", ""),
			S3SecretKey:  getEnv("S3_SECRET_KEY", ""),
			S3BucketName: getEnv("S3_BUCKET", ""),
			S3UseSSL:     getEnv("S3_USE_SSL", "true") == "true",
		},
		Database: database.PostgresConfig{
			Enabled:  getEnv("AUDIT_LOG_ENABLED", "false") == "true",
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "invoices"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: database.RedisConfig{
			Enabled:   getEnv("DEDUP_ENABLED", "false") == "true",
			Host:      getEnv("REDIS_HOST", "localhost"),
			Port:      getEnv("REDIS_PORT", "6379"),
			Password:  getEnv("REDIS_PASSWORD", ""),
			DB:        0,
			Retention: parseDuration(getEnv("DEDUP_RETENTION", "720h"), 720*time.Hour),
		},
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseDuration parses a duration string or returns a default value
func parseDuration(value string, defaultValue time.Duration) time.Duration {
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}
	return defaultValue
}

// parseInt64 parses a decimal integer or returns a default value
func parseInt64(value string, defaultValue int64) int64 {
	if n, err := strconv.ParseInt(value, 10, 64); err == nil && n > 0 {
		return n
	}
	return defaultValue
}
