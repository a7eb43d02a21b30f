package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Host           string
	Port           string
	Environment    string
	LogLevel       string
	AllowedOrigins []string

	DataDir   string
	UploadDir string

	JWTSecret string
	JWTExpiry time.Duration

	MaxUploadBytes int64
}

func Load() *Config {
	return &Config{
		Host:           getenv("HOST", "0.0.0.0"),
		Port:           getenv("PORT", "3001"),
		Environment:    getenv("ENVIRONMENT", "development"),
		LogLevel:       getenv("LOG_LEVEL", "info"),
		AllowedOrigins: splitList(getenv("ALLOWED_ORIGINS", "*")),
		DataDir:        getenv("DATA_DIR", "data"),
		UploadDir:      getenv("UPLOAD_DIR", "uploads"),
		JWTSecret:      getenv("JWT_SECRET", "dev-secret-change-me"),
		JWTExpiry:      getenvDuration("JWT_EXPIRY_HOURS", 168) * time.Hour,
		MaxUploadBytes: getenvInt64("MAX_UPLOAD_BYTES", 50*1024*1024),
	}
}

func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

func getenvInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func getenvDuration(key string, fallbackHours int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n)
		}
	}
	return time.Duration(fallbackHours)
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
