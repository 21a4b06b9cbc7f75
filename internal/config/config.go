package config

import (
	"os"
	"strconv"
	"time"
)

const (
	AppName    = "ai-content-generator"
	AppVersion = "1.0.0"
)

// Timeouts for outbound calls. Probes are deliberately shorter than the
// full generation call so health checks stay responsive.
const (
	AIRequestTimeout   = 30 * time.Second
	AIProbeTimeout     = 10 * time.Second
	HealthProbeTimeout = 8 * time.Second
)

// TokenExpiry is how long issued JWT tokens stay valid.
const TokenExpiry = 30 * 24 * time.Hour

type Config struct {
	Addr     string
	LogLevel string

	// AI endpoint
	AIProvider         string
	AIBaseURL          string
	AIAPIKey           string
	AIModel            string
	AIAllowInsecureTLS bool
	AIRateLimit        int

	// Contentful
	ContentfulSpaceID     string
	ContentfulEnvironment string
	ContentfulToken       string

	// Auth
	JWTSecret    string
	AuthUsername string
	AuthPassword string
}

func Load() Config {
	return Config{
		Addr:     getenv("ADDR", ":3001"),
		LogLevel: getenv("LOG_LEVEL", "info"),

		AIProvider:         getenv("AI_PROVIDER", "compatible"),
		AIBaseURL:          os.Getenv("AI_BASE_URL"),
		AIAPIKey:           os.Getenv("AI_API_KEY"),
		AIModel:            getenv("AI_MODEL", "gpt-4o-mini"),
		AIAllowInsecureTLS: getbool("AI_ALLOW_INSECURE_TLS"),
		AIRateLimit:        getint("AI_RATE_LIMIT", 10),

		ContentfulSpaceID:     os.Getenv("CONTENTFUL_SPACE_ID"),
		ContentfulEnvironment: getenv("CONTENTFUL_ENVIRONMENT", "master"),
		ContentfulToken:       os.Getenv("CONTENTFUL_MANAGEMENT_TOKEN"),

		JWTSecret:    os.Getenv("JWT_SECRET"),
		AuthUsername: getenv("AUTH_USERNAME", "admin"),
		AuthPassword: getenv("AUTH_PASSWORD", "password"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getbool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}

func getint(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
