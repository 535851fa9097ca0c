package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort      = "8080"
	defaultDSN       = "cinelog.db"
	defaultJWTTTL    = "168h"
	defaultRateRPS   = "5"
	defaultRateBurst = "10"
)

// Config holds everything the API binary reads from the environment.
type Config struct {
	AppEnv         string
	Port           string
	DatabaseURL    string
	JWTSecret      string
	JWTTTL         time.Duration
	AuthRateRPS    float64
	AuthRateBurst  int
	AllowedOrigins string
}

// Load reads .env if present, then the process environment.
// JWT_SECRET has no default on purpose; callers must treat "" as fatal.
func Load() (*Config, error) {
	_ = godotenv.Load()

	ttl, err := time.ParseDuration(GetEnv("JWT_TTL", defaultJWTTTL))
	if err != nil {
		return nil, err
	}

	rps, err := parseFloat(GetEnv("AUTH_RATE_LIMIT_RPS", defaultRateRPS))
	if err != nil {
		return nil, err
	}
	burst, err := parseInt(GetEnv("AUTH_RATE_LIMIT_BURST", defaultRateBurst))
	if err != nil {
		return nil, err
	}

	return &Config{
		AppEnv:         GetEnv("APP_ENV", "development"),
		Port:           GetEnv("PORT", defaultPort),
		DatabaseURL:    GetEnv("DATABASE_URL", defaultDSN),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		JWTTTL:         ttl,
		AuthRateRPS:    rps,
		AuthRateBurst:  burst,
		AllowedOrigins: os.Getenv("CORS_ALLOWED_ORIGINS"),
	}, nil
}

// GetEnv retrieves a value from the environment, falling back to
// defaultValue when unset or empty.
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseFloat(v string) (float64, error) {
	return strconv.ParseFloat(v, 64)
}

func parseInt(v string) (int, error) {
	return strconv.Atoi(v)
}
