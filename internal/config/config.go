package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultProfileCacheTTL = time.Hour
	defaultTokenTTL        = 48 * time.Hour
)

type Config struct {
	AppPort string

	RedisAddr     string
	RedisPassword string

	DatabaseDSN string

	JWTSecret string

	ProfileCacheTTL time.Duration
	TokenTTL        time.Duration
}

func Load() Config {

	// optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := Config{

		AppPort: os.Getenv("APP_PORT"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		DatabaseDSN: os.Getenv("DATABASE_DSN"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		ProfileCacheTTL: durationEnv("PROFILE_CACHE_TTL", defaultProfileCacheTTL),
		TokenTTL:        durationEnv("TOKEN_TTL", defaultTokenTTL),
	}

	return cfg

}

func durationEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
