package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config carries every environment-provided setting. It is built once in
// main and passed down explicitly; packages never read os.Getenv themselves.
type Config struct {
	AppEnv string
	Port   string

	// Postgres connection parts
	PGHost     string
	PGPort     string
	PGUser     string
	PGPassword string
	PGDatabase string

	// Session token signing
	JWTSecret string

	// Optional Redis cache backend. Empty means in-memory cache.
	RedisURL string

	// JaaS (Jitsi-as-a-Service) signing triplet
	JaaSAppID string
	JaaSSDKID string
	// Base64-encoded shared secret, decoded at signing time
	JaaSSecret string
}

// Load reads configuration from the environment, preferring a local .env
// file when present (development convenience, ignored in production images).
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		AppEnv:     getEnv("APP_ENV", "development"),
		Port:       getEnv("PORT", "8080"),
		PGHost:     getEnv("PG_HOST", "localhost"),
		PGPort:     getEnv("PG_PORT", "5432"),
		PGUser:     os.Getenv("PG_USER"),
		PGPassword: os.Getenv("PG_PASSWORD"),
		PGDatabase: os.Getenv("PG_DB"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		RedisURL:   os.Getenv("REDIS_URL"),
		JaaSAppID:  os.Getenv("JAAS_APP_ID"),
		JaaSSDKID:  os.Getenv("JAAS_SDK_ID"),
		JaaSSecret: os.Getenv("JAAS_SECRET"),
	}

	if cfg.JWTSecret == "" {
		return cfg, fmt.Errorf("JWT_SECRET is not set")
	}
	return cfg, nil
}

// PostgresDSN assembles the connection string shared by GORM and sqlx.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDatabase)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
