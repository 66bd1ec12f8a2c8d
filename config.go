package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all environment variables for the storefront backend.
type Config struct {
	MongoURL    string   // MongoDB connection string
	DBName      string   // MongoDB database name
	JWTSecret   string   // Symmetric signing secret for bearer tokens
	CorsOrigins []string // Allowed CORS origins; ["*"] allows all
	RedisURL    string   // Optional; product cache is disabled when empty
	Port        string   // Service port (default: 8080)
	Env         string   // "production" switches logging config
}

// LoadConfig loads environment variables into Config and validates them.
// There is deliberately no fallback for JWT_SECRET: a missing secret is a
// startup failure, never a default value.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		MongoURL:  os.Getenv("MONGO_URL"),
		DBName:    os.Getenv("DB_NAME"),
		JWTSecret: strings.TrimSpace(os.Getenv("JWT_SECRET")),
		RedisURL:  os.Getenv("REDIS_URL"),
		Port:      os.Getenv("PORT"),
		Env:       os.Getenv("ENV"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	origins := os.Getenv("CORS_ORIGINS")
	if origins == "" {
		origins = "*"
	}
	for _, o := range strings.Split(origins, ",") {
		cfg.CorsOrigins = append(cfg.CorsOrigins, strings.TrimSpace(o))
	}

	if cfg.MongoURL == "" {
		return nil, fmt.Errorf("MONGO_URL is required")
	}
	if cfg.DBName == "" {
		return nil, fmt.Errorf("DB_NAME is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}
