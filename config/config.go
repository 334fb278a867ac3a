package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the environment configuration for the server.
type Config struct {
	Port        string
	MongoURI    string
	MongoDBName string
	JWTSecret   string
}

// Load reads configuration from the environment, loading a .env file first
// if one is present. Required keys halt startup; optional keys only log.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	cfg := &Config{
		Port:        os.Getenv("PORT"),
		MongoURI:    os.Getenv("MONGODB_URI"),
		MongoDBName: os.Getenv("MONGODB_DB_NAME"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
	}
	if cfg.Port == "" {
		cfg.Port = "5000"
	}
	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGODB_URI is required")
	}
	if cfg.MongoDBName == "" {
		return nil, fmt.Errorf("MONGODB_DB_NAME is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	// The storefront build consumes these; the API only reports their absence.
	if os.Getenv("REALTIME_DB_URL") == "" || os.Getenv("REALTIME_DB_API_KEY") == "" {
		log.Println("Error: storefront realtime database URL/key are not set")
	}

	return cfg, nil
}
