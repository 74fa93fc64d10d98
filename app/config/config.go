package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the environment-driven settings of the server.
type Config struct {
	Port        string
	Storage     string
	BadgerPath  string
	DatabaseURL string
	Env         string
}

// Load reads configuration from the environment, after loading a .env file
// when one is present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:        getenv("PORT", "5000"),
		Storage:     getenv("STORAGE", "badger"),
		BadgerPath:  getenv("BADGER_PATH", "data/badger"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Env:         getenv("APP_ENV", "development"),
	}
}

// IsProduction reports whether responses must suppress error details.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
