package config

import (
	"os"

	"github.com/joho/godotenv"
)

var loaded bool

// Config reads a key from the environment, loading .env once if present.
func Config(key string) string {
	if !loaded {
		godotenv.Load(".env")
		loaded = true
	}
	return os.Getenv(key)
}

func ConfigDefault(key, fallback string) string {
	if v := Config(key); v != "" {
		return v
	}
	return fallback
}
