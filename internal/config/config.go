package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultJWTSecret is only used when JWT_SECRET is missing from the
// environment. This is NOT safe for production; the server logs a warning
// whenever it falls back to it.
const DefaultJWTSecret = "your-secret-key-change-in-production"

// Config holds everything the server needs at startup. It is built once in
// main and passed to constructors; nothing reads the environment after Load.
type Config struct {
	DBDSN       string
	JWTSecret   string
	ListenAddr  string
	CORSOrigins []string
}

// Load reads .env (if present) and the environment into a Config.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found")
	}

	cfg := &Config{
		DBDSN:      os.Getenv("DB_DSN"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		ListenAddr: os.Getenv("LISTEN_ADDR"),
	}

	if cfg.JWTSecret == "" {
		log.Println("⚠️ WARNING: JWT_SECRET not set, using insecure development default")
		cfg.JWTSecret = DefaultJWTSecret
	}

	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}

	origins := os.Getenv("CORS_ORIGINS")
	if origins == "" {
		origins = "http://localhost:5173"
	}
	cfg.CORSOrigins = strings.Split(origins, ",")

	return cfg
}
