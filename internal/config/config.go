package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr           string
	AllowedOrigins []string
	Debug          bool
}

// Load reads .env (if present) and the QUIZ_* environment variables.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading environment variables")
	}

	return Config{
		Addr: getString("QUIZ_ADDR", ":3001"),
		// Permissive by default, mirroring the HTTP layer's CORS policy;
		// set QUIZ_ALLOWED_ORIGINS to tighten in production.
		AllowedOrigins: getList("QUIZ_ALLOWED_ORIGINS", []string{"*"}),
		Debug:          getBool("QUIZ_DEBUG", false),
	}
}

func getString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
