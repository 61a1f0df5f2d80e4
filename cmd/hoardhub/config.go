package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Config contains application-wide settings sourced from the environment.
type Config struct {
	Addr           string
	HoardingsFile  string
	BookingsFile   string
	ImageDir       string
	Districts      []string
	DatabaseURL    string
	AllowedOrigins []string
	LogLevel       string
	LogFormat      string
}

func loadConfig() (Config, error) {
	_ = godotenv.Load()

	dataDir := envOrDefault("DATA_DIR", "data")

	cfg := Config{
		Addr:           fmt.Sprintf(":%s", envOrDefault("PORT", "8080")),
		HoardingsFile:  envOrDefault("HOARDINGS_FILE", filepath.Join(dataDir, "hoardings.csv")),
		BookingsFile:   envOrDefault("BOOKINGS_FILE", filepath.Join(dataDir, "bookings.csv")),
		ImageDir:       envOrDefault("IMAGE_DIR", "hoarding_images"),
		Districts:      splitList(envOrDefault("DISTRICTS", "Raipur,Durg")),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		AllowedOrigins: splitList(envOrDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")),
		LogLevel:       envOrDefault("LOG_LEVEL", "info"),
		LogFormat:      envOrDefault("LOG_FORMAT", "json"),
	}

	if len(cfg.Districts) == 0 {
		return Config{}, fmt.Errorf("DISTRICTS must name at least one district")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
