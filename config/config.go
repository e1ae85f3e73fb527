package config

import "os"

// Config carries every environment-sourced setting. It is built once
// in main and handed to the components that need it — the admin gate
// never reads the environment itself.
type Config struct {
	Port        string
	AppEnv      string // "development" | "production", controls log format/level only
	DatabaseURL string

	// Admin gate
	AdminSecret       string
	SessionVerifyURL  string // base URL of the hosted auth service, empty disables bearer auth
	SessionServiceKey string

	AllowedOrigins string
	EventName      string // used for export file names and workbook titles
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "5200"),
		AppEnv:      getEnv("APP_ENV", "development"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		AdminSecret:       os.Getenv("ADMIN_SECRET"),
		SessionVerifyURL:  os.Getenv("SESSION_VERIFY_URL"),
		SessionServiceKey: os.Getenv("SESSION_SERVICE_KEY"),

		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),
		EventName:      getEnv("EVENT_NAME", "CPE Fair"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
