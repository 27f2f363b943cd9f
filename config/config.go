package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	DBHost    string
	DBUser    string
	DBPass    string
	DBName    string
	DBPort    string
	JWTKey    string
	SaltRound int

	// Managed backend (auth + row storage). While it stays on the placeholder
	// URL the service runs entirely against the seeded in-memory store.
	BackendURL     string
	BackendAnonKey string

	// Learning-portal integration API used by the portal data service.
	PortalAPIURL   string
	PortalAPIToken string
	FetchTimeoutMs int

	NotifRefreshSeconds int

	GeminiAPIURL string
	GeminiAPIKey string

	SendGridKey string
	EmailSender string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		DBHost:    getEnv("DB_HOST", ""),
		DBUser:    getEnv("DB_USER", ""),
		DBPass:    getEnv("DB_PASSWORD", ""),
		DBName:    getEnv("DB_NAME", "assisthub"),
		DBPort:    getEnv("DB_PORT", "5432"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		BackendURL:     getEnv("BACKEND_URL", "https://your-project-url.supabase.co"),
		BackendAnonKey: getEnv("BACKEND_ANON_KEY", "your-anon-key"),

		PortalAPIURL:   getEnv("PORTAL_API_URL", "https://learning-portal-api.niat.edu"),
		PortalAPIToken: getEnv("PORTAL_API_TOKEN", "NIAT_DEMO_TOKEN"),
		FetchTimeoutMs: getEnvInt("FETCH_TIMEOUT_MS", 1000),

		NotifRefreshSeconds: getEnvInt("NOTIF_REFRESH_SECONDS", 30),

		GeminiAPIURL: getEnv("GEMINI_API_URL", "https://generativelanguage.googleapis.com"),
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),

		SendGridKey: getEnv("SENDGRID_API_KEY", ""),
		EmailSender: getEnv("EMAIL_SENDER", "no-reply@niat.edu"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.GeminiAPIKey == "" {
		log.Println("Warning: GEMINI_API_KEY is not set. AI assistant will answer with the offline message.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
