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
	DBName    string
	JWTKey    string
	SaltRound int

	// Shared secret for the verification override challenge. A matching
	// challenge upgrades the operator session to privileged.
	OverrideKey        string
	OverrideTTLMinutes int

	SmsApiKey string
	SmsApiUrl string

	EmailSender     string
	Password        string // SMTP Password
	DigestRecipient string // daily pending-verification digest goes here
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
		DBName:    getEnv("DB_NAME", "shataAdmin.db"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		OverrideKey:        getEnv("OVERRIDE_KEY", ""),
		OverrideTTLMinutes: getEnvInt("OVERRIDE_TTL_MINUTES", 120),

		SmsApiKey: getEnv("SMS_API_KEY", "defaultSecret"),
		SmsApiUrl: getEnv("SMS_API_URL", "https://www.fast2sms.com/dev/bulkV2"),

		EmailSender:     getEnv("EMAIL_SENDER", "defaultSecret"),
		Password:        getEnv("PASSWORD", "defaultSecret"),
		DigestRecipient: getEnv("DIGEST_RECIPIENT", ""),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.OverrideKey == "" {
		log.Println("Warning: OVERRIDE_KEY is not set. The override challenge will reject every attempt.")
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
