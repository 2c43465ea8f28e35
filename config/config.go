package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port   string
	JWTKey string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	DBMaxOpenConns int
	DBMaxIdleConns int

	EmailSender string
	Password    string // SMTP Password

	CompletionSweepSpec string // cron spec for the enrollment completion sweep
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
		Port:   getEnv("PORT", "3000"),
		JWTKey: getEnv("JWT_SECRET_KEY", "defaultSecret"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "upskill_vision"),
		DBPort:     getEnv("DB_PORT", "5432"),

		DBMaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 10),
		DBMaxIdleConns: getEnvInt("DB_MAX_IDLE_CONNS", 5),

		EmailSender: getEnv("EMAIL_SENDER", "defaultSecret"),
		Password:    getEnv("PASSWORD", "defaultSecret"),

		CompletionSweepSpec: getEnv("COMPLETION_SWEEP_SPEC", "0 * * * *"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
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
