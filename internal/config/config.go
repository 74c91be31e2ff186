package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	MongoURI       string
	DBName         string
	JWTSecret      string
	AccessTokenTTL time.Duration
	Port           string
	Currency       string
	ReportTimezone string
	SessionIdleTTL time.Duration
	AllowedOrigins []string
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = FromEnv()
}

// FromEnv reads the configuration from the process environment only.
func FromEnv() Config {
	return Config{
		MongoURI:       getEnvOrDefault("MONGO_URI", ""),
		DBName:         getEnvOrDefault("DB_NAME", "backoffice"),
		JWTSecret:      getEnvOrDefault("JWT_SECRET", ""),
		AccessTokenTTL: getDurationEnv("ACCESS_TOKEN_TTL", 20, time.Minute),
		Port:           getEnvOrDefault("PORT", "8080"),
		Currency:       getRawEnvOrDefault("CURRENCY", "$"),
		ReportTimezone: getEnvOrDefault("REPORT_TIMEZONE", "Local"),
		SessionIdleTTL: getDurationEnv("SESSION_IDLE_TTL", 30, time.Minute),
		AllowedOrigins: getListEnv("ALLOWED_ORIGINS"),
	}
}

// Location resolves ReportTimezone, falling back to the server's zone.
func (c Config) Location() *time.Location {
	if c.ReportTimezone == "" || c.ReportTimezone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.ReportTimezone)
	if err != nil {
		log.Printf("REPORT_TIMEZONE %q not found, using local time: %v", c.ReportTimezone, err)
		return time.Local
	}
	return loc
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

// getRawEnvOrDefault keeps surrounding spaces, so CURRENCY="Rs " works.
func getRawEnvOrDefault(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue int, unit time.Duration) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return time.Duration(parsed) * unit
		}
	}
	return time.Duration(defaultValue) * unit
}

func getListEnv(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
