package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries every deployment knob as an explicit struct handed to
// constructors; nothing reads the environment after startup.
type Config struct {
	Port string

	// ANYTIME THE SHEET IS REORGANIZED THESE MUST CHANGE
	SpreadsheetID string
	SemesterSheet string
	UsersSheet    string
	EventsSheet   string

	CredentialsFile string
	SigningSecret   string
	Timezone        string
	RequestBudget   time.Duration

	RedisAddr     string
	RedisUser     string
	RedisPassword string
}

// LoadEnv loads the .env file if present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: no .env file, using existing environment: %v", err)
	}
}

// LoadConfig builds the Config from environment variables.
func LoadConfig() *Config {
	return &Config{
		Port:            getEnv("PORT", "8083"),
		SpreadsheetID:   os.Getenv("SPREADSHEET_ID"),
		SemesterSheet:   getEnv("SEMESTER_SHEET", "Spring 2021"),
		UsersSheet:      getEnv("USERS_SHEET", "Users"),
		EventsSheet:     getEnv("EVENTS_SHEET", "Events"),
		CredentialsFile: getEnv("GOOGLE_CREDENTIALS_FILE", "./credentials.json"),
		SigningSecret:   os.Getenv("SLACK_SIGNING_SECRET"),
		Timezone:        getEnv("TIMEZONE", "America/Chicago"),
		RequestBudget:   getEnvMillis("REQUEST_BUDGET_MS", 2500),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisUser:       os.Getenv("REDIS_USER"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
	}
}

// Validate rejects configurations that must never reach serving. An
// empty signing secret would make every request's HMAC computable by
// anyone, so it aborts startup the same way missing sheet credentials
// do.
func (c *Config) Validate() error {
	if c.SigningSecret == "" {
		return errors.New("SLACK_SIGNING_SECRET must be set")
	}
	if c.SpreadsheetID == "" {
		return errors.New("SPREADSHEET_ID must be set")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvMillis(key string, fallback int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			return time.Duration(ms) * time.Millisecond
		}
		log.Printf("Warning: ignoring bad %s value %q", key, v)
	}
	return time.Duration(fallback) * time.Millisecond
}
