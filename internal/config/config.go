package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all the configuration for the application.
type Config struct {
	// APIURL is the spreadsheet-backed mutation endpoint. Empty enables
	// offline mode: remote calls are skipped and stat deltas queue as
	// pending sync events.
	APIURL string

	// DataURL is the published question-feed base URL. Empty enables
	// the bundled demo question banks.
	DataURL string

	// UserID identifies the account on the remote sheet.
	UserID string

	// DBPath overrides the local database location.
	DBPath string
}

// Load reads configuration from the environment, honoring a .env file
// in the working directory when present.
func Load() *Config {
	_ = godotenv.Load() // missing .env is fine

	userID := os.Getenv("EDIFYX_USER")
	if userID == "" {
		userID = "local"
	}

	return &Config{
		APIURL:  os.Getenv("EDIFYX_API_URL"),
		DataURL: os.Getenv("EDIFYX_DATA_URL"),
		UserID:  userID,
		DBPath:  os.Getenv("EDIFYX_DB"),
	}
}

// Offline reports whether remote sync is disabled.
func (c *Config) Offline() bool {
	return c.APIURL == ""
}
