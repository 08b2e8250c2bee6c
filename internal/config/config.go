// Package config loads server and CLI settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings.
type Config struct {
	Port   int
	DBPath string

	// SeedPath is an optional YAML file applied at startup.
	SeedPath string

	NotionToken  string
	NotionPageID string
	NotionAPIURL string
}

// Load reads .env files (when present) into the environment, then builds a
// Config from environment variables with defaults. Variables already set in
// the environment win over .env values.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil || port <= 0 || port > 65535 {
		return nil, fmt.Errorf("invalid PORT %q", os.Getenv("PORT"))
	}

	return &Config{
		Port:         port,
		DBPath:       getEnv("DB_PATH", "./data/shoplist.db"),
		SeedPath:     os.Getenv("SEED_PATH"),
		NotionToken:  os.Getenv("NOTION_TOKEN"),
		NotionPageID: os.Getenv("NOTION_PAGE_ID"),
		NotionAPIURL: getEnv("NOTION_API_URL", "https://api.notion.com"),
	}, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
