package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	DiscordToken    string
	GoogleSheetsID  string
	FantraxLeagueID string
	CacheDuration   time.Duration
	CommandPrefix   string
	LogLevel        string
	Season          int
	DataDir         string
}

func Load() (*Config, error) {
	cacheDuration := 15 * time.Minute
	if d := os.Getenv("CACHE_DURATION_MINUTES"); d != "" {
		if minutes, err := strconv.Atoi(d); err == nil {
			cacheDuration = time.Duration(minutes) * time.Minute
		}
	}

	season := time.Now().Year()
	if s := os.Getenv("SEASON"); s != "" {
		if parsed, err := strconv.Atoi(s); err == nil {
			season = parsed
		}
	}

	return &Config{
		DiscordToken:    os.Getenv("DISCORD_TOKEN"),
		GoogleSheetsID:  os.Getenv("GOOGLE_SHEETS_ID"),
		FantraxLeagueID: os.Getenv("FANTRAX_LEAGUE_ID"),
		CacheDuration:   cacheDuration,
		CommandPrefix:   getEnvOrDefault("COMMAND_PREFIX", "!"),
		LogLevel:        getEnvOrDefault("LOG_LEVEL", "info"),
		Season:          season,
		DataDir:         getEnvOrDefault("DATA_DIR", "./data"),
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
