package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config contains runtime configuration values.
type Config struct {
	DiscordBotToken  string
	DiscordAPIBase   string
	DiscordChannelID string
	PollScheduleCron string
	RequestTimeout   time.Duration
	LogLevel         string
	RateLimitRetries int
	RateLimitMaxWait time.Duration
}

const (
	defaultAPIBase   = "https://discord.com/api/v10"
	defaultPollCron  = "0 18 * * 0" // 18:00 every Sunday
	defaultTimeout   = 30 * time.Second
	defaultLogLevel  = "info"
	defaultChannelID = ""
	defaultRetries   = 3
	defaultMaxWait   = 10 * time.Second
)

// Load builds a Config from environment variables, reading a .env file first when one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DiscordBotToken:  getenvDefault("DISCORD_BOT_TOKEN", os.Getenv("BOT_TOKEN")),
		DiscordAPIBase:   getenvDefault("DISCORD_API_BASE", defaultAPIBase),
		DiscordChannelID: getenvDefault("DISCORD_CHANNEL_ID", defaultChannelID),
		PollScheduleCron: lookupDefault("POLL_SCHEDULE_CRON", defaultPollCron),
		RequestTimeout:   parseDurationDefault("REQUEST_TIMEOUT", defaultTimeout),
		LogLevel:         getenvDefault("LOG_LEVEL", defaultLogLevel),
		RateLimitRetries: parseIntDefault("DISCORD_RATE_LIMIT_RETRIES", defaultRetries),
		RateLimitMaxWait: parseDurationDefault("DISCORD_RATE_LIMIT_MAX_WAIT", defaultMaxWait),
	}

	if cfg.DiscordBotToken == "" {
		return nil, fmt.Errorf("DISCORD_BOT_TOKEN is required")
	}

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultTimeout
	}

	if cfg.RateLimitRetries < 0 {
		cfg.RateLimitRetries = 0
	}

	return cfg, nil
}

func getenvDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

// lookupDefault distinguishes an unset variable from one set to "", which disables the feature.
func lookupDefault(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func parseIntDefault(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}

func parseDurationDefault(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}
