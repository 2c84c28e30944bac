package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"techbbswatcher/pkg/errors"
)

// Config represents the application configuration
type Config struct {
	// Telegram configuration
	BotToken string
	ChatID   int64

	// Wanted keywords per forum section
	CPUs []string
	GPUs []string

	// Forum configuration
	ForumURL     string
	CPUForumPath string
	GPUForumPath string

	// HTTP timeout for all outbound requests
	Timeout time.Duration

	// Seen-state configuration
	StateFile    string
	MaxThreadAge time.Duration

	// Environment
	Environment string
}

// LoadConfig loads the configuration from environment variables with defaults
func LoadConfig() *Config {
	chatID, _ := strconv.ParseInt(getEnv("CHAT_ID", "0"), 10, 64)
	timeout, _ := strconv.Atoi(getEnv("DEFAULT_TIMEOUT", "60"))
	maxAge, _ := strconv.Atoi(getEnv("MAX_THREAD_AGE", "14"))

	return &Config{
		BotToken:     os.Getenv("BOT_TOKEN"),
		ChatID:       chatID,
		CPUs:         splitList(os.Getenv("CPUS")),
		GPUs:         splitList(os.Getenv("GPUS")),
		ForumURL:     getEnv("FORUM_URL", "https://bbs.io-tech.fi"),
		CPUForumPath: getEnv("CPU_FORUM_PATH", "/forums/prosessorit-emolevyt-ja-muistit.73/"),
		GPUForumPath: getEnv("GPU_FORUM_PATH", "/forums/naytonohjaimet.74/"),
		Timeout:      time.Duration(timeout) * time.Second,
		StateFile:    getEnv("STATE_FILE", "thread_data.json"),
		MaxThreadAge: time.Duration(maxAge) * 24 * time.Hour,
		Environment:  getEnv("WATCHER_ENVIRONMENT", "development"),
	}
}

// Validate checks that the configuration is usable before any network activity
func (c *Config) Validate() error {
	if c.BotToken == "" {
		return errors.NewConfiguration("BOT_TOKEN is required", nil)
	}
	if c.ChatID == 0 {
		return errors.NewConfiguration("CHAT_ID is required and must be a numeric chat identifier", nil)
	}
	if len(c.CPUs) == 0 && len(c.GPUs) == 0 {
		return errors.NewConfiguration("no wanted keywords: set CPUS or GPUS (or pass --cpus/--gpus)", nil)
	}
	if c.Timeout <= 0 {
		return errors.NewConfiguration("DEFAULT_TIMEOUT must be a positive number of seconds", nil)
	}
	if c.MaxThreadAge <= 0 {
		return errors.NewConfiguration("MAX_THREAD_AGE must be a positive number of days", nil)
	}
	return nil
}

// splitList splits a comma-separated keyword list, dropping empty entries
func splitList(value string) []string {
	if value == "" {
		return nil
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
