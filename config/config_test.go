package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"techbbswatcher/pkg/errors"
)

func TestLoadConfig(t *testing.T) {
	// Test with default values
	config := LoadConfig()
	assert.Equal(t, "https://bbs.io-tech.fi", config.ForumURL)
	assert.Equal(t, "/forums/prosessorit-emolevyt-ja-muistit.73/", config.CPUForumPath)
	assert.Equal(t, "/forums/naytonohjaimet.74/", config.GPUForumPath)
	assert.Equal(t, 60*time.Second, config.Timeout)
	assert.Equal(t, 14*24*time.Hour, config.MaxThreadAge)
	assert.Equal(t, "thread_data.json", config.StateFile)

	// Test with environment variables
	t.Setenv("BOT_TOKEN", "123456:test-token")
	t.Setenv("CHAT_ID", "-1001234567890")
	t.Setenv("CPUS", "7800X3D, 5800X ,,")
	t.Setenv("GPUS", "4080")
	t.Setenv("DEFAULT_TIMEOUT", "30")
	t.Setenv("MAX_THREAD_AGE", "7")
	t.Setenv("FORUM_URL", "http://localhost:8080")
	t.Setenv("STATE_FILE", "/tmp/state.json")

	config = LoadConfig()
	assert.Equal(t, "123456:test-token", config.BotToken)
	assert.Equal(t, int64(-1001234567890), config.ChatID)
	assert.Equal(t, []string{"7800X3D", "5800X"}, config.CPUs)
	assert.Equal(t, []string{"4080"}, config.GPUs)
	assert.Equal(t, 30*time.Second, config.Timeout)
	assert.Equal(t, 7*24*time.Hour, config.MaxThreadAge)
	assert.Equal(t, "http://localhost:8080", config.ForumURL)
	assert.Equal(t, "/tmp/state.json", config.StateFile)
}

func TestValidate(t *testing.T) {
	valid := &Config{
		BotToken:     "123456:test-token",
		ChatID:       42,
		CPUs:         []string{"7800X3D"},
		Timeout:      60 * time.Second,
		MaxThreadAge: 14 * 24 * time.Hour,
	}
	assert.NoError(t, valid.Validate())

	testCases := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"missing bot token", func(c *Config) { c.BotToken = "" }},
		{"missing chat id", func(c *Config) { c.ChatID = 0 }},
		{"no keywords", func(c *Config) { c.CPUs = nil; c.GPUs = nil }},
		{"zero timeout", func(c *Config) { c.Timeout = 0 }},
		{"zero max age", func(c *Config) { c.MaxThreadAge = 0 }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := *valid
			tc.mutate(&cfg)
			err := cfg.Validate()
			assert.Error(t, err)
			assert.True(t, errors.IsType(err, errors.ErrorTypeConfiguration))
		})
	}

	// GPU keywords alone are enough
	cfg := *valid
	cfg.CPUs = nil
	cfg.GPUs = []string{"4080"}
	assert.NoError(t, cfg.Validate())
}
