package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads the YAML config file, applies environment overrides and fills
// defaults. A missing file is not an error; env vars alone can carry a full
// configuration.
func Load(path string) (*AppConfig, error) {
	cfg := &AppConfig{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// fall through to env + defaults
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnvOverrides(cfg)
	applyDefaults(cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			cfg.Port = port
		}
	}
	for _, key := range []string{"DATABASE_URL", "DSN"} {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			cfg.DSN = v
			break
		}
	}
	if v := strings.TrimSpace(os.Getenv("REDIS_URL")); v != "" {
		cfg.RedisURL = v
	}
	if v := strings.TrimSpace(os.Getenv("NODE_ENV")); v != "" {
		cfg.Env = v
	}
	if v := strings.TrimSpace(os.Getenv("TZ")); v != "" {
		cfg.Timezone = v
	}
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Port <= 0 {
		cfg.Port = defaultPort
	}
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = defaultEnv
	}
	if strings.TrimSpace(cfg.Timezone) == "" {
		cfg.Timezone = defaultTimezone
	}
	if strings.TrimSpace(cfg.DSN) == "" {
		cfg.DSN = cfg.Database.DSNValue()
	}
	if cfg.Database.MaxOpenConns <= 0 {
		cfg.Database.MaxOpenConns = defaultMaxOpenConns
	}
	if cfg.Database.MaxIdleConns <= 0 {
		cfg.Database.MaxIdleConns = defaultMaxIdleConns
	}
	if strings.TrimSpace(cfg.Backup.Filename) == "" {
		cfg.Backup.Filename = DefaultBackupFilename
	}
	if strings.TrimSpace(cfg.Backup.Dir) == "" {
		cfg.Backup.Dir = "backups"
	}
	if strings.TrimSpace(cfg.AI.SystemPrompt) == "" {
		cfg.AI.SystemPrompt = "You are a helpful assistant. Be concise and clear in your responses. Do not use HTML tags in your replies, use plain text only."
	}
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool {
	return strings.EqualFold(strings.TrimSpace(c.Env), "development")
}

// EnabledAIProviders returns the providers usable by the chat proxy.
func (c *AppConfig) EnabledAIProviders() []AIProvider {
	out := make([]AIProvider, 0, len(c.AI.Providers))
	for _, p := range c.AI.Providers {
		if p.Enabled {
			out = append(out, p)
		}
	}
	return out
}
