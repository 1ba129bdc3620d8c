package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// applyEnv lets PAIRUP_* variables override file values.
func (c *Config) applyEnv() error {
	if value, ok := lookupEnv("PAIRUP_HISTORY_BACKEND"); ok {
		c.History.Backend = value
	}
	if value, ok := lookupEnv("PAIRUP_HISTORY_PATH"); ok {
		c.History.Path = value
	}
	if value, ok := lookupEnv("PAIRUP_REDIS_ADDR"); ok {
		c.History.RedisAddr = value
	}
	if value, ok := lookupEnv("PAIRUP_REDIS_PASSWORD"); ok {
		c.History.RedisPassword = value
	}
	if value, ok := lookupEnv("PAIRUP_LOG_LEVEL"); ok {
		c.Logging.Level = value
	}
	if value, ok := lookupEnv("PAIRUP_SEED"); ok {
		seed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("PAIRUP_SEED: %w", err)
		}
		c.Matching.Seed = seed
	}
	return nil
}

func lookupEnv(key string) (string, bool) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeMatching()
	if err := c.normalizeHistory(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		c.Paths.StateDir = defaultStateDir
	}
	if c.Paths.StateDir, err = expandPath(c.Paths.StateDir); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if c.Paths.MetricsFile, err = expandPath(strings.TrimSpace(c.Paths.MetricsFile)); err != nil {
		return fmt.Errorf("paths.metrics_file: %w", err)
	}
	return nil
}

func (c *Config) normalizeMatching() {
	c.Matching.RepeatPolicy = strings.ToLower(strings.TrimSpace(c.Matching.RepeatPolicy))
	if c.Matching.RepeatPolicy == "" {
		c.Matching.RepeatPolicy = defaultRepeatPolicy
	}
}

func (c *Config) normalizeHistory() error {
	c.History.Backend = strings.ToLower(strings.TrimSpace(c.History.Backend))
	if c.History.Backend == "" {
		c.History.Backend = defaultHistoryBack
	}
	c.History.RedisAddr = strings.TrimSpace(c.History.RedisAddr)
	c.History.RedisPrefix = strings.TrimSpace(c.History.RedisPrefix)
	if c.History.RedisPrefix == "" {
		c.History.RedisPrefix = defaultRedisPrefix
	}

	path := strings.TrimSpace(c.History.Path)
	if path == "" {
		switch c.History.Backend {
		case "json":
			path = filepath.Join(c.Paths.StateDir, "history.json")
		case "sqlite":
			path = filepath.Join(c.Paths.StateDir, "history.db")
		}
	}
	var err error
	if c.History.Path, err = expandPath(path); err != nil {
		return fmt.Errorf("history.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
