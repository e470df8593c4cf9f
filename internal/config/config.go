package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr           string        `yaml:"addr"`
	APITimeout     time.Duration `yaml:"timeout"`
	DatabasePath   string        `yaml:"database_path"`
	MigrateOnStart bool          `yaml:"migrate_on_start"`
	SeedOnStart    bool          `yaml:"seed_on_start"`
	Log            LogConfig     `yaml:"log"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// LoadConfig builds a Config from defaults and TRIVIA_* environment
// variables, then overlays the YAML file at path when path is not empty.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Addr:           getEnv("TRIVIA_ADDR", ":8080"),
		APITimeout:     15 * time.Second,
		DatabasePath:   getEnv("TRIVIA_DATABASE_PATH", "trivia.db"),
		MigrateOnStart: getEnvBool("TRIVIA_MIGRATE_ON_START", true),
		SeedOnStart:    getEnvBool("TRIVIA_SEED_ON_START", true),
		Log: LogConfig{
			Level:  getEnv("TRIVIA_LOG_LEVEL", "info"),
			Format: getEnv("TRIVIA_LOG_FORMAT", "json"),
		},
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	}

	return cfg, nil
}

// Validate reports the first setting the server cannot start with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return errors.New("addr must not be empty")
	}
	if strings.TrimSpace(c.DatabasePath) == "" {
		return errors.New("database_path must not be empty")
	}
	if c.APITimeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.APITimeout)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text, got %q", c.Log.Format)
	}

	return nil
}

// SlogLevel parses Level; an empty level means info.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	if l.Level == "" {
		return slog.LevelInfo, nil
	}

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return lvl, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}

func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// NewLogger builds the process logger described by the config, writing to w.
func (l LogConfig) NewLogger(w io.Writer) (*slog.Logger, error) {
	lvl, err := l.SlogLevel()
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(l.Format, "text") {
		return slog.New(slog.NewTextHandler(w, opts)), nil
	}
	return slog.New(slog.NewJSONHandler(w, opts)), nil
}
