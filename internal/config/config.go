package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the rental desk settings. Values come from the TOML file and
// may be overridden by RENTDESK_* environment variables.
type Config struct {
	APIHost        string        `env:"RENTDESK_API_HOST"`
	RequestTimeout time.Duration `env:"RENTDESK_REQUEST_TIMEOUT"`
	Locale         string        `env:"RENTDESK_LOCALE"`
	LogDir         string        `env:"RENTDESK_LOG_DIR"`
	HealthInterval time.Duration `env:"RENTDESK_HEALTH_INTERVAL"`
	OTelEndpoint   string        `env:"RENTDESK_OTEL_ENDPOINT"`
}

const (
	defaultConfigPath     = "~/.config/rentdesk/config.toml"
	defaultLogDir         = "~/.local/share/rentdesk/logs"
	defaultAPIHost        = "http://dvd-api.local"
	defaultLocale         = "es"
	defaultRequestTimeout = 10 * time.Second
	defaultHealthInterval = 15 * time.Second
	logFileName           = "rentdesk.log"
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		APIHost:        defaultAPIHost,
		RequestTimeout: defaultRequestTimeout,
		Locale:         defaultLocale,
		LogDir:         mustExpand(defaultLogDir),
		HealthInterval: defaultHealthInterval,
	}
}

// Load reads the config file, falling back to defaults when it is missing,
// then applies environment overrides.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := loadFile(resolved, &cfg); err != nil {
		return Config{}, err
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIHost        string `toml:"api_host"`
		RequestTimeout string `toml:"request_timeout"`
		Locale         string `toml:"locale"`
		LogDir         string `toml:"log_dir"`
		HealthInterval string `toml:"health_interval"`
		OTelEndpoint   string `toml:"otel_endpoint"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	cfg.APIHost = strings.TrimSpace(raw.APIHost)
	cfg.Locale = strings.TrimSpace(raw.Locale)
	cfg.LogDir = strings.TrimSpace(raw.LogDir)
	cfg.OTelEndpoint = strings.TrimSpace(raw.OTelEndpoint)

	if v := strings.TrimSpace(raw.RequestTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse config: request_timeout: %w", err)
		}
		cfg.RequestTimeout = d
	}
	if v := strings.TrimSpace(raw.HealthInterval); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse config: health_interval: %w", err)
		}
		cfg.HealthInterval = d
	}
	return nil
}

// normalize fills empty fields with defaults and expands the log dir.
func (c *Config) normalize() {
	c.APIHost = strings.TrimSpace(c.APIHost)
	if c.APIHost == "" {
		c.APIHost = defaultAPIHost
	}
	c.Locale = strings.ToLower(strings.TrimSpace(c.Locale))
	if c.Locale == "" {
		c.Locale = defaultLocale
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = defaultRequestTimeout
	}
	// Zero disables the health poller.
	if c.HealthInterval < 0 {
		c.HealthInterval = 0
	}
	c.OTelEndpoint = strings.TrimSpace(c.OTelEndpoint)
	c.LogDir = strings.TrimSpace(c.LogDir)
	if c.LogDir == "" {
		c.LogDir = defaultLogDir
	}
	c.LogDir = mustExpand(c.LogDir)
}

// LogPath returns the path of the client's own log file.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.LogDir) == "" {
		return mustExpand(defaultLogDir + "/" + logFileName)
	}
	return filepath.Join(c.LogDir, logFileName)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
