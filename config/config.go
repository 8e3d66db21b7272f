package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// ENV_PREFIX prefixes every environment variable read by Load.
const ENV_PREFIX = "BIKES"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const DATASET_RESOURCE = "all_data.csv"

// Config represents the complete application configuration.
// Leaf fields must not carry an envconfig tag: a tagged field also falls back to the bare name (PATH, ADDR).
type Config struct {
	Server  ServerConfig
	Dataset DatasetConfig
	Redis   RedisConfig
	Warmer  WarmerConfig
	Log     LogConfig
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Addr            string        `split_words:"true" default:":8080"`
	ShutdownTimeout time.Duration `split_words:"true" default:"5s"`
}

// DatasetConfig locates the hourly rentals CSV; Path may be an http(s) URL.
type DatasetConfig struct {
	Path            string        `split_words:"true"`
	DownloadTimeout time.Duration `split_words:"true" default:"30s"`
}

// RedisConfig contains the view cache configuration; when disabled an in-memory cache is used.
type RedisConfig struct {
	Enabled  bool          `split_words:"true" default:"false"`
	Addr     string        `split_words:"true" default:"redis:6379"`
	Password string        `split_words:"true"`
	DB       int           `split_words:"true" default:"0"`
	TTL      time.Duration `split_words:"true" default:"30m"`
}

// WarmerConfig controls the periodic cache warm-up; Interval 0 disables it.
type WarmerConfig struct {
	Interval time.Duration `split_words:"true" default:"15m"`
}

type LogConfig struct {
	Debug bool `split_words:"true" default:"false"`
}

// Load reads the configuration from BIKES_* environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ENV_PREFIX, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}
	if cfg.Dataset.Path == "" {
		cfg.Dataset.Path = GetResourcePath(DATASET_RESOURCE)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server address is required")
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("redis address is required when redis is enabled")
	}
	if c.Redis.TTL < 0 || c.Warmer.Interval < 0 {
		return fmt.Errorf("durations must not be negative")
	}
	return nil
}

// IsRemote reports whether the dataset path is an http(s) URL.
func (d DatasetConfig) IsRemote() bool {
	return strings.HasPrefix(d.Path, "http://") || strings.HasPrefix(d.Path, "https://")
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resourceFile string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resourceFile)
}
