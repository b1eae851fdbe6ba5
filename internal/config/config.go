// Package config loads the YAML configuration shared by all commands.
// Command-line flags are applied on top by the commands package.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/penwyp/go-plan-compare/internal/core/model"
	"github.com/penwyp/go-plan-compare/internal/data/catalog"
	"gopkg.in/yaml.v3"
)

// Default locations, relative to the user's home directory
const (
	DefaultConfigFile      = "~/.go-plan-compare/config.yaml"
	DefaultLogFile         = "~/.go-plan-compare/logs/app.log"
	DefaultCacheDir        = "~/.go-plan-compare"
	DefaultPreferencesFile = "~/.go-plan-compare/preferences.json"
)

// Config holds all go-plan-compare configuration
type Config struct {
	Server   ServerConfig         `yaml:"server"`
	Catalog  catalog.SourceConfig `yaml:"catalog"`
	UI       UIConfig             `yaml:"ui"`
	Logging  LoggingConfig        `yaml:"logging"`
	CacheDir string               `yaml:"cache_dir"`
}

// ServerConfig configures the catalog HTTP server
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	RequestTimeout  time.Duration `yaml:"request_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	// AllowOrigin is sent as Access-Control-Allow-Origin; empty disables CORS headers
	AllowOrigin string `yaml:"allow_origin"`
	// Watch reloads a file catalog when it changes on disk
	Watch bool `yaml:"watch"`
}

// UIConfig configures the comparison views
type UIConfig struct {
	Budget         int           `yaml:"budget"`
	Type           string        `yaml:"type"`
	Theme          string        `yaml:"theme"`
	Gap            int           `yaml:"gap"`
	MinColumnWidth int           `yaml:"min_column_width"`
	RefreshRate    time.Duration `yaml:"refresh_rate"`
}

// LoggingConfig configures logging
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
	File   string `yaml:"file"`
}

// DefaultConfig returns the configuration used when no file is present
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Validate()
	return cfg
}

// Load reads a YAML config file on top of the defaults.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(ExpandPath(path))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML
func (c *Config) Save(path string) error {
	path = ExpandPath(path)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides
func (c *Config) applyEnvOverrides() {
	if port := os.Getenv("PORT"); port != "" {
		c.Server.Addr = ":" + port
	}
	if addr := os.Getenv("PLAN_COMPARE_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
	if url := os.Getenv("PLAN_COMPARE_CATALOG_URL"); url != "" {
		c.Catalog.Source = catalog.SourceRemote
		c.Catalog.URL = url
	}
	if level := os.Getenv("PLAN_COMPARE_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

// Validate fills defaults and checks the configuration is usable
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		c.Server.Addr = ":3000"
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10 * time.Second
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60 * time.Second
	}
	if c.Server.RequestTimeout == 0 {
		c.Server.RequestTimeout = 5 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}

	if c.Catalog.Source == "" {
		c.Catalog.Source = catalog.SourceEmbedded
	}
	if c.Catalog.URL == "" {
		c.Catalog.URL = "http://localhost:3000/plans"
	}
	if c.Catalog.Timeout == 0 {
		c.Catalog.Timeout = 30 * time.Second
	}
	switch c.Catalog.Source {
	case catalog.SourceEmbedded, catalog.SourceRemote:
	case catalog.SourceFile:
		if c.Catalog.Path == "" {
			return fmt.Errorf("catalog source 'file' requires catalog.path")
		}
		c.Catalog.Path = ExpandPath(c.Catalog.Path)
	default:
		return fmt.Errorf("invalid catalog source '%s': must be one of embedded, file, remote", c.Catalog.Source)
	}

	c.UI.Budget = model.ClampBudget(c.UI.Budget)
	if c.UI.Type == "" {
		c.UI.Type = string(model.FilterAll)
	}
	if _, err := model.ParseTypeFilter(c.UI.Type); err != nil {
		return err
	}
	switch c.UI.Theme {
	case "", "light", "dark":
	default:
		return fmt.Errorf("invalid theme '%s': must be light or dark", c.UI.Theme)
	}
	if c.UI.Gap <= 0 {
		c.UI.Gap = 1
	}
	if c.UI.MinColumnWidth <= 0 {
		c.UI.MinColumnWidth = 24
	}
	if c.UI.RefreshRate == 0 {
		c.UI.RefreshRate = 500 * time.Millisecond
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Logging.File == "" {
		c.Logging.File = DefaultLogFile
	}
	c.Logging.File = ExpandPath(c.Logging.File)

	if c.CacheDir == "" {
		c.CacheDir = DefaultCacheDir
	}
	c.CacheDir = ExpandPath(c.CacheDir)

	return nil
}

// TypeFilter returns the configured initial plan type filter
func (c *Config) TypeFilter() model.TypeFilter {
	f, err := model.ParseTypeFilter(c.UI.Type)
	if err != nil {
		return model.FilterAll
	}
	return f
}

// ExpandPath resolves a leading "~/" and makes the path absolute
func ExpandPath(path string) string {
	if path == "" {
		return path
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}
