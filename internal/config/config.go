package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/listo/internal/models"
)

// AppName names the config directory and the default data directory
const AppName = "listo"

// Storage backends
const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendFile     = "file"
)

// Environment overrides
const (
	EnvBackend   = "LISTO_BACKEND"
	EnvDBPath    = "LISTO_DB_PATH"
	EnvDSN       = "LISTO_DSN"
	EnvDataDir   = "LISTO_DATA_DIR"
	EnvLocale    = "LISTO_LOCALE"
	EnvThemeFile = "LISTO_THEME_FILE"
)

// Config represents the application configuration
type Config struct {
	Storage     StorageConfig `yaml:"storage" toml:"storage"`
	Tasks       TasksConfig   `yaml:"tasks" toml:"tasks"`
	Locale      string        `yaml:"locale" toml:"locale"`
	KeyMappings KeyMappings   `yaml:"key_mappings" toml:"key_mappings"`
	ColorScheme ColorScheme   `yaml:"theme" toml:"theme"`
}

// StorageConfig selects and locates the persistence backend
type StorageConfig struct {
	Backend string `yaml:"backend" toml:"backend"`
	Path    string `yaml:"path" toml:"path"` // sqlite database file
	DSN     string `yaml:"dsn" toml:"dsn"`   // postgres connection string
	Dir     string `yaml:"dir" toml:"dir"`   // file backend directory

	// AutoMigrate creates the schema on startup. Nil means true.
	AutoMigrate *bool `yaml:"auto_migrate,omitempty" toml:"auto_migrate,omitempty"`
}

// Migrate reports whether the schema should be created on startup
func (s StorageConfig) Migrate() bool {
	return s.AutoMigrate == nil || *s.AutoMigrate
}

// TasksConfig holds task defaults
type TasksConfig struct {
	DefaultPriority string `yaml:"default_priority" toml:"default_priority"`
	ExportDir       string `yaml:"export_dir" toml:"export_dir"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: DefaultColorScheme(),
	}
	cfg.applyDefaults()
	return cfg
}

// Load loads config from the user's config directory.
// config.yaml wins over config.toml; with neither the defaults are used.
// Environment overrides are applied last.
func Load() (*Config, error) {
	cfg := &Config{}

	dir, err := Dir()
	if err == nil {
		if err := loadFile(cfg, dir); err != nil {
			return nil, err
		}
	}

	loadThemeFile(cfg)
	cfg.applyEnv()
	cfg.applyDefaults()

	return cfg, nil
}

// loadFile decodes the first config file found in dir
func loadFile(cfg *Config, dir string) error {
	yamlPath := filepath.Join(dir, "config.yaml")
	data, err := os.ReadFile(yamlPath)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parsing %s: %w", yamlPath, err)
		}
		return nil
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("reading %s: %w", yamlPath, err)
	}

	tomlPath := filepath.Join(dir, "config.toml")
	if _, err := os.Stat(tomlPath); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if _, err := toml.DecodeFile(tomlPath, cfg); err != nil {
		return fmt.Errorf("parsing %s: %w", tomlPath, err)
	}
	return nil
}

// loadThemeFile merges the theme from LISTO_THEME_FILE if set
func loadThemeFile(cfg *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}
	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		cfg.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// applyEnv overrides values from LISTO_* environment variables
func (c *Config) applyEnv() {
	override := func(dst *string, key string) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			*dst = v
		}
	}
	override(&c.Storage.Backend, EnvBackend)
	override(&c.Storage.Path, EnvDBPath)
	override(&c.Storage.DSN, EnvDSN)
	override(&c.Storage.Dir, EnvDataDir)
	override(&c.Locale, EnvLocale)
}

// Save saves the config as YAML to the user's config directory
func (c *Config) Save() error {
	dir, err := Dir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(dir, "config.yaml"), data, 0o644)
}

// Dir returns the config directory: $XDG_CONFIG_HOME/listo or ~/.config/listo
func Dir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, AppName), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", AppName), nil
}

// DataDir returns the default data directory ~/.listo, or ./.listo when
// the home directory is unknown
func DataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "." + AppName
	}
	return filepath.Join(homeDir, "."+AppName)
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Storage.Backend == "" {
		c.Storage.Backend = BackendSQLite
	}
	if c.Storage.Path == "" {
		c.Storage.Path = filepath.Join(DataDir(), "todo.db")
	}
	if c.Storage.Dir == "" {
		c.Storage.Dir = filepath.Join(DataDir(), "lists")
	}
	if c.Tasks.DefaultPriority == "" {
		c.Tasks.DefaultPriority = models.DefaultPriority
	}
	if c.Tasks.ExportDir == "" {
		c.Tasks.ExportDir = "."
	}
	if c.Locale == "" {
		c.Locale = "en"
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
