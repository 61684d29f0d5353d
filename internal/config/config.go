// Package config loads and validates the wordbook configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config is the root configuration for the wordbook CLI.
type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Exports ExportsConfig `mapstructure:"exports"`
	Lookup  LookupConfig  `mapstructure:"lookup"`
}

// StorageConfig selects and configures the persistence backend.
type StorageConfig struct {
	Backend  string         `mapstructure:"backend" validate:"oneof=file mysql"`
	File     FileConfig     `mapstructure:"file"`
	Database DatabaseConfig `mapstructure:"database"`
}

// FileConfig configures the JSON file backend.
type FileConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// DatabaseConfig configures the MySQL backend.
type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

// ExportsConfig configures where export files are written.
type ExportsConfig struct {
	Directory string `mapstructure:"directory" validate:"required"`
}

// LookupConfig configures the online dictionary lookup.
type LookupConfig struct {
	CacheDirectory string `mapstructure:"cache_directory"`
	Host           string `mapstructure:"host"`
	Key            string `mapstructure:"key"`
}

// ConfigLoader binds a viper instance with the config validator.
type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

// NewConfigLoader creates a loader for the given config file. An empty
// configFile falls back to config.yml in the working directory or under
// $HOME/.config/wordbook.
func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/wordbook")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

// Load reads, unmarshals, and validates the configuration.
func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	dataDir := defaultDataDirectory()
	v.SetDefault("storage.backend", "file")
	v.SetDefault("storage.file.path", filepath.Join(dataDir, "dictionary.json"))
	v.SetDefault("storage.database.host", "localhost")
	v.SetDefault("storage.database.port", 3306)
	v.SetDefault("storage.database.database", "wordbook")
	v.SetDefault("storage.database.username", "wordbook")
	v.SetDefault("exports.directory", ".")
	v.SetDefault("lookup.cache_directory", filepath.Join(dataDir, "lookups"))

	// Bind lookup API credentials to environment variables only (not from config file)
	if err := v.BindEnv("lookup.host", "RAPID_API_HOST"); err != nil {
		return nil, fmt.Errorf("failed to bind RAPID_API_HOST environment variable: %w", err)
	}
	if err := v.BindEnv("lookup.key", "RAPID_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind RAPID_API_KEY environment variable: %w", err)
	}

	// Bind database password to environment variable
	if err := v.BindEnv("storage.database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}

// defaultDataDirectory resolves the per-user data directory, falling back to
// the working directory when the home directory is unknown.
func defaultDataDirectory() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "share", "wordbook")
}
