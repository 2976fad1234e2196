// Package config loads application configuration from environment
// variables and an optional config file.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all application settings.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	List     ListConfig     `mapstructure:"list"`
	Media    MediaConfig    `mapstructure:"media"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port     string `mapstructure:"port"`
	Env      string `mapstructure:"env"`
	LogLevel string `mapstructure:"log_level"`
}

// DatabaseConfig holds PostgreSQL settings.
type DatabaseConfig struct {
	URL           string `mapstructure:"url"`
	MigrationsDir string `mapstructure:"migrations_dir"`
}

// ListConfig holds pagination settings.
type ListConfig struct {
	// PageSize is the fixed number of records per list page (TOTAL_ON_PAGE).
	PageSize int `mapstructure:"page_size"`
}

// MediaConfig holds uploaded file storage settings.
type MediaConfig struct {
	// Dir is the directory uploaded images are written to.
	Dir string `mapstructure:"dir"`

	// BaseURL is the public URL prefix image paths are resolved against.
	BaseURL string `mapstructure:"base_url"`
}

// Load reads configuration from environment variables (ADBOARD_ prefix)
// and an optional config.yaml in the working directory.
// Environment variables take precedence over file values.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.env", "development")
	v.SetDefault("server.log_level", "info")
	v.SetDefault("database.migrations_dir", "migrations")
	v.SetDefault("list.page_size", 10)
	v.SetDefault("media.dir", "media")
	v.SetDefault("media.base_url", "/media")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		// Config file is optional; env-only deployments are fine.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	v.SetEnvPrefix("ADBOARD")
	v.AutomaticEnv()
	bindEnvAliases(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// bindEnvAliases maps conventional flat env names onto nested keys.
func bindEnvAliases(v *viper.Viper) {
	_ = v.BindEnv("server.port", "APP_PORT")
	_ = v.BindEnv("server.env", "APP_ENV")
	_ = v.BindEnv("server.log_level", "LOG_LEVEL")
	_ = v.BindEnv("database.url", "DATABASE_URL")
	_ = v.BindEnv("database.migrations_dir", "MIGRATIONS_DIR")
	_ = v.BindEnv("list.page_size", "TOTAL_ON_PAGE")
	_ = v.BindEnv("media.dir", "MEDIA_DIR")
	_ = v.BindEnv("media.base_url", "MEDIA_URL")
}

// Validate checks settings that have no sensible defaults.
func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return fmt.Errorf("database url is required (DATABASE_URL)")
	}
	if c.List.PageSize < 1 {
		return fmt.Errorf("page size must be at least 1, got %d", c.List.PageSize)
	}
	return nil
}
