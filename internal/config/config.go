// Package config loads runtime configuration from a YAML file and
// GYMDESK_-prefixed environment variables.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Database  DatabaseConfig  `mapstructure:"database"`
	Email     EmailConfig     `mapstructure:"email"`
	Reminders RemindersConfig `mapstructure:"reminders"`
}

// DatabaseConfig locates the SQLite database file.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// EmailConfig selects and configures the mail provider.
type EmailConfig struct {
	Provider string `mapstructure:"provider"` // "resend" or "noop"
	APIKey   string `mapstructure:"api_key"`
	From     string `mapstructure:"from"`
}

// RemindersConfig tunes the attendance-reminder sweep. AfterDays of 0 means
// the threshold stored in the settings collection applies.
type RemindersConfig struct {
	AfterDays int `mapstructure:"after_days"`
}

// Load reads configuration from config.yaml in path, overridden by
// environment variables (GYMDESK_DATABASE_PATH, GYMDESK_EMAIL_API_KEY, ...).
// A missing config file is not an error; defaults and env vars apply.
func Load(path string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("GYMDESK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("database.path", "gymdesk.db")
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.from", "Gymdesk <noreply@gymdesk.local>")
	v.SetDefault("reminders.after_days", 0)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, err
	}
	return config, nil
}
