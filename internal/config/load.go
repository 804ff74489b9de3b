package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from an optional config file and environment
// variables. Environment variables (prefix ARENAPP_, nested keys joined with
// underscores, e.g. ARENAPP_SERVER_PORT) take precedence over file values,
// which take precedence over defaults.
// Returns a populated, validated Config or an error.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Defaults mirror the layout of a checkout: word lists in ./data,
	// session records in ./performance, review log next to the binary.
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.static_dir", "web")
	v.SetDefault("server.cors_allowed_origins", []string{"*"})
	v.SetDefault("catalog.data_dir", "data")
	v.SetDefault("storage.performance_dir", "performance")
	v.SetDefault("storage.review_log_path", "words_needs_to_check.log")

	v.SetEnvPrefix("ARENAPP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// A missing config file is fine; anything else (e.g. malformed YAML)
	// is a startup failure.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
