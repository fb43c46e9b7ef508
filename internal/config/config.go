package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config holds all server configuration
type Config struct {
	HTTPAddress string
	LogLevel    string
}

// Load loads configuration from files and environment variables
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	// Configure environment variables before reading the config file
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	envMappings := map[string]string{
		"HTTPAddress": "HTTP_ADDRESS",
		"LogLevel":    "LOG_LEVEL",
	}

	for configKey, envVar := range envMappings {
		if err := v.BindEnv(configKey, envVar); err != nil {
			log.Warn().Err(err).Msgf("Failed to bind environment variable %s for %s", envVar, configKey)
		}
	}

	v.SetConfigName("mathdeck_config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.mathdeck")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		log.Debug().Msg("Config file not found, using environment variables and defaults")
	} else {
		log.Info().Msgf("Using config file: %s", v.ConfigFileUsed())
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("HTTPAddress", ":8080")
	v.SetDefault("LogLevel", "info")
}

func validateConfig(config *Config) error {
	if config.HTTPAddress == "" {
		return fmt.Errorf("HTTP_ADDRESS cannot be empty")
	}

	if _, err := zerolog.ParseLevel(config.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL %q: %w", config.LogLevel, err)
	}

	return nil
}
