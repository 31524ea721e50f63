package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/healinghandsmipt/website_backend/pkg/constants"
)

var GlobalConf *Config

func ReadConfig(configPath string) (*Config, error) {
	viper.SetConfigName(constants.ConfigName)
	viper.SetConfigType(constants.ConfigFormat)
	viper.AddConfigPath(configPath)

	// Allow env vars to override config values.
	// e.g. HHPT_EMAIL_SMTP_HOST overrides email.smtp.host
	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	// The config file is optional in container environments where everything
	// arrives via env vars.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if os.Getenv(constants.EnvPrefix+"_SERVER_PORT") == "" {
				return nil, fmt.Errorf("error reading config file: %v", err)
			}
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %v", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

func MustReadConfig(path string) *Config {
	config, err := ReadConfig(path)
	if err != nil {
		panic(err)
	}

	GlobalConf = config

	return config
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.environment", "development")
	viper.SetDefault("site.name", "Healing Hands Physical Therapy Associates LLC")
	viper.SetDefault("email.smtp.port", 465)
	viper.SetDefault("email.smtp.use_tls", true)
	viper.SetDefault("email.smtp.timeout_seconds", 30)
	viper.SetDefault("contact.rate_limit.store", "memory")
	viper.SetDefault("contact.rate_limit.window_seconds", 15)
	viper.SetDefault("contact.rate_limit.prune_after_minutes", 60)
	viper.SetDefault("contact.rate_limit.prune_threshold", 5000)
	viper.SetDefault("notifications.cache_ttl_seconds", 60)
	viper.SetDefault("notifications.max_items", 3)
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("observability.service_name", "website_backend")
}
