package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	sharedConfig "github.com/onlyfix/admin/internal/shared/config"
)

type Config struct {
	API         sharedConfig.APIConfig         `mapstructure:"api"`
	Logger      sharedConfig.LoggerConfig      `mapstructure:"logger"`
	Credentials sharedConfig.CredentialsConfig `mapstructure:"credentials"`
	DevServer   sharedConfig.DevServerConfig   `mapstructure:"dev_server"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load reads an optional YAML file and ONLYFIX_* environment variables.
// An explicit configPath must exist; the default search locations may be empty.
func Load(configPath string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("./configs")
		v.AddConfigPath("$HOME/.config/onlyfix-admin")
	}

	v.SetEnvPrefix("ONLYFIX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.API.BaseURL = strings.TrimRight(config.API.BaseURL, "/")

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", "http://onlyfix.local")
	v.SetDefault("api.timeout_seconds", 30)
	v.SetDefault("api.user_agent", "onlyfix-admin")

	v.SetDefault("logger.level", "warn")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stderr")
	v.SetDefault("logger.source_level", "warn")

	v.SetDefault("credentials.path", "")

	v.SetDefault("dev_server.host", "127.0.0.1")
	v.SetDefault("dev_server.port", 8089)
}
