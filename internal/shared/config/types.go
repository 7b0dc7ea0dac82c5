package config

import "time"

type APIConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	UserAgent      string `mapstructure:"user_agent"`
}

func (a *APIConfig) Timeout() time.Duration {
	if a.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.TimeoutSeconds) * time.Second
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
	// SourceLevel is the lowest level that gets a source location attached.
	SourceLevel string `mapstructure:"source_level"`
}

type CredentialsConfig struct {
	// Path of the YAML session file. Empty means the user config directory;
	// "memory" keeps the session for the running process only.
	Path string `mapstructure:"path"`
}

type DevServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}
