package app

import "strings"

// Config holds the entrypoint-level settings for an App instance. Project
// settings (blocks root, namespace) live in config.Model; these are the
// knobs the CLI exposes directly.
type Config struct {
	ThemeDir  string
	LogFormat string
	LogLevel  string
}

// NewConfig validates and normalizes an entrypoint configuration.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ThemeDir == "" {
		cfg.ThemeDir = "."
	}

	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	switch cfg.LogFormat {
	case "":
		cfg.LogFormat = "text"
	case "text", "json":
	default:
		return nil, &InvalidConfigError{Field: "log-format", Value: cfg.LogFormat, Allowed: "'text' or 'json'"}
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	switch cfg.LogLevel {
	case "":
		cfg.LogLevel = "info"
	case "debug", "info", "warn", "error":
	default:
		return nil, &InvalidConfigError{Field: "log-level", Value: cfg.LogLevel, Allowed: "'debug', 'info', 'warn', or 'error'"}
	}

	return &cfg, nil
}

// InvalidConfigError reports a configuration value outside its allowed set.
type InvalidConfigError struct {
	Field   string
	Value   string
	Allowed string
}

func (e *InvalidConfigError) Error() string {
	return "invalid " + e.Field + ": must be " + e.Allowed
}
