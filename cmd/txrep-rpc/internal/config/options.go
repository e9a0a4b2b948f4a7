package config

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	defaultEndpoint            = "localhost:8000"
	defaultRequestReadTimeout  = 5 * time.Second
	defaultShutdownGracePeriod = 10 * time.Second
)

func (cfg *Config) options() Options {
	if cfg.optionsCache != nil {
		return cfg.optionsCache
	}
	cfg.optionsCache = Options{
		{
			Name:      "config-path",
			EnvVar:    "CONFIG_PATH",
			TomlKey:   "-",
			Usage:     "file path to the TOML configuration file",
			ConfigKey: &cfg.ConfigPath,
		},
		{
			Name:         "endpoint",
			Usage:        "endpoint to listen and serve the JSON-RPC API on",
			ConfigKey:    &cfg.Endpoint,
			DefaultValue: defaultEndpoint,
			Validate:     required,
		},
		{
			Name:      "admin-endpoint",
			Usage:     "admin endpoint serving /metrics and pprof; disabled when empty",
			ConfigKey: &cfg.AdminEndpoint,
		},
		{
			Name:         "log-level",
			Usage:        "minimum log severity (debug, info, warn, error) to log",
			ConfigKey:    &cfg.LogLevel,
			DefaultValue: logrus.InfoLevel,
			CustomSetValue: func(option *Option, i interface{}) error {
				switch v := i.(type) {
				case nil:
					return nil
				case logrus.Level:
					cfg.LogLevel = v
				case string:
					level, err := logrus.ParseLevel(v)
					if err != nil {
						return fmt.Errorf("could not parse %s: %q", option.Name, v)
					}
					cfg.LogLevel = level
				default:
					return fmt.Errorf("could not parse %s: %v", option.Name, i)
				}
				return nil
			},
		},
		{
			Name:         "log-format",
			Usage:        "log record format, text or json",
			ConfigKey:    &cfg.LogFormat,
			DefaultValue: LogFormatText,
			CustomSetValue: func(option *Option, i interface{}) error {
				switch v := i.(type) {
				case nil:
					return nil
				case LogFormat:
					cfg.LogFormat = v
				case string:
					switch v {
					case "text":
						cfg.LogFormat = LogFormatText
					case "json":
						cfg.LogFormat = LogFormatJSON
					default:
						return fmt.Errorf("could not parse %s: %q", option.Name, v)
					}
				default:
					return fmt.Errorf("could not parse %s: %v", option.Name, i)
				}
				return nil
			},
		},
		{
			Name:         "request-read-timeout",
			Usage:        "read timeout applied to JSON-RPC requests",
			ConfigKey:    &cfg.RequestReadTimeout,
			DefaultValue: defaultRequestReadTimeout,
			Validate:     positive,
		},
		{
			Name:         "shutdown-grace-period",
			Usage:        "time to wait for in-flight requests when shutting down",
			ConfigKey:    &cfg.ShutdownGracePeriod,
			DefaultValue: defaultShutdownGracePeriod,
			Validate:     positive,
		},
	}
	return cfg.optionsCache
}
