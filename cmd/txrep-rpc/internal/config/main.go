// Package config manages the txrep-rpc daemon configuration. Values come
// from CLI flags, environment variables, and an optional TOML file, in that
// precedence order.
package config

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

// LogFormat selects the daemon's log record encoding.
type LogFormat int

const (
	LogFormatText LogFormat = iota
	LogFormatJSON
)

func (f LogFormat) String() string {
	if f == LogFormatJSON {
		return "json"
	}
	return "text"
}

// Config holds the daemon configuration.
type Config struct {
	ConfigPath string

	Endpoint            string
	AdminEndpoint       string
	LogLevel            logrus.Level
	LogFormat           LogFormat
	RequestReadTimeout  time.Duration
	ShutdownGracePeriod time.Duration

	flagset      *pflag.FlagSet
	optionsCache Options
}

// SetValues resolves every option. Environment variables and CLI flags are
// applied first and pin their options; the config file then fills whatever
// remains at its default.
func (cfg *Config) SetValues(lookupEnv func(string) (string, bool)) error {
	if err := cfg.loadDefaults(); err != nil {
		return err
	}

	explicit := map[*Option]bool{}
	if err := cfg.loadEnv(lookupEnv, explicit); err != nil {
		return err
	}
	if err := cfg.loadFlags(explicit); err != nil {
		return err
	}

	if cfg.ConfigPath != "" {
		if err := cfg.loadConfigPath(explicit); err != nil {
			return errors.Wrap(err, "reading config file")
		}
	}
	return nil
}

func (cfg *Config) loadDefaults() error {
	for _, option := range cfg.options() {
		if option.DefaultValue == nil {
			continue
		}
		if err := option.setValue(option.DefaultValue); err != nil {
			return err
		}
	}
	return nil
}

func (cfg *Config) loadEnv(lookupEnv func(string) (string, bool), explicit map[*Option]bool) error {
	for _, option := range cfg.options() {
		key, ok := option.getEnvKey()
		if !ok {
			continue
		}
		value, ok := lookupEnv(key)
		if !ok {
			continue
		}
		if err := option.setValue(value); err != nil {
			return err
		}
		explicit[option] = true
	}
	return nil
}

func (cfg *Config) loadFlags(explicit map[*Option]bool) error {
	for _, option := range cfg.options() {
		if option.flag == nil || !option.flag.Changed {
			continue
		}
		value, err := option.GetFlag(cfg.flagset)
		if err != nil {
			return err
		}
		if err := option.setValue(value); err != nil {
			return err
		}
		explicit[option] = true
	}
	return nil
}

// Validate runs every option's validator.
func (cfg *Config) Validate() error {
	for _, option := range cfg.options() {
		if option.Validate == nil {
			continue
		}
		if err := option.Validate(option); err != nil {
			return errors.Wrap(err, "invalid config value")
		}
	}
	return nil
}
