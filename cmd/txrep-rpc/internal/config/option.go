package config

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// Options is a bindable list of command line options.
type Options []*Option

// Option describes a single configuration option. Values are resolved in
// precedence order: CLI flag, environment variable, config file entry,
// default.
type Option struct {
	// Name of the CLI flag, e.g. "log-level".
	Name string
	// EnvVar is the environment variable override. Defaults to the flag
	// name upper-cased with dashes replaced by underscores; "-" disables
	// the environment variable.
	EnvVar string
	// TomlKey is the config file key. Defaults to the environment variable
	// name; "-" or "_" disables configuration from the file.
	TomlKey string
	// Usage is the help text of the CLI flag.
	Usage string
	// ConfigKey is a pointer to the Config field this option populates.
	ConfigKey interface{}
	// DefaultValue applies when no source provides a value.
	DefaultValue interface{}
	// CustomSetValue overrides the type-inferred parser for this option.
	CustomSetValue func(*Option, interface{}) error
	// Validate is an optional post-parse check.
	Validate func(*Option) error

	flag *pflag.Flag
}

func (o Option) getEnvKey() (string, bool) {
	if o.EnvVar == "-" {
		return "", false
	}
	if o.EnvVar != "" {
		return o.EnvVar, true
	}
	if o.Name == "" {
		return "", false
	}
	return strings.ToUpper(strings.ReplaceAll(o.Name, "-", "_")), true
}

func (o Option) getTomlKey() (string, bool) {
	if o.TomlKey == "-" || o.TomlKey == "_" {
		return "", false
	}
	if o.TomlKey != "" {
		return o.TomlKey, true
	}
	if envVar, ok := o.getEnvKey(); ok {
		return envVar, true
	}
	if o.Name != "" {
		return strings.ToUpper(strings.ReplaceAll(o.Name, "-", "_")), true
	}
	return "", false
}

func (o *Option) setValue(i interface{}) error {
	if o.CustomSetValue != nil {
		return o.CustomSetValue(o, i)
	}
	parser, ok := parsers[reflect.ValueOf(o.ConfigKey).Elem().Type()]
	if !ok {
		return fmt.Errorf("no parser for flag %s", o.Name)
	}
	return parser(o, i)
}

var parsers = map[reflect.Type]func(*Option, interface{}) error{
	reflect.TypeOf(false):           parseBool,
	reflect.TypeOf(int(0)):          parseInt,
	reflect.TypeOf(uint32(0)):       parseUint32,
	reflect.TypeOf(uint64(0)):       parseUint,
	reflect.TypeOf(""):              parseString,
	reflect.TypeOf([]string(nil)):   parseStringSlice,
	reflect.TypeOf(time.Duration(0)): parseDuration,
}

// required rejects zero values.
func required(option *Option) error {
	if !reflect.ValueOf(option.ConfigKey).Elem().IsZero() {
		return nil
	}
	return fmt.Errorf("%s is required", option.Name)
}

// positive rejects zero and negative numeric values.
func positive(option *Option) error {
	switch v := reflect.ValueOf(option.ConfigKey).Elem(); v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if v.Int() > 0 {
			return nil
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if v.Uint() > 0 {
			return nil
		}
	}
	return fmt.Errorf("%s must be positive", option.Name)
}
