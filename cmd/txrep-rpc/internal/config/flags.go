package config

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// AddFlags adds the CLI flags of every option to the command so they show
// up in its --help output.
func (cfg *Config) AddFlags(cmd *cobra.Command) error {
	cfg.flagset = cmd.PersistentFlags()
	for _, option := range cfg.options() {
		if err := option.AddFlag(cfg.flagset); err != nil {
			return err
		}
	}
	return nil
}

// AddFlag adds a CLI flag for this option to the given flagset.
func (o *Option) AddFlag(flagset *pflag.FlagSet) error {
	// options without a name have no flag representation
	if len(o.Name) == 0 {
		return nil
	}
	// options with a custom parser are surfaced as string flags
	if o.CustomSetValue != nil {
		if o.DefaultValue == nil {
			o.DefaultValue = ""
		}
		flagset.String(o.Name, fmt.Sprint(o.DefaultValue), o.UsageText())
		o.flag = flagset.Lookup(o.Name)
		return nil
	}

	// infer the flag type from the type of the ConfigKey
	switch o.ConfigKey.(type) {
	case *bool:
		flagset.Bool(o.Name, o.DefaultValue.(bool), o.UsageText())
	case *time.Duration:
		flagset.Duration(o.Name, o.DefaultValue.(time.Duration), o.UsageText())
	case *int:
		flagset.Int(o.Name, o.DefaultValue.(int), o.UsageText())
	case *uint32:
		flagset.Uint32(o.Name, o.DefaultValue.(uint32), o.UsageText())
	case *uint64:
		flagset.Uint64(o.Name, o.DefaultValue.(uint64), o.UsageText())
	case *string:
		if o.DefaultValue == nil {
			o.DefaultValue = ""
		}
		flagset.String(o.Name, o.DefaultValue.(string), o.UsageText())
	case *[]string:
		if o.DefaultValue == nil {
			o.DefaultValue = []string{}
		}
		flagset.StringSlice(o.Name, o.DefaultValue.([]string), o.UsageText())
	default:
		return fmt.Errorf("unexpected option type: %T", o.ConfigKey)
	}

	o.flag = flagset.Lookup(o.Name)
	return nil
}

// GetFlag reads the value of this option's flag from the flagset. The type
// switch must match AddFlag above.
func (o *Option) GetFlag(flagset *pflag.FlagSet) (interface{}, error) {
	if o.CustomSetValue != nil {
		return flagset.GetString(o.Name)
	}

	switch o.ConfigKey.(type) {
	case *bool:
		return flagset.GetBool(o.Name)
	case *time.Duration:
		return flagset.GetDuration(o.Name)
	case *int:
		return flagset.GetInt(o.Name)
	case *uint32:
		return flagset.GetUint32(o.Name)
	case *uint64:
		return flagset.GetUint64(o.Name)
	case *string:
		return flagset.GetString(o.Name)
	case *[]string:
		return flagset.GetStringSlice(o.Name)
	default:
		return nil, fmt.Errorf("unexpected option type: %T", o.ConfigKey)
	}
}

// UsageText returns the help text of the flag, including the environment
// variable override when one exists.
func (o *Option) UsageText() string {
	envVar, hasEnvVar := o.getEnvKey()
	if hasEnvVar {
		return fmt.Sprintf("%s (%s)", o.Usage, envVar)
	}
	return o.Usage
}
