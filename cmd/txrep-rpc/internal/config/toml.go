package config

import (
	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
)

// loadConfigPath applies the TOML file at cfg.ConfigPath. Options already
// pinned by a flag or environment variable are left alone. Unknown keys are
// rejected so typos do not silently fall back to defaults.
func (cfg *Config) loadConfigPath(explicit map[*Option]bool) error {
	tree, err := toml.LoadFile(cfg.ConfigPath)
	if err != nil {
		return err
	}

	byKey := map[string]*Option{}
	for _, option := range cfg.options() {
		if key, ok := option.getTomlKey(); ok {
			byKey[key] = option
		}
	}

	for _, key := range tree.Keys() {
		option, ok := byKey[key]
		if !ok {
			return errors.Errorf("invalid config: unexpected entry %q", key)
		}
		if explicit[option] {
			continue
		}
		if err := option.setValue(tree.Get(key)); err != nil {
			return err
		}
	}
	return nil
}
