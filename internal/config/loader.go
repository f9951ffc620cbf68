package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Load reads the config file at path, falling back to the default location
// and then to defaults when no file exists. Environment variables prefixed
// with ZSESH_ override file values.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath()
	}

	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	v.SetEnvPrefix("ZSESH")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.LastHistoryCap <= 0 {
		cfg.LastHistoryCap = DefaultConfig().LastHistoryCap
	}
	return cfg, nil
}
