package config

import (
	"os"
	"path/filepath"
	"time"
)

type Config struct {
	// StatePath is the persisted state file holding last-session history
	// and session root mappings.
	StatePath string `json:"state_path" mapstructure:"state_path"`

	// LastHistoryCap bounds the last-session stack; oldest entries are
	// evicted past it.
	LastHistoryCap int `json:"last_history_cap" mapstructure:"last_history_cap"`

	// External tool binaries, overridable for non-standard installs.
	ZellijBin string `json:"zellij_bin" mapstructure:"zellij_bin"`
	ZoxideBin string `json:"zoxide_bin" mapstructure:"zoxide_bin"`
	GitBin    string `json:"git_bin" mapstructure:"git_bin"`

	// DefaultLayout is passed to the multiplexer when creating sessions.
	// Empty means the multiplexer default.
	DefaultLayout string `json:"default_layout" mapstructure:"default_layout"`

	// ClonePath is the parent directory for clones when none is given on
	// the command line. Empty means the working directory.
	ClonePath string `json:"clone_path" mapstructure:"clone_path"`

	// CommandTimeout bounds non-interactive external tool calls. Attach and
	// create are interactive and never time out.
	CommandTimeout time.Duration `json:"command_timeout" mapstructure:"command_timeout"`

	Logging LoggingConfig `json:"logging" mapstructure:"logging"`
}

type LoggingConfig struct {
	Level string `json:"level" mapstructure:"level"`
	File  string `json:"file" mapstructure:"file"`
}

func DefaultConfig() Config {
	return Config{
		StatePath:      defaultStatePath(),
		LastHistoryCap: 50,
		ZellijBin:      "zellij",
		ZoxideBin:      "zoxide",
		GitBin:         "git",
		CommandTimeout: 5 * time.Second,
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

func defaultStatePath() string {
	if stateHome := os.Getenv("XDG_STATE_HOME"); stateHome != "" {
		return filepath.Join(stateHome, "zsesh", "state.json")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".zsesh-state.json"
	}
	return filepath.Join(home, ".local", "state", "zsesh", "state.json")
}

// DefaultConfigPath is where Load looks when no explicit path is given.
func DefaultConfigPath() string {
	if cfgHome := os.Getenv("XDG_CONFIG_HOME"); cfgHome != "" {
		return filepath.Join(cfgHome, "zsesh", "config.json")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "zsesh", "config.json")
}
