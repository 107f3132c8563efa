// Package config loads the anvil configuration from the user's dot dir.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Runner backend names accepted in the config file.
const (
	RunnerExec = "exec" // run builds inline through the shell
	RunnerTmux = "tmux" // hand builds to a tmux session
)

// Config is the flat anvil configuration.
type Config struct {
	RecipeFile      string `json:"recipe_file,omitempty"`      // path to the recipe store
	Runner          string `json:"runner,omitempty"`           // "exec" or "tmux"
	TmuxSession     string `json:"tmux_session,omitempty"`     // session name for the tmux runner
	HistoryDisabled bool   `json:"history_disabled,omitempty"` // skip the build history ledger
	HistoryDB       string `json:"history_db,omitempty"`       // path to the history database
}

// Load reads ~/.anvil/config.json. A missing file yields the defaults.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	return LoadFrom(filepath.Join(home, ".anvil", "config.json"))
}

// LoadFrom reads the config at an explicit path, applying defaults for
// absent fields.
func LoadFrom(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the rest of the program cannot act on.
func (c *Config) Validate() error {
	switch c.Runner {
	case RunnerExec, RunnerTmux:
		return nil
	default:
		return fmt.Errorf("unknown runner %q (want %q or %q)", c.Runner, RunnerExec, RunnerTmux)
	}
}

func defaults() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return &Config{
		RecipeFile:  filepath.Join(home, ".anvil", "recipes"),
		Runner:      RunnerExec,
		TmuxSession: "anvil",
		HistoryDB:   filepath.Join(home, ".anvil", "anvil.db"),
	}
}
