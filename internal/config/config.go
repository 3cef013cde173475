// Package config handles the XDG configuration directory, environment
// overrides and debug logging.
package config

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
)

const (
	// AppName is the application directory name.
	AppName = "dashboard"

	// SeedFile is the optional starting-state filename.
	SeedFile = "seed.yaml"

	// EnvConfigDir overrides the configuration directory.
	EnvConfigDir = "DASHBOARD_CONFIG_DIR"

	// EnvDebug enables debug logging when set to a true value.
	EnvDebug = "DASHBOARD_DEBUG"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool

	// Logger receives debug output. Nil discards.
	Logger *log.Logger
}

// New creates a new Config with the default or specified config directory.
// If configDir is empty, uses $DASHBOARD_CONFIG_DIR, then
// XDG_CONFIG_HOME/dashboard or $HOME/.config/dashboard.
func New(configDir string) (*Config, error) {
	dir := configDir
	// Environment override comes before the XDG default
	if dir == "" {
		dir = os.Getenv(EnvConfigDir)
	}
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{Dir: dir, Debug: envBool(EnvDebug)}, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// SeedPath returns the path to the seed file.
func (c *Config) SeedPath() string {
	return filepath.Join(c.Dir, SeedFile)
}

// HasSeed checks if the seed file exists.
func (c *Config) HasSeed() bool {
	_, err := os.Stat(c.SeedPath())
	return err == nil
}

// SetLogOutput routes debug logs to w when Debug is set.
func (c *Config) SetLogOutput(w io.Writer) {
	// Without --debug the logger stays silent
	if !c.Debug {
		w = io.Discard
	}
	c.Logger = log.New(w, "debug: ", 0)
}

// Debugf writes a debug log line.
func (c *Config) Debugf(format string, args ...any) {
	if c == nil || c.Logger == nil {
		return
	}
	c.Logger.Printf(format, args...)
}

func envBool(name string) bool {
	v, err := strconv.ParseBool(os.Getenv(name))
	return err == nil && v
}
