// Package config loads the wrokout TOML configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	DefaultRestSeconds   = 180
	DefaultNotifyCommand = "notify-send"
)

// Config represents ~/.wrokout/config.toml
type Config struct {
	DatabasePath         string `toml:"database_path"`
	User                 string `toml:"user"`
	RestSeconds          int    `toml:"rest_seconds"`
	Notifications        bool   `toml:"notifications"`
	DesktopNotifyCommand string `toml:"desktop_notify_command"`
	ReduceMotion         bool   `toml:"reduce_motion"`
	Log                  Log    `toml:"log"`
}

// Log contains logging configuration
type Log struct {
	Level    string `toml:"level"`
	File     string `toml:"file"`
	ToStdout bool   `toml:"to_stdout"`
	JSON     bool   `toml:"json"`
}

// Dir returns the wrokout data directory
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".wrokout"), nil
}

// DefaultPath returns the default config file location
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Defaults returns the configuration used when no file exists
func Defaults() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	return &Config{
		DatabasePath:         filepath.Join(dir, "wrokout.db"),
		RestSeconds:          DefaultRestSeconds,
		Notifications:        true,
		DesktopNotifyCommand: DefaultNotifyCommand,
		Log: Log{
			Level: "info",
			File:  filepath.Join(dir, "wrokout.log"),
		},
	}, nil
}

// Load reads the config file at path over the defaults. An empty path
// means the default location; a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg, err := Defaults()
	if err != nil {
		return nil, err
	}
	if path == "" {
		if path, err = DefaultPath(); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	if err := cfg.normalize(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) normalize() error {
	if c.RestSeconds < 0 {
		return fmt.Errorf("rest_seconds must not be negative, got %d", c.RestSeconds)
	}
	if c.RestSeconds == 0 {
		c.RestSeconds = DefaultRestSeconds
	}
	c.User = strings.TrimSpace(c.User)
	c.DesktopNotifyCommand = strings.TrimSpace(c.DesktopNotifyCommand)

	var err error
	if c.DatabasePath, err = expandHome(c.DatabasePath); err != nil {
		return err
	}
	if c.Log.File, err = expandHome(c.Log.File); err != nil {
		return err
	}
	return nil
}

// RestDuration returns the default rest period
func (c *Config) RestDuration() time.Duration {
	return time.Duration(c.RestSeconds) * time.Second
}

func expandHome(p string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(homeDir, strings.TrimPrefix(p, "~")), nil
}
