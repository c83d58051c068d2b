package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Environment variables read by actstore.
const (
	EnvConfig   = "ACTSTORE_CONFIG"
	EnvDB       = "ACTSTORE_DB"
	EnvEditor   = "ACT_EDITOR"
	EnvLogLevel = "ACTSTORE_LOG_LEVEL"
	EnvNoColor  = "NO_COLOR"
)

// Config holds all actstore configuration.
type Config struct {
	Database DatabaseConfig `toml:"database"`
	Actions  ActionsConfig  `toml:"actions"`
	UI       UIConfig       `toml:"ui"`
	Log      LogConfig      `toml:"log"`
}

type DatabaseConfig struct {
	Path string `toml:"path"` // empty means ~/actstore.db
}

type ActionsConfig struct {
	Editor string `toml:"editor"` // ACT_EDITOR wins when set
	Opener string `toml:"opener"` // default-handler launcher, e.g. "xdg-open"
	Shell  string `toml:"shell"`
}

type UIConfig struct {
	Color string `toml:"color"` // "auto" or "never"
}

type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		Actions: ActionsConfig{
			Opener: DefaultOpener(runtime.GOOS),
			Shell:  "sh",
		},
		UI: UIConfig{
			Color: "auto",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// DefaultOpener returns the platform's default-handler launcher.
func DefaultOpener(goos string) string {
	switch goos {
	case "darwin":
		return "open"
	case "windows":
		return "rundll32 url.dll,FileProtocolHandler"
	default:
		return "xdg-open"
	}
}

// DefaultPath returns the config file path: $ACTSTORE_CONFIG, else
// ~/.config/actstore/config.toml.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvConfig); p != "" {
		return p, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Dir returns ~/.config/actstore.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".config", "actstore"), nil
}

// Load reads the env file and the config file from their default
// locations, then applies environment overrides. Missing files are not
// an error.
func Load() (Config, error) {
	if dir, err := Dir(); err == nil {
		if err := LoadEnvFile(filepath.Join(dir, "env")); err != nil {
			return Config{}, err
		}
	}

	path, err := DefaultPath()
	if err != nil {
		return Config{}, err
	}
	cfg, err := LoadFrom(path)
	if err != nil {
		return Config{}, err
	}
	cfg.ApplyEnv()
	return cfg, nil
}

// LoadFrom decodes the TOML file at path over Default(). A missing file
// yields the defaults.
func LoadFrom(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadEnvFile loads KEY=value pairs from path into the process
// environment. Variables already set are left alone.
func LoadEnvFile(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overlays environment variables on c.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvDB); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv(EnvEditor); v != "" {
		c.Actions.Editor = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if _, ok := os.LookupEnv(EnvNoColor); ok {
		c.UI.Color = "never"
	}
}

// DBPath returns the configured database path, falling back to ~/actstore.db.
func (c *Config) DBPath() (string, error) {
	if c.Database.Path != "" {
		return c.Database.Path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, "actstore.db"), nil
}
