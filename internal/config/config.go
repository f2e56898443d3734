// Package config loads layered settings: defaults, TOML files, .env and
// environment, then command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/llehouerou/mpdwaves/internal/daemon"
)

// Sync modes.
const (
	SyncLoop       = "loop"       // one loop refreshes on its tick
	SyncBackground = "background" // a goroutine refreshes a locked mirror
)

type Config struct {
	MPD     MPDConfig           `koanf:"mpd"`
	Sync    SyncConfig          `koanf:"sync"`
	Keys    map[string][]string `koanf:"keys"`    // action name -> keys
	Columns []ColumnConfig      `koanf:"columns"` // empty uses the built-in layout
	Icons   string              `koanf:"icons"`   // "nerd", "unicode", or "none"
	Log     LogConfig           `koanf:"log"`
	State   StateConfig         `koanf:"state"`
	Notify  NotifyConfig        `koanf:"notify"`
}

// MPDConfig locates the daemon. A host starting with "/" or "@" is a unix socket.
type MPDConfig struct {
	Host     string        `koanf:"host"`
	Port     int           `koanf:"port"`
	Password string        `koanf:"password"`
	Timeout  time.Duration `koanf:"timeout"`
}

// SyncConfig selects how the mirror is kept current.
type SyncConfig struct {
	Mode            string        `koanf:"mode"`
	TickRate        time.Duration `koanf:"tick_rate"`
	RefreshInterval time.Duration `koanf:"refresh_interval"`
	Idle            bool          `koanf:"idle"` // refresh on daemon idle events (background mode)
}

// ColumnConfig is one queue column; Width is a percentage.
type ColumnConfig struct {
	Field string `koanf:"field"`
	Width int    `koanf:"width"`
}

type LogConfig struct {
	File  string `koanf:"file"` // empty uses the XDG state dir
	Level string `koanf:"level"`
}

type StateConfig struct {
	Enabled bool   `koanf:"enabled"`
	Path    string `koanf:"path"` // empty uses the XDG data dir
}

// NotifyConfig controls desktop notifications on track change.
type NotifyConfig struct {
	Enabled bool          `koanf:"enabled"`
	Timeout time.Duration `koanf:"timeout"`
}

// LoadOptions selects extra sources. Both fields are optional.
type LoadOptions struct {
	// File replaces the default search path. It must exist.
	File string
	// Flags overrides loaded values with the flags the user set.
	Flags *pflag.FlagSet
}

func defaults() map[string]any {
	return map[string]any{
		"mpd.host":              "localhost",
		"mpd.port":              6600,
		"mpd.timeout":           "5s",
		"sync.mode":             SyncLoop,
		"sync.tick_rate":        "250ms",
		"sync.refresh_interval": "200ms",
		"sync.idle":             true,
		"icons":                 "none",
		"log.level":             "info",
		"state.enabled":         true,
		"notify.enabled":        false,
		"notify.timeout":        "4s",
	}
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"host":      "mpd.host",
	"port":      "mpd.port",
	"password":  "mpd.password",
	"sync":      "sync.mode",
	"icons":     "icons",
	"log-file":  "log.file",
	"log-level": "log.level",
}

func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, err
	}

	paths := getConfigPaths()
	if opts.File != "" {
		paths = []string{expandPath(opts.File)}
		if _, err := os.Stat(paths[0]); err != nil {
			return nil, err
		}
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		}
	}

	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}
	if err := k.Load(env.ProviderWithValue("MPD_", ".", envValue), nil); err != nil {
		return nil, err
	}

	if opts.Flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(opts.Flags, ".", k, flagValue(opts.Flags)), nil); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadDotEnv reads path into the environment without overriding set variables.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return godotenv.Load(path)
}

// envValue maps MPD_HOST to mpd.host. Empty variables are skipped; other
// MPD_ variables land under mpd. and are ignored unless they name a field.
func envValue(key, value string) (string, any) {
	if value == "" {
		return "", nil
	}
	return "mpd." + strings.ToLower(strings.TrimPrefix(key, "MPD_")), value
}

func flagValue(fs *pflag.FlagSet) func(*pflag.Flag) (string, any) {
	return func(f *pflag.Flag) (string, any) {
		key, ok := flagKeys[f.Name]
		if !ok || !f.Changed {
			return "", nil
		}
		return key, posflag.FlagVal(fs, f)
	}
}

func (c *Config) normalize() {
	// MPD_HOST follows the "password@host" convention of the mpc client. An
	// explicit password wins, but the prefix never stays in the host.
	if at := strings.LastIndex(c.MPD.Host, "@"); at > 0 {
		if c.MPD.Password == "" {
			c.MPD.Password = c.MPD.Host[:at]
		}
		c.MPD.Host = c.MPD.Host[at+1:]
	}
	c.MPD.Host = expandPath(c.MPD.Host)
	c.Log.File = expandPath(c.Log.File)
	if c.State.Path != ":memory:" {
		c.State.Path = expandPath(c.State.Path)
	}
	c.Sync.Mode = strings.ToLower(c.Sync.Mode)
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/mpdwaves/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "mpdwaves", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// DaemonOptions returns the connection settings.
func (c *Config) DaemonOptions() daemon.Options {
	return daemon.Options{
		Host:     c.MPD.Host,
		Port:     c.MPD.Port,
		Password: c.MPD.Password,
		Timeout:  c.MPD.Timeout,
	}
}
