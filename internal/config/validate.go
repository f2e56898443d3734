package config

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/llehouerou/mpdwaves/internal/icons"
	"github.com/llehouerou/mpdwaves/internal/keymap"
	"github.com/llehouerou/mpdwaves/internal/ui/queuepanel"
)

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	if c.MPD.Host == "" {
		errs = append(errs, errors.New("mpd.host: empty"))
	}
	if c.DaemonOptions().Network() != "unix" && (c.MPD.Port <= 0 || c.MPD.Port > 65535) {
		errs = append(errs, fmt.Errorf("mpd.port: %d out of range", c.MPD.Port))
	}
	if c.MPD.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("mpd.timeout: must be positive, got %s", c.MPD.Timeout))
	}

	switch c.Sync.Mode {
	case SyncLoop, SyncBackground:
	default:
		errs = append(errs, fmt.Errorf("sync.mode: unknown mode %q (want %q or %q)", c.Sync.Mode, SyncLoop, SyncBackground))
	}
	if c.Sync.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("sync.tick_rate: must be positive, got %s", c.Sync.TickRate))
	}
	if c.Sync.RefreshInterval <= 0 {
		errs = append(errs, fmt.Errorf("sync.refresh_interval: must be positive, got %s", c.Sync.RefreshInterval))
	}

	total := 0
	for i, col := range c.Columns {
		if !queuepanel.ValidField(col.Field) {
			errs = append(errs, fmt.Errorf("columns[%d]: unknown field %q", i, col.Field))
		}
		if col.Width <= 0 {
			errs = append(errs, fmt.Errorf("columns[%d]: width must be positive", i))
		}
		total += col.Width
	}
	if total > 100 {
		errs = append(errs, fmt.Errorf("columns: widths sum to %d%%, more than 100%%", total))
	}

	for name := range c.Keys {
		if !keymap.Action(name).Valid() {
			errs = append(errs, fmt.Errorf("keys: unknown action %q", name))
		}
	}

	if c.Notify.Enabled && c.Notify.Timeout < 0 {
		errs = append(errs, fmt.Errorf("notify.timeout: must not be negative, got %s", c.Notify.Timeout))
	}

	if !icons.Valid(c.Icons) {
		errs = append(errs, fmt.Errorf("icons: unknown style %q", c.Icons))
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}

	return errors.Join(errs...)
}

// Bindings returns the default bindings with the configured overrides applied.
func (c *Config) Bindings() ([]keymap.Binding, error) {
	overrides := make(map[keymap.Action][]string, len(c.Keys))
	for name, keys := range c.Keys {
		overrides[keymap.Action(name)] = keys
	}
	return keymap.Override(keymap.DefaultBindings(), overrides)
}

// QueueColumns returns the configured queue layout, or nil for the default.
func (c *Config) QueueColumns() []queuepanel.Column {
	if len(c.Columns) == 0 {
		return nil
	}
	cols := make([]queuepanel.Column, len(c.Columns))
	for i, col := range c.Columns {
		cols[i] = queuepanel.Column{Field: col.Field, Width: col.Width}
	}
	return cols
}
