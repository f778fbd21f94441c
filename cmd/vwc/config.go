package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/chriscorrea/vwc/internal/app"
	"github.com/chriscorrea/vwc/internal/platform"
	"github.com/chriscorrea/vwc/internal/preview"
)

// settings are the options that come from the config file and VWC_*
// environment variables rather than from wc's own flags.
type settings struct {
	Platform        string        `mapstructure:"platform"`
	Preview         string        `mapstructure:"preview"`
	PreviewInterval time.Duration `mapstructure:"preview_interval"`
	ChunkSize       int           `mapstructure:"chunk_size"`
	Debug           bool          `mapstructure:"debug"`
}

// preview modes
const (
	previewAuto   = "auto"
	previewAlways = "always"
	previewNever  = "never"
)

// newViper returns a viper instance with defaults, environment binding and
// config file search paths set up.
func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("platform", "auto")
	v.SetDefault("preview", previewAuto)
	v.SetDefault("preview_interval", preview.DefaultInterval)
	v.SetDefault("chunk_size", app.DefaultChunkSize)
	v.SetDefault("debug", false)

	// search config in $HOME/.config/vwc, then the working directory
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "vwc"))
	}
	v.AddConfigPath(".")
	v.SetConfigName("config")
	v.SetConfigType("toml")

	v.SetEnvPrefix("VWC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return v
}

// loadSettings reads the config file, if any, and decodes the merged
// settings. A missing or unreadable config file leaves the defaults and
// environment in effect.
func loadSettings(v *viper.Viper) (settings, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			slog.Warn("Ignoring config file", "error", err)
		}
	}

	var s settings
	if err := v.Unmarshal(&s); err != nil {
		return settings{}, fmt.Errorf("failed to decode settings: %w", err)
	}

	if _, _, err := platform.ParseVariant(s.Platform); err != nil {
		return settings{}, err
	}
	switch s.Preview {
	case previewAuto, previewAlways, previewNever:
	default:
		return settings{}, fmt.Errorf("unknown preview mode %q", s.Preview)
	}

	return s, nil
}

// previewEnabled resolves the preview mode against the error stream.
func (s settings) previewEnabled(isTerminal bool) bool {
	switch s.Preview {
	case previewAlways:
		return true
	case previewNever:
		return false
	default:
		return isTerminal
	}
}
