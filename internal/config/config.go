package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"

	"github.com/julianstephens/tripboard/internal/constants"
)

// Config is the on-disk application configuration.
type Config struct {
	// Timezone is the IANA zone used for the clock and for trip dates.
	Timezone string `yaml:"timezone"`

	// Locale selects the message catalog ("th" or "en").
	Locale string `yaml:"locale"`

	// StorePath is the local state location. A path ending in ".db" is a
	// SQLite file; anything else is a diskv directory.
	StorePath string `yaml:"store_path"`

	// TripsPath overrides the bundled trip document when set.
	TripsPath string `yaml:"trips_path"`

	ExportDir   string `yaml:"export_dir"`
	ExportScale int    `yaml:"export_scale"`
	ExportWidth int    `yaml:"export_width"`

	// ExportCron is the schedule used by `watch` (e.g. "*/15 * * * *").
	ExportCron string `yaml:"export_cron"`

	// NamespaceKeys stores completion flags per trip and day instead of per
	// time string.
	NamespaceKeys bool `yaml:"namespace_keys"`

	Debug bool `yaml:"debug"`
}

// Default returns the in-memory default configuration.
func Default() *Config {
	return &Config{
		Timezone:    constants.DefaultTimezone,
		Locale:      constants.DefaultLocale,
		StorePath:   constants.DefaultStorePath,
		ExportDir:   constants.DefaultExportDir,
		ExportScale: constants.DefaultExportScale,
		ExportWidth: constants.DefaultExportWidth,
	}
}

// Normalize fills zero values with defaults so partial files still work.
func (c *Config) Normalize() {
	if c.Timezone == "" {
		c.Timezone = constants.DefaultTimezone
	}
	switch strings.ToLower(c.Locale) {
	case "th", "en":
		c.Locale = strings.ToLower(c.Locale)
	default:
		c.Locale = constants.DefaultLocale
	}
	if c.StorePath == "" {
		c.StorePath = constants.DefaultStorePath
	}
	if c.ExportDir == "" {
		c.ExportDir = constants.DefaultExportDir
	}
	if c.ExportScale <= 0 {
		c.ExportScale = constants.DefaultExportScale
	}
	if c.ExportWidth <= 0 {
		c.ExportWidth = constants.DefaultExportWidth
	}
}

// Dir returns the directory holding the config file.
func Dir(path string) string {
	return filepath.Dir(ExpandPath(path))
}

// ExpandPath resolves a leading "~" against the user's home directory.
// Unresolvable paths are returned unchanged.
func ExpandPath(path string) string {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return path
	}
	return expanded
}

// Load reads the YAML config at path. A missing file is created with
// defaults on first run.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}
	path = ExpandPath(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := Default()
			if err := Save(path, cfg); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()

	return cfg, nil
}

// Save writes cfg to path atomically (temp file + rename) with 0600 perms.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}
	path = ExpandPath(path)
	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".tripboard-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
