package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/julianstephens/tripboard/internal/constants"
)

func TestLoadCreatesDefaultOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Timezone != constants.DefaultTimezone {
		t.Errorf("Timezone = %q, want %q", cfg.Timezone, constants.DefaultTimezone)
	}
	if cfg.ExportScale != 2 {
		t.Errorf("ExportScale = %d, want 2", cfg.ExportScale)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("config perms = %o, want 600", perm)
	}
}

func TestLoadNormalizesPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "locale: EN\nexport_scale: 0\nnamespace_keys: true\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Locale != "en" {
		t.Errorf("Locale = %q, want en", cfg.Locale)
	}
	if cfg.ExportScale != constants.DefaultExportScale {
		t.Errorf("ExportScale = %d, want %d", cfg.ExportScale, constants.DefaultExportScale)
	}
	if !cfg.NamespaceKeys {
		t.Error("NamespaceKeys = false, want true")
	}
	if cfg.Timezone != constants.DefaultTimezone {
		t.Errorf("Timezone = %q, want default", cfg.Timezone)
	}
}

func TestLoadRejectsInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("timezone: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() expected error for malformed YAML")
	}
}

func TestNormalizeUnknownLocale(t *testing.T) {
	cfg := &Config{Locale: "fr"}
	cfg.Normalize()
	if cfg.Locale != constants.DefaultLocale {
		t.Errorf("Locale = %q, want %q", cfg.Locale, constants.DefaultLocale)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := Default()
	cfg.ExportCron = "@every 15m"
	cfg.TripsPath = "/srv/trips.yaml"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.ExportCron != "@every 15m" || got.TripsPath != "/srv/trips.yaml" {
		t.Errorf("round trip lost fields: %+v", got)
	}
}

func TestSaveRejectsEmptyInput(t *testing.T) {
	if err := Save("", Default()); err == nil {
		t.Error("Save() expected error for empty path")
	}
	if err := Save(filepath.Join(t.TempDir(), "c.yaml"), nil); err == nil {
		t.Error("Save() expected error for nil config")
	}
}
