package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Success(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`registry:
  max_employees: 5

log:
  level: DEBUG
  encoding: console
  output_paths:
    - /tmp/payroll.log
`)

	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Registry.Capacity() != 5 {
		t.Errorf("expected capacity 5, got %d", cfg.Registry.Capacity())
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected normalized level debug, got %s", cfg.Log.Level)
	}
	if cfg.Log.Encoding != "console" {
		t.Errorf("unexpected encoding: %s", cfg.Log.Encoding)
	}
	if len(cfg.Log.OutputPaths) != 1 || cfg.Log.OutputPaths[0] != "/tmp/payroll.log" {
		t.Errorf("unexpected output paths: %v", cfg.Log.OutputPaths)
	}
}

func TestLoad_EmptyFileUsesDefaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	if err := os.WriteFile(path, []byte("{}"), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Registry.Capacity() != 100 {
		t.Errorf("expected default capacity 100, got %d", cfg.Registry.Capacity())
	}
	if cfg.Log.Level != "warn" || cfg.Log.Encoding != "json" {
		t.Errorf("unexpected log defaults: %+v", cfg.Log)
	}
	if len(cfg.Log.OutputPaths) != 1 || cfg.Log.OutputPaths[0] != "stderr" {
		t.Errorf("unexpected output paths: %v", cfg.Log.OutputPaths)
	}
}

func TestLoad_ZeroCapacityMeansUnbounded(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	if err := os.WriteFile(path, []byte("registry:\n  max_employees: 0\n"), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Registry.Capacity() != 0 {
		t.Fatalf("expected capacity 0, got %d", cfg.Registry.Capacity())
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"negative capacity": "registry:\n  max_employees: -1\n",
		"unknown level":     "log:\n  level: verbose\n",
		"unknown encoding":  "log:\n  encoding: xml\n",
		"stdout output":     "log:\n  output_paths: [stdout]\n",
		"broken yaml":       "registry: [",
	}

	for name, content := range cases {
		name, content := name, content
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
				t.Fatalf("failed to write config file: %v", err)
			}

			if _, err := Load(path); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoad_EmptyPathReturnsDefault(t *testing.T) {
	t.Parallel()

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Registry.Capacity() != 100 || cfg.Log.Level != "warn" {
		t.Fatalf("unexpected default config: %+v", cfg)
	}
}

func TestEffectivePath(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/etc/payroll.yaml")

	if got := EffectivePath("local.yaml"); got != "local.yaml" {
		t.Errorf("expected flag to win, got %s", got)
	}
	if got := EffectivePath(""); got != "/etc/payroll.yaml" {
		t.Errorf("expected env path, got %s", got)
	}
}
