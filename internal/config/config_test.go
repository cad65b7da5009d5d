package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValues(t *testing.T) {
	cfg := Default()
	if cfg.Optimize {
		t.Errorf("expected Optimize to default to false")
	}
	if cfg.Target != "llvm-ir" {
		t.Errorf("expected Target to default to llvm-ir, got %q", cfg.Target)
	}
	if cfg.OutDir != "." {
		t.Errorf("expected OutDir to default to %q, got %q", ".", cfg.OutDir)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("unexpected error for a missing file: %v", err)
	}
	if cfg != Default() {
		t.Errorf("expected defaults for a missing file, got %+v", cfg)
	}
}

func TestLoadOverlaysFileOntoDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minic.toml")
	content := "optimize = true\nout_dir = \"build\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Optimize {
		t.Errorf("expected Optimize to be overridden to true")
	}
	if cfg.OutDir != "build" {
		t.Errorf("expected OutDir to be overridden to build, got %q", cfg.OutDir)
	}
	if cfg.Target != "llvm-ir" {
		t.Errorf("expected Target to keep its default, got %q", cfg.Target)
	}
}

func TestLoadMalformedFileReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minic.toml")
	if err := os.WriteFile(path, []byte("not = [valid toml"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Errorf("expected an error for malformed toml")
	}
}
