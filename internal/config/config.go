// Package config loads the handful of project-wide knobs this
// compiler has from an optional minic.toml manifest, with CLI flags
// overriding whatever the file declares. Grounded on the shape of the
// teacher's internal/project manifest loader, scoped down: this
// language has no module graph or dependency resolution, so none of
// that survives here — just the output knobs a single-binary compiler
// actually needs.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the full set of compiler-wide defaults.
type Config struct {
	Optimize bool   `toml:"optimize"`
	Target   string `toml:"target"`
	OutDir   string `toml:"out_dir"`
}

// Default returns the built-in defaults used when no minic.toml is
// present and no flags override them.
func Default() Config {
	return Config{Optimize: false, Target: "llvm-ir", OutDir: "."}
}

// Load reads path (typically "minic.toml") and overlays it onto
// Default(). A missing file is not an error — it just means every
// field keeps its default — but a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
