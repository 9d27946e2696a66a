package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// DefaultFile is the manifest the compiler looks for next to the source.
const DefaultFile = "confucio.toml"

// Config holds the read-only compile options. The pipeline never mutates
// it; each compilation receives the same loaded value.
type Config struct {
	Build BuildConfig `toml:"build"`
	Dump  DumpConfig  `toml:"dump"`
}

// BuildConfig is the [build] section.
type BuildConfig struct {
	// OptLevel is reserved for a backend; the pipeline itself emits
	// unoptimized, correctness-first IR regardless.
	OptLevel int `toml:"opt-level"`
}

// DumpConfig is the [dump] section: which intermediate artifacts the CLI
// prints after a successful compile.
type DumpConfig struct {
	AST bool `toml:"ast"`
	IR  bool `toml:"ir"`
}

// Default returns the configuration used when no manifest exists.
func Default() Config {
	return Config{
		Build: BuildConfig{OptLevel: 0},
		Dump:  DumpConfig{AST: false, IR: true},
	}
}

// Load reads a manifest file. A missing file is not an error; the
// defaults apply. A present but malformed file is.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if cfg.Build.OptLevel < 0 || cfg.Build.OptLevel > 3 {
		return Config{}, fmt.Errorf("%s: opt-level must be between 0 and 3", path)
	}
	return cfg, nil
}
