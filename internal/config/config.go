// Package config loads the assembler's optional project file: input files,
// the default origin address, output paths, and the output format. Nothing
// in internal/asm depends on it -- the core takes plain bytes and Options --
// so a project file is purely a convenience the command-line driver offers
// in place of repeating the same flags on every invocation.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Format names an output encoding the CLI driver knows how to write.
type Format string

const (
	FormatRaw Format = "raw"
	FormatHex Format = "hex"
)

// Config is a VTX1 project file, decoded from TOML.
type Config struct {
	Sources struct {
		Inputs []string `toml:"inputs"`
		Origin string   `toml:"origin"` // Parsed with asm.ParseLiteral; any radix is accepted.
	} `toml:"sources"`

	Output struct {
		Path    string `toml:"path"`
		Listing string `toml:"listing"`
		Format  Format `toml:"format"`
	} `toml:"output"`

	Logging struct {
		Debug   bool `toml:"debug"`
		Compact bool `toml:"compact"`
	} `toml:"logging"`
}

// DefaultConfig returns a Config with the driver's built-in defaults.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Sources.Origin = "0"
	cfg.Output.Path = "a.out"
	cfg.Output.Format = FormatRaw
	cfg.Logging.Debug = false
	cfg.Logging.Compact = true

	return cfg
}

// GetConfigPath returns the platform-specific default project file path.
func GetConfigPath() string {
	var dir string

	switch runtime.GOOS {
	case "windows":
		dir = os.Getenv("APPDATA")
		if dir == "" {
			dir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		dir = filepath.Join(dir, "vtx1")

	case "darwin", "linux":
		home, err := os.UserHomeDir()
		if err != nil {
			return "vtx1.toml"
		}
		dir = filepath.Join(home, ".config", "vtx1")

	default:
		return "vtx1.toml"
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "vtx1.toml"
	}

	return filepath.Join(dir, "vtx1.toml")
}

// Load loads the project file from its default, platform-specific path.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads the project file at path. A missing file is not an error:
// LoadFrom returns DefaultConfig unchanged, so a bare `vtx1 asm input.asm`
// works without any project file at all.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the project file to its default, platform-specific path.
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo writes the project file to path.
func (c *Config) SaveTo(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("config: creating %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config: creating %s: %w", path, err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("config: encoding %s: %w", path, err)
	}

	return nil
}
