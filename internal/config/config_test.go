package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itworks99/vtx1/internal/config"
)

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	assert.Equal(t, "0", cfg.Sources.Origin)
	assert.Equal(t, "a.out", cfg.Output.Path)
	assert.Equal(t, config.FormatRaw, cfg.Output.Format)
	assert.False(t, cfg.Logging.Debug)
	assert.True(t, cfg.Logging.Compact)
}

func TestLoadFromMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vtx1.toml")

	cfg := config.DefaultConfig()
	cfg.Sources.Inputs = []string{"main.asm", "util.asm"}
	cfg.Sources.Origin = "0x1000"
	cfg.Output.Path = "out.bin"
	cfg.Output.Format = config.FormatHex

	require.NoError(t, cfg.SaveTo(path))

	loaded, err := config.LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Sources.Inputs, loaded.Sources.Inputs)
	assert.Equal(t, cfg.Sources.Origin, loaded.Sources.Origin)
	assert.Equal(t, cfg.Output.Path, loaded.Output.Path)
	assert.Equal(t, cfg.Output.Format, loaded.Output.Format)
}

func TestLoadFromMalformedFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("not = [valid toml"), 0o644))

	_, err := config.LoadFrom(path)
	assert.Error(t, err)
}
