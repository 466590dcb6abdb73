// pkg/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileGivesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Empty(t, cfg.DefaultBackend)
	assert.True(t, cfg.NeedsSudo)
	assert.False(t, cfg.DryRun)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pacgo.yaml")
	data := []byte("default_pm: brew\ndry_run: true\nno_confirm: true\nreinstall: true\nneeds_sudo: false\n")
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "brew", cfg.DefaultBackend)
	assert.True(t, cfg.DryRun)
	assert.True(t, cfg.NoConfirm)
	assert.True(t, cfg.Reinstall)
	assert.False(t, cfg.NeedsSudo)
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pacgo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_pm: [unclosed"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "pacgo.yaml")
	in := DefaultConfig()
	in.DefaultBackend = "pacman"
	in.NoCache = true

	require.NoError(t, SaveConfig(in, path))

	out, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
