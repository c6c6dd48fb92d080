package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/ttop/internal/config"
	"github.com/rileyhilliard/ttop/internal/errors"
)

func TestInitCommandExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ttop.yaml")

	require.NoError(t, initCommand(path, false))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestInitCommandRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ttop.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: mono\n"), 0o644))

	err := initCommand(path, false)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestInitCommandForce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ttop.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: mono\n"), 0o644))

	require.NoError(t, initCommand(path, true))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.ThemeAuto, cfg.Theme, "force regenerates defaults")
}

func TestInitCommandDefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	require.NoError(t, initCommand("", false))

	expected := filepath.Join(home, config.GlobalConfigDir, config.GlobalConfigFile)
	_, err := os.Stat(expected)
	assert.NoError(t, err)
}
