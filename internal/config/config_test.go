package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "columns:\n  - name\n  - size\n  - fstype\nbytes: true\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "size", "fstype"}, cfg.Columns)
	assert.True(t, cfg.Bytes)
}

func TestLoadFirstExistingPathWins(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope", "config.yaml")
	path := writeConfig(t, "bytes: true\n")
	other := writeConfig(t, "bytes: false\n")

	cfg, err := Load(missing, path, other)
	require.NoError(t, err)

	assert.True(t, cfg.Bytes)
}

func TestLoadNoFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)

	assert.Empty(t, cfg.Columns)
	assert.False(t, cfg.Bytes)
}

func TestLoadMalformed(t *testing.T) {
	path := writeConfig(t, "columns: [unterminated\n")

	cfg, err := Load(path)
	assert.Error(t, err)
	assert.Nil(t, cfg)
}
