package iofs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEnsureDirs_CreatesDirectories verifies all required
// directories are created.
func TestEnsureDirs_CreatesDirectories(t *testing.T) {
	tmpDir := t.TempDir()

	err := EnsureDirs(tmpDir)
	require.NoError(t, err)

	configDir := filepath.Join(tmpDir, ".config", "fitimport")
	info, err := os.Stat(configDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir(),
		"Config directory should exist")

	logDir := filepath.Join(tmpDir, ".local", "share", "fitimport",
		"logs")
	info, err = os.Stat(logDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir(),
		"Log directory should exist")
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}

// TestEnsureDirs_Idempotent verifies multiple calls work.
func TestEnsureDirs_Idempotent(t *testing.T) {
	tmpDir := t.TempDir()

	require.NoError(t, EnsureDirs(tmpDir))
	require.NoError(t, EnsureDirs(tmpDir))
}

// TestEnsureDirs_FileInTheWay verifies a file at a directory
// location is reported.
func TestEnsureDirs_FileInTheWay(t *testing.T) {
	tmpDir := t.TempDir()
	blocker := filepath.Join(tmpDir, ".config")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	err := EnsureDirs(tmpDir)
	assert.Error(t, err)
}

func TestEnsureConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, EnsureDirs(tmpDir))

	configPath := filepath.Join(tmpDir, ".config", "fitimport",
		"config.yaml")

	t.Run("creates file from template", func(t *testing.T) {
		err := EnsureConfigFile(tmpDir)
		require.NoError(t, err)

		content, err := os.ReadFile(configPath)
		require.NoError(t, err)
		assert.Equal(t, ConfigYAML, string(content))

		info, err := os.Stat(configPath)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
	})

	t.Run("keeps existing file", func(t *testing.T) {
		custom := "import:\n  email_domain: example.org\n"
		require.NoError(t, os.WriteFile(configPath, []byte(custom), 0644))

		require.NoError(t, EnsureConfigFile(tmpDir))

		content, err := os.ReadFile(configPath)
		require.NoError(t, err)
		assert.Equal(t, custom, string(content))
	})
}

// TestConfigYAML_Embedded verifies embedded config is
// not empty.
func TestConfigYAML_Embedded(t *testing.T) {
	assert.Contains(t, ConfigYAML, "import:")
	assert.Contains(t, ConfigYAML, "email_domain")
	assert.Contains(t, ConfigYAML, "log:")
}
