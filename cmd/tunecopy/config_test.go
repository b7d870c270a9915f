package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmunix/tunecopy/internal/config"
)

func TestConfigInitAndTest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tunecopy", "config.toml")

	var out bytes.Buffer
	configInitCmd.SetOut(&out)
	require.NoError(t, runConfigInit(configInitCmd, []string{path}))
	assert.Contains(t, out.String(), "Wrote "+path)
	assert.FileExists(t, path)

	err := runConfigInit(configInitCmd, []string{path})
	require.Error(t, err, "refuses to overwrite without --force")
	assert.Contains(t, err.Error(), "--force")

	out.Reset()
	configTestCmd.SetOut(&out)
	require.NoError(t, runConfigTest(configTestCmd, []string{path}))
	assert.Contains(t, out.String(), "Configuration Summary:")
	assert.Contains(t, out.String(), "Configuration valid!")
}

func TestConfigInit_Resolved(t *testing.T) {
	src := filepath.Join(t.TempDir(), "tunecopy.toml")
	require.NoError(t, os.WriteFile(src, []byte(`
[sync]
destination = "${TUNECOPY_TEST_DEST}"
normalize = "nfkc"
`), 0644))
	t.Setenv("TUNECOPY_TEST_DEST", "/mnt/player")
	configPath = src
	t.Cleanup(func() { configPath = "" })
	configInitResolved = true
	t.Cleanup(func() { configInitResolved = false })

	out := filepath.Join(t.TempDir(), "resolved.toml")
	configInitCmd.SetOut(&bytes.Buffer{})
	require.NoError(t, runConfigInit(configInitCmd, []string{out}), "invalid values are still written")

	cfg, err := config.LoadWithoutValidation(out)
	require.NoError(t, err)
	assert.Equal(t, "/mnt/player", cfg.Sync.Destination)
	assert.Equal(t, "nfkc", cfg.Sync.Normalize)
	assert.NotContains(t, readFile(t, out), "${")
}

func TestConfigTest_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tunecopy.toml")
	require.NoError(t, os.WriteFile(path, []byte("[sync]\ndestination = \"${TUNECOPY_TEST_UNSET_DEST}\"\n"), 0644))

	var out bytes.Buffer
	configTestCmd.SetOut(&out)
	err := runConfigTest(configTestCmd, []string{path})
	require.Error(t, err)
	assert.Contains(t, out.String(), "Missing environment variables:")
	assert.Contains(t, out.String(), "  - TUNECOPY_TEST_UNSET_DEST")
}

func TestPrintConfigErrors(t *testing.T) {
	var out bytes.Buffer
	printConfigErrors(&out, &config.Error{Errors: []string{"sync.anchor: required"}})
	assert.Equal(t, "Validation errors:\n  - sync.anchor: required\n\n", out.String())
}
