package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvFile_Explicit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("NEWSROOM_CLI_TEST_VAR=from-file\n"), 0o600))
	t.Setenv("NEWSROOM_CLI_TEST_VAR", "")
	require.NoError(t, os.Unsetenv("NEWSROOM_CLI_TEST_VAR"))

	require.NoError(t, loadEnvFile(path, "production"))
	assert.Equal(t, "from-file", os.Getenv("NEWSROOM_CLI_TEST_VAR"))
}

func TestLoadEnvFile_ExistingEnvWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("NEWSROOM_CLI_TEST_VAR=from-file\n"), 0o600))
	t.Setenv("NEWSROOM_CLI_TEST_VAR", "from-env")

	require.NoError(t, loadEnvFile(path, "production"))
	assert.Equal(t, "from-env", os.Getenv("NEWSROOM_CLI_TEST_VAR"))
}

func TestLoadEnvFile_MissingExplicitFile(t *testing.T) {
	err := loadEnvFile(filepath.Join(t.TempDir(), "nope.env"), "production")
	assert.Error(t, err)
}

func TestLoadEnvFile_NoFileOutsideDevelopment(t *testing.T) {
	assert.NoError(t, loadEnvFile("", "production"))
}

func TestResolvePassword(t *testing.T) {
	assert.Equal(t, "flag", resolvePassword("flag", "env"))
	assert.Equal(t, "env", resolvePassword("", "env"))
	assert.Empty(t, resolvePassword("", ""))
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["serve"])
	assert.True(t, names["provision-admin"])
}
