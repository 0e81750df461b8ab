package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civika-labs/serbisyo-cli/internal/adapters/driven/config/file"
)

func setupTestConfig(t *testing.T) func() {
	t.Helper()
	old := configStore
	store, err := file.NewConfigStore(t.TempDir())
	require.NoError(t, err)
	SetConfigStore(store)
	return func() { configStore = old }
}

func TestConfigCmd_Show(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	out, err := executeCommand("config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Current Configuration")
	assert.Contains(t, out, "config.toml")
}

func TestConfigCmd_SetStoresTypedValues(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	out, err := executeCommand("config", "set", "search.limit", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Set search.limit = 5")
	assert.Equal(t, 5, configStore.GetInt("search.limit"))

	_, err = executeCommand("config", "set", "catalog.url", "https://example.test")
	require.NoError(t, err)
	assert.Equal(t, "https://example.test", configStore.GetString("catalog.url"))
}

func TestConfigCmd_NotConfigured(t *testing.T) {
	old := configStore
	configStore = nil
	defer func() { configStore = old }()

	_, err := executeCommand("config", "show")
	assert.Error(t, err)
}
