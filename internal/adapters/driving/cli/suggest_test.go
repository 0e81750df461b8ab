package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestCmd_ShowsSuggestions(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand("suggest", "cert")
	require.NoError(t, err)
	assert.Contains(t, out, "Suggestions:")
	assert.Contains(t, out, "Birth Certificate")
}

func TestSuggestCmd_ShortQueryShowsPopular(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand("suggest", "b")
	require.NoError(t, err)
	assert.Contains(t, out, "Popular searches:")
}

func TestSuggestCmd_ServiceNotConfigured(t *testing.T) {
	old := suggestService
	suggestService = nil
	defer func() { suggestService = old }()

	_, err := executeCommand("suggest", "cert")
	assert.Error(t, err)
}

func TestPopularCmd_BackfillsFromCurated(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand("popular")
	require.NoError(t, err)
	assert.Contains(t, out, "Popular searches:")
	assert.Contains(t, out, "birth certificate")
}

func TestRecentCmd_EmptyAndClear(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand("recent")
	require.NoError(t, err)
	assert.Contains(t, out, "No recent searches")

	_, err = executeCommand("search", "business permit")
	require.NoError(t, err)

	out, err = executeCommand("recent")
	require.NoError(t, err)
	assert.Contains(t, out, "business permit")

	defer func() { recentClear = false }()
	out, err = executeCommand("recent", "--clear")
	require.NoError(t, err)
	assert.Contains(t, out, "cleared")
}
