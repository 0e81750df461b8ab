package cli

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civika-labs/serbisyo-cli/internal/adapters/driven/storage/memory"
	"github.com/civika-labs/serbisyo-cli/internal/core/services"
)

func TestCategoriesCmd_ListsCategories(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand("categories")
	require.NoError(t, err)
	assert.Contains(t, out, "certificates")
	assert.Contains(t, out, "Certificates & Vital Records")
	assert.Contains(t, out, "business")
}

func TestValidateCmd_CleanCatalog(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand("validate")
	require.NoError(t, err)
	assert.Contains(t, out, "Catalog is valid")
}

func TestValidateCmd_ReportsIssues(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	doc := testCatalogDocument()
	doc.Services[0].Title = ""
	catalog := services.NewCatalogService(&staticSource{doc: doc})
	SetServices(
		services.NewSearchService(catalog, time.Minute),
		services.NewSuggestService(memory.NewKeyValueStore(), catalog),
		catalog,
	)

	out, err := executeCommand("validate")
	require.Error(t, err)
	assert.Contains(t, out, "missing title")
}

func TestValidateCmd_FetchError(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	catalog := services.NewCatalogService(&staticSource{err: errors.New("offline")})
	SetServices(
		services.NewSearchService(catalog, time.Minute),
		services.NewSuggestService(memory.NewKeyValueStore(), catalog),
		catalog,
	)

	_, err := executeCommand("validate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "offline")
}
