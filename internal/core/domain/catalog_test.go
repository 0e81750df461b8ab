package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog(t *testing.T) {
	records := []ServiceRecord{
		{ID: "a", Title: "A", Category: "Cat"},
	}

	c := NewCatalog(records, false)

	require.NotNil(t, c)
	assert.NotEmpty(t, c.SnapshotID)
	assert.False(t, c.LoadedAt.IsZero())
	assert.False(t, c.Fallback)
	assert.Len(t, c.Services, 1)

	c2 := NewCatalog(nil, true)
	assert.True(t, c2.Fallback)
	assert.NotEqual(t, c.SnapshotID, c2.SnapshotID)
}

func TestCatalog_Categories(t *testing.T) {
	c := NewCatalog([]ServiceRecord{
		{ID: "a", Title: "A", Category: "Certificates & Vital Records", CategoryID: "certificates"},
		{ID: "b", Title: "B", Category: "Business Trade & Investment", CategoryID: "business"},
		{ID: "c", Title: "C", Category: "Certificates & Vital Records", CategoryID: "certificates"},
		{ID: "d", Title: "D", Category: "Uncategorised"}, // no id, skipped
	}, false)

	cats := c.Categories()

	require.Len(t, cats, 2)
	// First-seen order is preserved.
	assert.Equal(t, Category{ID: "certificates", Name: "Certificates & Vital Records"}, cats[0])
	assert.Equal(t, Category{ID: "business", Name: "Business Trade & Investment"}, cats[1])
}
