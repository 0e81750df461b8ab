package list

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civika-labs/serbisyo-cli/internal/core/domain"
)

func sampleResults(n int) []domain.ScoredResult {
	out := make([]domain.ScoredResult, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, domain.ScoredResult{
			ServiceRecord: domain.ServiceRecord{
				ID:       fmt.Sprintf("svc-%d", i),
				Title:    fmt.Sprintf("Service %d", i),
				Category: "Certificates",
			},
			Score: 100 - i,
		})
	}
	return out
}

func TestEmptyListView(t *testing.T) {
	m := New(nil)
	assert.Contains(t, m.View(), "No results")

	_, ok := m.Selected()
	assert.False(t, ok)
}

func TestCursorStaysInBounds(t *testing.T) {
	m := New(nil)
	m.SetResults(sampleResults(3))

	m.CursorUp()
	selected, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "svc-0", selected.ID)

	for i := 0; i < 10; i++ {
		m.CursorDown()
	}
	selected, _ = m.Selected()
	assert.Equal(t, "svc-2", selected.ID)
}

func TestSetResultsResetsCursor(t *testing.T) {
	m := New(nil)
	m.SetResults(sampleResults(5))
	m.CursorDown()
	m.CursorDown()

	m.SetResults(sampleResults(2))
	selected, _ := m.Selected()
	assert.Equal(t, "svc-0", selected.ID)
}

func TestViewMarksSelection(t *testing.T) {
	m := New(nil)
	m.SetResults(sampleResults(2))
	m.SetDimensions(80, 20)

	view := m.View()
	assert.Contains(t, view, "Service 0")
	assert.Contains(t, view, "▸")
}

func TestViewScrollsWithCursor(t *testing.T) {
	m := New(nil)
	m.SetResults(sampleResults(10))
	// Room for two visible rows.
	m.SetDimensions(80, 6)

	for i := 0; i < 9; i++ {
		m.CursorDown()
	}
	view := m.View()
	assert.Contains(t, view, "Service 9")
	assert.NotContains(t, view, "Service 0")
}
