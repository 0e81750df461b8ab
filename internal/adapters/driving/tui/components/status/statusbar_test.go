package status

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/civika-labs/serbisyo-cli/internal/adapters/driving/tui/keymap"
)

func TestStatusBarStates(t *testing.T) {
	m := New(nil, nil)
	assert.Equal(t, StateLoading, m.State())
	assert.Contains(t, m.View(), "loading catalog")

	m.SetState(StateSearching, "")
	assert.Contains(t, m.View(), "searching")

	m.SetState(StateError, "boom")
	assert.Contains(t, m.View(), "boom")

	m.SetState(StateReady, "")
	assert.Contains(t, m.View(), "ready")
}

func TestResultCountPluralises(t *testing.T) {
	m := New(nil, nil)

	m.SetResultCount(1)
	assert.Contains(t, m.View(), "1 result")

	m.SetResultCount(7)
	assert.Contains(t, m.View(), "7 results")
}

func TestViewIncludesKeyHints(t *testing.T) {
	m := New(keymap.DefaultKeyMap().ShortHelp(), nil)
	m.SetWidth(120)
	m.SetState(StateReady, "")

	view := m.View()
	assert.Contains(t, view, "quit")
	assert.Contains(t, view, "details")
}
