// Package status renders the single-line status bar at the bottom of
// the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/civika-labs/serbisyo-cli/internal/adapters/driving/tui/styles"
)

// State describes what the application is currently doing.
type State int

const (
	// StateReady means the app is idle and waiting for input.
	StateReady State = iota
	// StateLoading means the catalog is still being fetched.
	StateLoading
	// StateSearching means a search is in flight.
	StateSearching
	// StateResults means results are displayed.
	StateResults
	// StateError means the last operation failed.
	StateError
)

// Model holds the status bar state.
type Model struct {
	state   State
	message string
	width   int
	help    []key.Binding
	styles  *styles.Styles
}

// New creates a status bar showing the given keybindings.
func New(help []key.Binding, s *styles.Styles) Model {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return Model{
		state:  StateLoading,
		help:   help,
		styles: s,
	}
}

// SetState updates the state and its message.
func (m *Model) SetState(state State, message string) {
	m.state = state
	m.message = message
}

// SetResultCount is a shorthand for the results state.
func (m *Model) SetResultCount(n int) {
	if n == 1 {
		m.SetState(StateResults, "1 result")
		return
	}
	m.SetState(StateResults, fmt.Sprintf("%d results", n))
}

// SetWidth sets the rendered width.
func (m *Model) SetWidth(width int) {
	m.width = width
}

// State returns the current state.
func (m Model) State() State {
	return m.state
}

// View renders the status bar.
func (m Model) View() string {
	var left string
	switch m.state {
	case StateLoading:
		left = m.styles.Warning.Render("⣾ " + m.orDefault("loading catalog..."))
	case StateSearching:
		left = m.styles.Warning.Render("⣾ " + m.orDefault("searching..."))
	case StateError:
		left = m.styles.Error.Render("✗ " + m.orDefault("error"))
	case StateResults:
		left = m.styles.Success.Render("✓ " + m.message)
	default:
		left = m.styles.Muted.Render(m.orDefault("ready"))
	}

	hints := make([]string, 0, len(m.help))
	for _, b := range m.help {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s %s", h.Key, h.Desc))
	}
	right := strings.Join(hints, "  ")

	bar := left
	if right != "" {
		gap := m.width - lenVisible(left) - lenVisible(right) - 2
		if gap < 2 {
			gap = 2
		}
		bar = left + strings.Repeat(" ", gap) + m.styles.Muted.Render(right)
	}

	return m.styles.StatusBar.Render(bar)
}

func (m Model) orDefault(fallback string) string {
	if m.message != "" {
		return m.message
	}
	return fallback
}

// lenVisible approximates the printed width by ignoring ANSI sequences.
func lenVisible(s string) int {
	n := 0
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			n++
		}
	}
	return n
}
