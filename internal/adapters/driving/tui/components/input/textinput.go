// Package input wraps the Bubbles text input for the search field.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/civika-labs/serbisyo-cli/internal/adapters/driving/tui/styles"
)

// Model wraps a textinput.Model with application styling.
type Model struct {
	input  textinput.Model
	styles *styles.Styles
	width  int
}

// New creates a search input with the given placeholder.
func New(placeholder string, s *styles.Styles) Model {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "> "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(s.Theme().Primary)
	ti.CharLimit = 120
	ti.Focus()

	return Model{
		input:  ti,
		styles: s,
	}
}

// Update handles messages and returns the updated model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the input field.
func (m Model) View() string {
	field := m.styles.InputField
	if m.width > 4 {
		field = field.Width(m.width - 2)
	}
	return field.Render(m.input.View())
}

// Value returns the current input text.
func (m Model) Value() string {
	return m.input.Value()
}

// SetValue replaces the input text.
func (m *Model) SetValue(v string) {
	m.input.SetValue(v)
	m.input.CursorEnd()
}

// Reset clears the input.
func (m *Model) Reset() {
	m.input.Reset()
}

// Focus gives the input keyboard focus.
func (m *Model) Focus() tea.Cmd {
	return m.input.Focus()
}

// Blur removes keyboard focus.
func (m *Model) Blur() {
	m.input.Blur()
}

// Focused reports whether the input has focus.
func (m Model) Focused() bool {
	return m.input.Focused()
}

// SetWidth sets the rendered width of the input field.
func (m *Model) SetWidth(width int) {
	m.width = width
	if width > 6 {
		m.input.Width = width - 6
	}
}
