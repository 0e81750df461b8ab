// Package list renders a navigable list of scored search results.
package list

import (
	"fmt"
	"strings"

	"github.com/civika-labs/serbisyo-cli/internal/adapters/driving/tui/styles"
	"github.com/civika-labs/serbisyo-cli/internal/core/domain"
)

// Model holds the result list state.
type Model struct {
	results []domain.ScoredResult
	cursor  int
	offset  int
	height  int
	width   int
	styles  *styles.Styles
}

// New creates an empty result list.
func New(s *styles.Styles) Model {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return Model{
		height: 10,
		styles: s,
	}
}

// SetResults replaces the list contents and resets the cursor.
func (m *Model) SetResults(results []domain.ScoredResult) {
	m.results = results
	m.cursor = 0
	m.offset = 0
}

// Clear empties the list.
func (m *Model) Clear() {
	m.SetResults(nil)
}

// Results returns the current list contents.
func (m Model) Results() []domain.ScoredResult {
	return m.results
}

// Len returns the number of results.
func (m Model) Len() int {
	return len(m.results)
}

// Selected returns the result under the cursor, or false when empty.
func (m Model) Selected() (domain.ScoredResult, bool) {
	if len(m.results) == 0 {
		return domain.ScoredResult{}, false
	}
	return m.results[m.cursor], true
}

// CursorUp moves the selection up one row.
func (m *Model) CursorUp() {
	if m.cursor > 0 {
		m.cursor--
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
}

// CursorDown moves the selection down one row.
func (m *Model) CursorDown() {
	if m.cursor < len(m.results)-1 {
		m.cursor++
	}
	if m.cursor >= m.offset+m.visibleRows() {
		m.offset = m.cursor - m.visibleRows() + 1
	}
}

// SetDimensions sets the viewport size.
func (m *Model) SetDimensions(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) visibleRows() int {
	// Each result renders as two lines plus a blank separator.
	rows := m.height / 3
	if rows < 1 {
		rows = 1
	}
	return rows
}

// View renders the visible slice of the list.
func (m Model) View() string {
	if len(m.results) == 0 {
		return m.styles.Muted.Render("No results")
	}

	var b strings.Builder
	end := m.offset + m.visibleRows()
	if end > len(m.results) {
		end = len(m.results)
	}

	for i := m.offset; i < end; i++ {
		r := m.results[i]

		title := fmt.Sprintf("%s  %s", r.Title, m.styles.Muted.Render(fmt.Sprintf("(%d)", r.Score)))
		if i == m.cursor {
			title = m.styles.Selected.Render("▸ "+r.Title) + "  " + m.styles.Muted.Render(fmt.Sprintf("(%d)", r.Score))
		} else {
			title = "  " + title
		}
		b.WriteString(title)
		b.WriteString("\n")

		meta := r.Category
		if r.Office != "" {
			meta += " · " + r.Office
		}
		if r.Fee != "" {
			meta += " · " + r.Fee
		}
		b.WriteString("  " + m.styles.Muted.Render(meta))
		b.WriteString("\n\n")
	}

	if end < len(m.results) {
		b.WriteString(m.styles.Muted.Render(fmt.Sprintf("… %d more", len(m.results)-end)))
	}

	return strings.TrimRight(b.String(), "\n")
}
