// Package tui implements the interactive terminal interface using the
// Elm architecture via Bubbletea. The search view offers search as you
// type with a debounce, suggestions for short queries, and a details
// view for the selected service.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/civika-labs/serbisyo-cli/internal/adapters/driving/tui/components/input"
	"github.com/civika-labs/serbisyo-cli/internal/adapters/driving/tui/components/list"
	"github.com/civika-labs/serbisyo-cli/internal/adapters/driving/tui/components/status"
	"github.com/civika-labs/serbisyo-cli/internal/adapters/driving/tui/keymap"
	"github.com/civika-labs/serbisyo-cli/internal/adapters/driving/tui/messages"
	"github.com/civika-labs/serbisyo-cli/internal/adapters/driving/tui/styles"
	"github.com/civika-labs/serbisyo-cli/internal/core/domain"
)

// App is the root Bubbletea model.
type App struct {
	ports    Ports
	settings domain.AppSettings
	ctx      context.Context

	keys   *keymap.KeyMap
	styles *styles.Styles

	view     messages.ViewType
	input    input.Model
	results  list.Model
	status   status.Model
	selected domain.ScoredResult

	suggestions domain.SuggestionBundle

	// seq is bumped on every keystroke; messages carrying an older seq
	// belong to an abandoned query and are dropped.
	seq int

	width  int
	height int
}

// NewApp creates the TUI application model.
func NewApp(ports Ports, settings domain.AppSettings) *App {
	s := styles.DefaultStyles()
	keys := keymap.DefaultKeyMap()

	return &App{
		ports:    ports,
		settings: settings.Normalised(),
		ctx:      context.Background(),
		keys:     keys,
		styles:   s,
		view:     messages.ViewSearch,
		input:    input.New("Search services (e.g. birth certificate)...", s),
		results:  list.New(s),
		status:   status.New(keys.ShortHelp(), s),
	}
}

// WithContext sets the context used for searches and the catalog load.
func (a *App) WithContext(ctx context.Context) {
	if ctx != nil {
		a.ctx = ctx
	}
}

// Init kicks off the background catalog load.
func (a *App) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, a.loadCatalogCmd(), a.suggestCmd(a.seq, ""))
}

// Update routes messages to the active view.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.input.SetWidth(msg.Width)
		a.results.SetDimensions(msg.Width, msg.Height-6)
		a.status.SetWidth(msg.Width)
		return a, nil

	case tea.KeyMsg:
		return a.updateKey(msg)

	case messages.SearchDebounced:
		if msg.Seq != a.seq {
			return a, nil
		}
		query := strings.TrimSpace(a.input.Value())
		if len([]rune(query)) < domain.MinQueryLength {
			a.results.Clear()
			a.status.SetState(status.StateReady, "")
			return a, a.suggestCmd(a.seq, query)
		}
		a.status.SetState(status.StateSearching, "")
		return a, tea.Batch(a.searchCmd(a.seq, query), a.suggestCmd(a.seq, query))

	case messages.SearchCompleted:
		if msg.Seq != a.seq {
			return a, nil
		}
		if msg.Err != nil {
			a.status.SetState(status.StateError, msg.Err.Error())
			return a, nil
		}
		a.results.SetResults(msg.Results)
		a.status.SetResultCount(len(msg.Results))
		return a, nil

	case messages.SuggestionsLoaded:
		if msg.Seq != a.seq {
			return a, nil
		}
		a.suggestions = msg.Bundle
		return a, nil

	case messages.CatalogLoaded:
		if msg.Err != nil {
			a.status.SetState(status.StateError, msg.Err.Error())
			return a, nil
		}
		note := fmt.Sprintf("%d services loaded", msg.ServiceCount)
		if msg.Fallback {
			note += " (offline fallback)"
		}
		a.status.SetState(status.StateReady, note)
		return a, nil
	}

	return a, nil
}

func (a *App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.Quit) {
		return a, tea.Quit
	}

	if a.view == messages.ViewDetails {
		switch {
		case key.Matches(msg, a.keys.Back), msg.String() == "q":
			a.view = messages.ViewSearch
		case msg.String() == "enter":
			a.view = messages.ViewSearch
		}
		return a, nil
	}

	switch {
	case key.Matches(msg, a.keys.Back):
		if a.input.Value() == "" {
			return a, tea.Quit
		}
		a.seq++
		a.input.Reset()
		a.results.Clear()
		a.status.SetState(status.StateReady, "")
		return a, a.suggestCmd(a.seq, "")

	case key.Matches(msg, a.keys.Up):
		a.results.CursorUp()
		return a, nil

	case key.Matches(msg, a.keys.Down):
		a.results.CursorDown()
		return a, nil

	case key.Matches(msg, a.keys.Select):
		selected, ok := a.results.Selected()
		if !ok {
			return a, nil
		}
		a.selected = selected
		a.view = messages.ViewDetails
		return a, a.recordCmd(selected.Query, a.results.Len())
	}

	before := a.input.Value()
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)

	if a.input.Value() != before {
		a.seq++
		return a, tea.Batch(cmd, a.debounceCmd(a.seq))
	}
	return a, cmd
}

// View renders the active view with the status bar underneath.
func (a *App) View() string {
	var body string
	if a.view == messages.ViewDetails {
		body = a.detailsView()
	} else {
		body = a.searchView()
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, a.status.View())
}

func (a *App) searchView() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("Serbisyo"))
	b.WriteString(a.styles.Muted.Render("  municipal service search"))
	b.WriteString("\n\n")
	b.WriteString(a.input.View())
	b.WriteString("\n\n")

	query := strings.TrimSpace(a.input.Value())
	if len([]rune(query)) < domain.MinQueryLength {
		b.WriteString(a.idleSuggestions())
	} else {
		b.WriteString(a.results.View())
		if sugg := a.suggestionLine(); sugg != "" {
			b.WriteString("\n\n")
			b.WriteString(sugg)
		}
	}

	return b.String()
}

func (a *App) idleSuggestions() string {
	var b strings.Builder
	if len(a.suggestions.Popular) > 0 {
		b.WriteString(a.styles.Subtitle.Render("Popular"))
		b.WriteString("\n")
		for _, p := range a.suggestions.Popular {
			b.WriteString("  " + a.styles.Normal.Render(p) + "\n")
		}
	}
	if len(a.suggestions.Recent) > 0 {
		b.WriteString(a.styles.Subtitle.Render("Recent"))
		b.WriteString("\n")
		for _, r := range a.suggestions.Recent {
			b.WriteString("  " + a.styles.Normal.Render(r) + "\n")
		}
	}
	if b.Len() == 0 {
		return a.styles.Muted.Render("Type at least two characters to search")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (a *App) suggestionLine() string {
	if len(a.suggestions.Suggestions) == 0 {
		return ""
	}
	shown := a.suggestions.Suggestions
	if len(shown) > 4 {
		shown = shown[:4]
	}
	return a.styles.Muted.Render("Try: " + strings.Join(shown, " · "))
}

func (a *App) detailsView() string {
	r := a.selected
	var b strings.Builder

	b.WriteString(a.styles.Title.Render(r.Title))
	b.WriteString("\n")
	b.WriteString(a.styles.Muted.Render(r.Category))
	b.WriteString("\n\n")

	if r.Description != "" {
		b.WriteString(a.styles.Normal.Render(r.Description))
		b.WriteString("\n\n")
	}

	rows := [][2]string{
		{"Office", r.Office},
		{"Fee", r.Fee},
		{"Processing", r.ProcessingTime},
		{"Link", r.URL},
	}
	for _, row := range rows {
		if row[1] == "" {
			continue
		}
		b.WriteString(fmt.Sprintf("%s %s\n",
			a.styles.Subtitle.Render(fmt.Sprintf("%-12s", row[0])),
			a.styles.Normal.Render(row[1])))
	}

	b.WriteString("\n")
	b.WriteString(a.styles.Muted.Render("esc back · q quit"))

	return a.styles.Border.Padding(1, 2).Render(b.String())
}

// debounceCmd fires SearchDebounced after the debounce interval. The
// sequence number lets the model ignore ticks made stale by newer
// keystrokes.
func (a *App) debounceCmd(seq int) tea.Cmd {
	return tea.Tick(a.settings.DebounceInterval, func(time.Time) tea.Msg {
		return messages.SearchDebounced{Seq: seq}
	})
}

func (a *App) searchCmd(seq int, query string) tea.Cmd {
	return func() tea.Msg {
		results, err := a.ports.Search.Search(a.ctx, query, domain.SearchOptions{
			Limit: a.settings.SearchLimit,
		})
		return messages.SearchCompleted{Seq: seq, Query: query, Results: results, Err: err}
	}
}

func (a *App) suggestCmd(seq int, query string) tea.Cmd {
	return func() tea.Msg {
		return messages.SuggestionsLoaded{Seq: seq, Bundle: a.ports.Suggest.SuggestionsFor(query)}
	}
}

func (a *App) recordCmd(query string, resultCount int) tea.Cmd {
	return func() tea.Msg {
		a.ports.Suggest.RecordSearch(query, resultCount)
		a.ports.Suggest.AddRecentSearch(query)
		return nil
	}
}

func (a *App) loadCatalogCmd() tea.Cmd {
	if a.ports.Catalog == nil {
		return nil
	}
	return func() tea.Msg {
		catalog, err := a.ports.Catalog.Load(a.ctx)
		if err != nil {
			return messages.CatalogLoaded{Err: err}
		}
		return messages.CatalogLoaded{
			ServiceCount: len(catalog.Services),
			Fallback:     catalog.Fallback,
		}
	}
}
