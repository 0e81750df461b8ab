package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civika-labs/serbisyo-cli/internal/adapters/driven/storage/memory"
	"github.com/civika-labs/serbisyo-cli/internal/adapters/driving/tui/components/status"
	"github.com/civika-labs/serbisyo-cli/internal/adapters/driving/tui/messages"
	"github.com/civika-labs/serbisyo-cli/internal/core/domain"
	"github.com/civika-labs/serbisyo-cli/internal/core/services"
)

type staticSource struct {
	doc *domain.CatalogDocument
}

func (s *staticSource) Fetch(_ context.Context) (*domain.CatalogDocument, error) {
	return s.doc, nil
}

func (s *staticSource) Describe() string { return "static" }

func newTestApp(t *testing.T) (*App, *services.SuggestService) {
	t.Helper()

	doc := &domain.CatalogDocument{
		Services: []domain.ServiceRecord{
			{
				ID:         "birth-certificate",
				Title:      "Birth Certificate",
				Category:   "Certificates & Vital Records",
				CategoryID: "certificates",
				Keywords:   []string{"birth", "certificate", "nso", "psa"},
				Office:     "Local Civil Registrar",
				Fee:        "₱150",
				URL:        "birth.html",
			},
			{
				ID:         "business-permit",
				Title:      "Business Permit",
				Category:   "Business Trade & Investment",
				CategoryID: "business",
				Keywords:   []string{"business", "permit", "mayor's permit"},
				URL:        "business.html",
			},
			{
				ID:         "cedula",
				Title:      "Community Tax Certificate (Cedula)",
				Category:   "Certificates & Vital Records",
				CategoryID: "certificates",
				Keywords:   []string{"cedula", "community tax"},
				URL:        "cedula.html",
			},
		},
	}

	catalog := services.NewCatalogService(&staticSource{doc: doc})
	search := services.NewSearchService(catalog, time.Minute)
	suggest := services.NewSuggestService(memory.NewKeyValueStore(), catalog)

	app := NewApp(Ports{Search: search, Suggest: suggest, Catalog: catalog}, domain.AppSettings{})
	app.WithContext(context.Background())
	return app, suggest
}

// drain executes a command tree synchronously, feeding every produced
// message back into the model.
func drain(t *testing.T, app *App, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	msg := cmd()
	if msg == nil {
		return
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			drain(t, app, c)
		}
		return
	}
	_, next := app.Update(msg)
	drain(t, app, next)
}

func typeQuery(app *App, query string) tea.Cmd {
	var last tea.Cmd
	for _, r := range query {
		_, last = app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return last
}

func TestPortsValidate(t *testing.T) {
	app, _ := newTestApp(t)
	require.NoError(t, app.ports.Validate())

	assert.Error(t, Ports{}.Validate())
	assert.Error(t, Ports{Search: app.ports.Search}.Validate())
}

func TestInitialViewShowsPrompt(t *testing.T) {
	app, _ := newTestApp(t)
	app.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	view := app.View()
	assert.Contains(t, view, "Serbisyo")
	assert.Contains(t, view, "Type at least two characters")
}

func TestTypingBumpsSequenceAndSchedulesSearch(t *testing.T) {
	app, _ := newTestApp(t)

	before := app.seq
	cmd := typeQuery(app, "birth")
	assert.Greater(t, app.seq, before)
	assert.NotNil(t, cmd)
}

func TestStaleDebounceIsDropped(t *testing.T) {
	app, _ := newTestApp(t)
	typeQuery(app, "birth")

	_, cmd := app.Update(messages.SearchDebounced{Seq: app.seq - 1})
	assert.Nil(t, cmd)
	assert.Zero(t, app.results.Len())
}

func TestDebouncedSearchProducesResults(t *testing.T) {
	app, _ := newTestApp(t)
	typeQuery(app, "birth certificate")

	_, cmd := app.Update(messages.SearchDebounced{Seq: app.seq})
	drain(t, app, cmd)

	require.NotZero(t, app.results.Len())
	selected, ok := app.results.Selected()
	require.True(t, ok)
	assert.Equal(t, "birth-certificate", selected.ID)
	assert.Equal(t, status.StateResults, app.status.State())
	assert.Contains(t, app.View(), "Birth Certificate")
}

func TestSearchToleratesTypo(t *testing.T) {
	app, _ := newTestApp(t)
	typeQuery(app, "sedula")

	_, cmd := app.Update(messages.SearchDebounced{Seq: app.seq})
	drain(t, app, cmd)

	require.NotZero(t, app.results.Len())
	selected, _ := app.results.Selected()
	assert.Equal(t, "cedula", selected.ID)
}

func TestShortQueryShowsSuggestions(t *testing.T) {
	app, _ := newTestApp(t)
	typeQuery(app, "b")

	_, cmd := app.Update(messages.SearchDebounced{Seq: app.seq})
	drain(t, app, cmd)

	assert.Zero(t, app.results.Len())
	// Curated popular searches backfill when analytics are empty.
	assert.NotEmpty(t, app.suggestions.Popular)
	assert.Contains(t, app.View(), "Popular")
}

func TestEscapeClearsThenQuits(t *testing.T) {
	app, _ := newTestApp(t)
	typeQuery(app, "birth")

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, app.input.Value())
	assert.NotNil(t, cmd)

	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestEnterOpensDetailsAndRecordsSearch(t *testing.T) {
	app, suggest := newTestApp(t)
	typeQuery(app, "cedula")

	_, cmd := app.Update(messages.SearchDebounced{Seq: app.seq})
	drain(t, app, cmd)
	require.NotZero(t, app.results.Len())

	_, cmd = app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	drain(t, app, cmd)

	assert.Equal(t, messages.ViewDetails, app.view)
	assert.Contains(t, app.View(), "Community Tax Certificate")
	assert.Contains(t, suggest.RecentSearches(), "cedula")
}

func TestEscapeReturnsFromDetails(t *testing.T) {
	app, _ := newTestApp(t)
	typeQuery(app, "cedula")

	_, cmd := app.Update(messages.SearchDebounced{Seq: app.seq})
	drain(t, app, cmd)
	app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, messages.ViewDetails, app.view)

	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, messages.ViewSearch, app.view)
}

func TestCtrlCQuits(t *testing.T) {
	app, _ := newTestApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestCatalogLoadedUpdatesStatus(t *testing.T) {
	app, _ := newTestApp(t)

	app.Update(messages.CatalogLoaded{ServiceCount: 3})
	assert.Equal(t, status.StateReady, app.status.State())
	assert.Contains(t, app.status.View(), "3 services loaded")

	app.Update(messages.CatalogLoaded{ServiceCount: 3, Fallback: true})
	assert.Contains(t, app.status.View(), "offline fallback")
}

func TestArrowKeysMoveCursor(t *testing.T) {
	app, _ := newTestApp(t)
	typeQuery(app, "certificate")

	_, cmd := app.Update(messages.SearchDebounced{Seq: app.seq})
	drain(t, app, cmd)
	require.Greater(t, app.results.Len(), 1)

	first, _ := app.results.Selected()
	app.Update(tea.KeyMsg{Type: tea.KeyDown})
	second, _ := app.results.Selected()
	assert.NotEqual(t, first.ID, second.ID)

	app.Update(tea.KeyMsg{Type: tea.KeyUp})
	again, _ := app.results.Selected()
	assert.Equal(t, first.ID, again.ID)
}
